// Package workflow defines the patient visit state machine: the status,
// role, and payment code sets used across the clinic API, and the policy
// table that decides which role may move a patient between which statuses.
package workflow

import "fmt"

// PatientStatus is the current stage of a clinical visit. The single-letter
// codes are the wire format the original clinic clients exchange.
type PatientStatus string

const (
	StatusRegistered     PatientStatus = "r"
	StatusInLab          PatientStatus = "l"
	StatusWithDoctor     PatientStatus = "d"
	StatusUnderTreatment PatientStatus = "t"
	StatusFinished       PatientStatus = "f"
	StatusRecovered      PatientStatus = "rc"
)

var patientStatuses = map[PatientStatus]string{
	StatusRegistered:     "registered",
	StatusInLab:          "in-lab",
	StatusWithDoctor:     "with-doctor",
	StatusUnderTreatment: "under-treatment",
	StatusFinished:       "finished",
	StatusRecovered:      "recovered",
}

func ParsePatientStatus(code string) (PatientStatus, error) {
	s := PatientStatus(code)
	if _, ok := patientStatuses[s]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, code)
	}
	return s, nil
}

func (s PatientStatus) Valid() bool {
	_, ok := patientStatuses[s]
	return ok
}

func (s PatientStatus) String() string { return string(s) }

// Label returns the human-readable name of the status.
func (s PatientStatus) Label() string { return patientStatuses[s] }

// PaymentStatus tracks billing independently of the visit stage.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "p"
	PaymentPaid    PaymentStatus = "c"
	PaymentPartial PaymentStatus = "pc"
)

func ParsePaymentStatus(code string) (PaymentStatus, error) {
	switch PaymentStatus(code) {
	case PaymentPending, PaymentPaid, PaymentPartial:
		return PaymentStatus(code), nil
	}
	return "", fmt.Errorf("unknown payment status: %q", code)
}

func (s PaymentStatus) Valid() bool {
	_, err := ParsePaymentStatus(string(s))
	return err == nil
}

func (s PaymentStatus) String() string { return string(s) }

// AnalysisStatus is the lab order lifecycle. Finishing is asserted by lab
// staff, never derived from result completeness.
type AnalysisStatus string

const (
	AnalysisNew        AnalysisStatus = "n"
	AnalysisInProgress AnalysisStatus = "ip"
	AnalysisFinished   AnalysisStatus = "f"
)

func ParseAnalysisStatus(code string) (AnalysisStatus, error) {
	switch AnalysisStatus(code) {
	case AnalysisNew, AnalysisInProgress, AnalysisFinished:
		return AnalysisStatus(code), nil
	}
	return "", fmt.Errorf("unknown analysis status: %q", code)
}

func (s AnalysisStatus) Valid() bool {
	_, err := ParseAnalysisStatus(string(s))
	return err == nil
}

func (s AnalysisStatus) String() string { return string(s) }

// Role is a staff account's dashboard role.
type Role string

const (
	RoleReception  Role = "reception"
	RoleLaboratory Role = "laboratory"
	RoleDoctor     Role = "doctor"
	RoleCashier    Role = "cashier"
	RoleSuperadmin Role = "superadmin"
)

var roles = map[Role]bool{
	RoleReception:  true,
	RoleLaboratory: true,
	RoleDoctor:     true,
	RoleCashier:    true,
	RoleSuperadmin: true,
}

func ParseRole(name string) (Role, error) {
	r := Role(name)
	if !roles[r] {
		return "", fmt.Errorf("unknown role: %q", name)
	}
	return r, nil
}

func (r Role) Valid() bool { return roles[r] }

func (r Role) String() string { return string(r) }

// Gender uses the original wire codes: e (erkak, male), a (ayol, female).
type Gender string

const (
	GenderMale   Gender = "e"
	GenderFemale Gender = "a"
)

func ParseGender(code string) (Gender, error) {
	switch Gender(code) {
	case GenderMale, GenderFemale:
		return Gender(code), nil
	}
	return "", fmt.Errorf("unknown gender: %q", code)
}

func (g Gender) Valid() bool {
	_, err := ParseGender(string(g))
	return err == nil
}

func (g Gender) String() string { return string(g) }
