package workflow

import "sort"

type edge struct {
	from, to PatientStatus
}

// transitions is the complete permission set: an edge absent from this map is
// illegal for every role. Superadmin may take any edge listed here.
var transitions = map[edge][]Role{
	// Reception sends a registered patient onward.
	{StatusRegistered, StatusInLab}:      {RoleReception, RoleLaboratory},
	{StatusRegistered, StatusWithDoctor}: {RoleReception, RoleLaboratory, RoleDoctor},

	// Laboratory hands over to the doctor; the doctor may also pull.
	{StatusInLab, StatusWithDoctor}: {RoleReception, RoleLaboratory, RoleDoctor},

	// Consultation outcomes.
	{StatusWithDoctor, StatusUnderTreatment}: {RoleDoctor},
	{StatusWithDoctor, StatusFinished}:       {RoleDoctor},

	// Doctor status override: manual correction between active stages.
	{StatusWithDoctor, StatusInLab}:          {RoleDoctor},
	{StatusInLab, StatusUnderTreatment}:      {RoleDoctor},
	{StatusInLab, StatusFinished}:            {RoleDoctor},
	{StatusUnderTreatment, StatusWithDoctor}: {RoleDoctor},
	{StatusUnderTreatment, StatusInLab}:      {RoleDoctor},
	{StatusUnderTreatment, StatusFinished}:   {RoleDoctor},

	// Administrative discharge from any stage.
	{StatusRegistered, StatusRecovered}:     {RoleSuperadmin},
	{StatusInLab, StatusRecovered}:          {RoleSuperadmin},
	{StatusWithDoctor, StatusRecovered}:     {RoleSuperadmin},
	{StatusUnderTreatment, StatusRecovered}: {RoleSuperadmin},
	{StatusFinished, StatusRecovered}:       {RoleSuperadmin},
}

// CanRegister reports whether role may create a new patient visit, which
// places the patient in StatusRegistered.
func CanRegister(role Role) error {
	if role == RoleReception || role == RoleSuperadmin {
		return nil
	}
	return &AuthorizationError{Role: role, To: StatusRegistered}
}

// CanTransition returns nil when role is authorized to move a patient from
// one status to another. It distinguishes an edge that no role may take
// (TransitionError) from a legal edge the caller's role is not in the
// authorized set for (AuthorizationError).
func CanTransition(role Role, from, to PatientStatus) error {
	if !from.Valid() || !to.Valid() {
		return ErrUnknownStatus
	}
	allowed, ok := transitions[edge{from, to}]
	if !ok {
		return &TransitionError{From: from, To: to}
	}
	if role == RoleSuperadmin {
		return nil
	}
	for _, r := range allowed {
		if r == role {
			return nil
		}
	}
	return &AuthorizationError{Role: role, From: from, To: to}
}

// AllowedTargets lists every status role may move a patient in status from
// to, sorted by wire code. An empty slice means the patient is parked for
// that role.
func AllowedTargets(role Role, from PatientStatus) []PatientStatus {
	var targets []PatientStatus
	for e := range transitions {
		if e.from != from {
			continue
		}
		if CanTransition(role, e.from, e.to) == nil {
			targets = append(targets, e.to)
		}
	}
	sort.Slice(targets, func(i, j int) bool { return targets[i] < targets[j] })
	return targets
}
