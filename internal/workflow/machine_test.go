package workflow

import (
	"errors"
	"testing"
)

var allStatuses = []PatientStatus{
	StatusRegistered, StatusInLab, StatusWithDoctor,
	StatusUnderTreatment, StatusFinished, StatusRecovered,
}

var allRoles = []Role{
	RoleReception, RoleLaboratory, RoleDoctor, RoleCashier, RoleSuperadmin,
}

func TestCanTransition_ReceptionFlow(t *testing.T) {
	if err := CanTransition(RoleReception, StatusRegistered, StatusInLab); err != nil {
		t.Errorf("reception r->l: unexpected error: %v", err)
	}
	if err := CanTransition(RoleReception, StatusRegistered, StatusWithDoctor); err != nil {
		t.Errorf("reception r->d: unexpected error: %v", err)
	}
	if err := CanTransition(RoleReception, StatusWithDoctor, StatusFinished); err == nil {
		t.Error("reception d->f: expected authorization error")
	}
}

func TestCanTransition_LaboratoryFlow(t *testing.T) {
	if err := CanTransition(RoleLaboratory, StatusInLab, StatusWithDoctor); err != nil {
		t.Errorf("laboratory l->d: unexpected error: %v", err)
	}
	if err := CanTransition(RoleLaboratory, StatusWithDoctor, StatusUnderTreatment); err == nil {
		t.Error("laboratory d->t: expected authorization error")
	}
}

func TestCanTransition_DoctorOutcomes(t *testing.T) {
	for _, to := range []PatientStatus{StatusUnderTreatment, StatusFinished} {
		if err := CanTransition(RoleDoctor, StatusWithDoctor, to); err != nil {
			t.Errorf("doctor d->%s: unexpected error: %v", to, err)
		}
	}
}

func TestCanTransition_DoctorOverride(t *testing.T) {
	cases := []struct {
		from, to PatientStatus
	}{
		{StatusUnderTreatment, StatusWithDoctor},
		{StatusUnderTreatment, StatusInLab},
		{StatusUnderTreatment, StatusFinished},
		{StatusInLab, StatusUnderTreatment},
		{StatusInLab, StatusFinished},
		{StatusWithDoctor, StatusInLab},
	}
	for _, tc := range cases {
		if err := CanTransition(RoleDoctor, tc.from, tc.to); err != nil {
			t.Errorf("doctor override %s->%s: unexpected error: %v", tc.from, tc.to, err)
		}
	}
}

func TestCanTransition_CashierNeverMovesPatients(t *testing.T) {
	for _, from := range allStatuses {
		for _, to := range allStatuses {
			if err := CanTransition(RoleCashier, from, to); err == nil {
				t.Errorf("cashier %s->%s: expected rejection", from, to)
			}
		}
	}
}

func TestCanTransition_SuperadminTakesAnyLegalEdge(t *testing.T) {
	if err := CanTransition(RoleSuperadmin, StatusRegistered, StatusInLab); err != nil {
		t.Errorf("superadmin r->l: unexpected error: %v", err)
	}
	for _, from := range []PatientStatus{
		StatusRegistered, StatusInLab, StatusWithDoctor, StatusUnderTreatment, StatusFinished,
	} {
		if err := CanTransition(RoleSuperadmin, from, StatusRecovered); err != nil {
			t.Errorf("superadmin %s->rc: unexpected error: %v", from, err)
		}
	}
	// Even superadmin cannot take an edge outside the table.
	var te *TransitionError
	err := CanTransition(RoleSuperadmin, StatusFinished, StatusRegistered)
	if !errors.As(err, &te) {
		t.Errorf("superadmin f->r: expected TransitionError, got %v", err)
	}
}

func TestCanTransition_RecoveredIsTerminal(t *testing.T) {
	for _, role := range allRoles {
		for _, to := range allStatuses {
			if err := CanTransition(role, StatusRecovered, to); err == nil {
				t.Errorf("%s rc->%s: expected rejection", role, to)
			}
		}
	}
}

func TestCanTransition_UnknownStatus(t *testing.T) {
	if err := CanTransition(RoleDoctor, "x", StatusFinished); !errors.Is(err, ErrUnknownStatus) {
		t.Errorf("expected ErrUnknownStatus, got %v", err)
	}
	if err := CanTransition(RoleDoctor, StatusWithDoctor, "zz"); !errors.Is(err, ErrUnknownStatus) {
		t.Errorf("expected ErrUnknownStatus, got %v", err)
	}
}

func TestCanTransition_ErrorKinds(t *testing.T) {
	var ae *AuthorizationError
	if err := CanTransition(RoleReception, StatusWithDoctor, StatusFinished); !errors.As(err, &ae) {
		t.Errorf("expected AuthorizationError, got %v", err)
	}
	var te *TransitionError
	if err := CanTransition(RoleDoctor, StatusFinished, StatusInLab); !errors.As(err, &te) {
		t.Errorf("expected TransitionError, got %v", err)
	}
}

// The table in CanTransition and the view produced by AllowedTargets must
// agree edge for edge.
func TestAllowedTargets_MatchesTable(t *testing.T) {
	for _, role := range allRoles {
		for _, from := range allStatuses {
			targets := map[PatientStatus]bool{}
			for _, to := range AllowedTargets(role, from) {
				targets[to] = true
			}
			for _, to := range allStatuses {
				want := CanTransition(role, from, to) == nil
				if targets[to] != want {
					t.Errorf("%s from %s to %s: AllowedTargets=%v CanTransition=%v",
						role, from, to, targets[to], want)
				}
			}
		}
	}
}

func TestAllowedTargets_Sorted(t *testing.T) {
	targets := AllowedTargets(RoleDoctor, StatusUnderTreatment)
	for i := 1; i < len(targets); i++ {
		if targets[i-1] >= targets[i] {
			t.Fatalf("targets not sorted: %v", targets)
		}
	}
}

func TestCanRegister(t *testing.T) {
	if err := CanRegister(RoleReception); err != nil {
		t.Errorf("reception: unexpected error: %v", err)
	}
	if err := CanRegister(RoleSuperadmin); err != nil {
		t.Errorf("superadmin: unexpected error: %v", err)
	}
	for _, role := range []Role{RoleLaboratory, RoleDoctor, RoleCashier} {
		if err := CanRegister(role); err == nil {
			t.Errorf("%s: expected rejection", role)
		}
	}
}
