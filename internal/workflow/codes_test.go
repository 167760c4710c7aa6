package workflow

import "testing"

func TestParsePatientStatus(t *testing.T) {
	for _, code := range []string{"r", "l", "d", "t", "f", "rc"} {
		s, err := ParsePatientStatus(code)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", code, err)
		}
		if s.String() != code {
			t.Errorf("%q: round-trip gave %q", code, s)
		}
		if s.Label() == "" {
			t.Errorf("%q: empty label", code)
		}
	}
	for _, code := range []string{"", "x", "R", "rc ", "registered"} {
		if _, err := ParsePatientStatus(code); err == nil {
			t.Errorf("%q: expected error", code)
		}
	}
}

func TestParsePaymentStatus(t *testing.T) {
	for _, code := range []string{"p", "c", "pc"} {
		if _, err := ParsePaymentStatus(code); err != nil {
			t.Errorf("%q: unexpected error: %v", code, err)
		}
	}
	if _, err := ParsePaymentStatus("paid"); err == nil {
		t.Error("expected error for unknown code")
	}
}

func TestParseAnalysisStatus(t *testing.T) {
	for _, code := range []string{"n", "ip", "f"} {
		if _, err := ParseAnalysisStatus(code); err != nil {
			t.Errorf("%q: unexpected error: %v", code, err)
		}
	}
	if _, err := ParseAnalysisStatus("done"); err == nil {
		t.Error("expected error for unknown code")
	}
}

func TestParseRole(t *testing.T) {
	for _, name := range []string{"reception", "laboratory", "doctor", "cashier", "superadmin"} {
		if _, err := ParseRole(name); err != nil {
			t.Errorf("%q: unexpected error: %v", name, err)
		}
	}
	if _, err := ParseRole("admin"); err == nil {
		t.Error("expected error for unknown role")
	}
}

func TestParseGender(t *testing.T) {
	for _, code := range []string{"e", "a"} {
		if _, err := ParseGender(code); err != nil {
			t.Errorf("%q: unexpected error: %v", code, err)
		}
	}
	if _, err := ParseGender("m"); err == nil {
		t.Error("expected error for unknown code")
	}
}
