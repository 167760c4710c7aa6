package workflow

import (
	"errors"
	"fmt"
)

// ErrUnknownStatus is returned when a status code is outside the defined set.
var ErrUnknownStatus = errors.New("unknown patient status")

// TransitionError marks an edge that is illegal for every role.
type TransitionError struct {
	From PatientStatus
	To   PatientStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("illegal transition %s -> %s", e.From, e.To)
}

// AuthorizationError marks a legal edge requested by a role outside its
// authorized set.
type AuthorizationError struct {
	Role Role
	From PatientStatus
	To   PatientStatus
}

func (e *AuthorizationError) Error() string {
	if e.From == "" {
		return fmt.Sprintf("role %s may not register patients", e.Role)
	}
	return fmt.Sprintf("role %s may not move patient %s -> %s", e.Role, e.From, e.To)
}
