package visit

import (
	"time"

	"github.com/google/uuid"
)

// Visit is one clinical episode: a patient registered into a department,
// optionally for a specific billable sub-service or a consulting doctor.
// The queue number restarts per department per calendar day.
type Visit struct {
	ID               uuid.UUID  `db:"id" json:"id"`
	PatientID        uuid.UUID  `db:"patient_id" json:"patient_id"`
	DepartmentID     uuid.UUID  `db:"department_id" json:"department_id"`
	DepartmentTypeID *uuid.UUID `db:"department_type_id" json:"department_type_id,omitempty"`
	DoctorID         *uuid.UUID `db:"doctor_id" json:"doctor_id,omitempty"`
	Complaint        string     `db:"complaint" json:"complaint"`
	QueueNumber      int        `db:"queue_number" json:"queue_number"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`
}
