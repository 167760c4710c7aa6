package patient

import (
	"time"

	"github.com/google/uuid"

	"github.com/jamshid-zayniyev/brosmedcrm-sub000/internal/workflow"
)

// Patient carries the person record plus the live workflow state of the
// current visit: where they are in the clinic and whether they have paid.
type Patient struct {
	ID            uuid.UUID              `db:"id" json:"id"`
	Name          string                 `db:"name" json:"name"`
	LastName      string                 `db:"last_name" json:"last_name"`
	MiddleName    *string                `db:"middle_name" json:"middle_name,omitempty"`
	PhoneNumber   string                 `db:"phone_number" json:"phone_number"`
	Gender        workflow.Gender        `db:"gender" json:"gender"`
	BirthDate     *time.Time             `db:"birth_date" json:"birth_date,omitempty"`
	Address       string                 `db:"address" json:"address"`
	Status        workflow.PatientStatus `db:"status" json:"status"`
	PaymentStatus workflow.PaymentStatus `db:"payment_status" json:"payment_status"`
	PaymentAmount int                    `db:"payment_amount" json:"payment_amount"`
	DepartmentID  uuid.UUID              `db:"department_id" json:"department_id"`
	DoctorID      *uuid.UUID             `db:"doctor_id" json:"doctor_id,omitempty"`
	CreatedAt     time.Time              `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time              `db:"updated_at" json:"updated_at"`
}

// StatusChange is one audit row: who moved the patient, from where, to where.
// FromStatus is empty on the registration row.
type StatusChange struct {
	ID         uuid.UUID              `db:"id" json:"id"`
	PatientID  uuid.UUID              `db:"patient_id" json:"patient_id"`
	FromStatus workflow.PatientStatus `db:"from_status" json:"from_status"`
	ToStatus   workflow.PatientStatus `db:"to_status" json:"to_status"`
	ActorID    uuid.UUID              `db:"actor_id" json:"actor_id"`
	CreatedAt  time.Time              `db:"created_at" json:"created_at"`
}
