package consultation

import (
	"time"

	"github.com/google/uuid"

	"github.com/jamshid-zayniyev/brosmedcrm-sub000/internal/workflow"
)

// Consultation is the doctor's written outcome of seeing a patient. The
// resulting status says where the visit goes next: under treatment or
// finished.
type Consultation struct {
	ID              uuid.UUID              `db:"id" json:"id"`
	PatientID       uuid.UUID              `db:"patient_id" json:"patient_id"`
	DoctorID        uuid.UUID              `db:"doctor_id" json:"doctor_id"`
	Diagnosis       string                 `db:"diagnosis" json:"diagnosis"`
	Recommendation  string                 `db:"recommendation" json:"recommendation"`
	Prescription    string                 `db:"prescription" json:"prescription"`
	ResultingStatus workflow.PatientStatus `db:"resulting_status" json:"resulting_status"`
	CreatedAt       time.Time              `db:"created_at" json:"created_at"`
}
