package analysis

import (
	"time"

	"github.com/google/uuid"

	"github.com/jamshid-zayniyev/brosmedcrm-sub000/internal/workflow"
)

// Analysis is a lab order: one test of a catalog type for one patient.
// Its status is asserted by lab staff, not derived from submitted results.
type Analysis struct {
	ID               uuid.UUID               `db:"id" json:"id"`
	PatientID        uuid.UUID               `db:"patient_id" json:"patient_id"`
	DepartmentTypeID uuid.UUID               `db:"department_type_id" json:"department_type_id"`
	Status           workflow.AnalysisStatus `db:"status" json:"status"`
	OrderedBy        uuid.UUID               `db:"ordered_by" json:"ordered_by"`
	CreatedAt        time.Time               `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time               `db:"updated_at" json:"updated_at"`
}

// Result is one measured value against a named result field of the order's
// catalog type.
type Result struct {
	ID           uuid.UUID `db:"id" json:"id"`
	AnalysisID   uuid.UUID `db:"analysis_id" json:"analysis_id"`
	TypeResultID uuid.UUID `db:"type_result_id" json:"type_result_id"`
	Value        string    `db:"value" json:"value"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// File is the metadata record of an attachment; byte storage lives outside
// this service.
type File struct {
	ID          uuid.UUID `db:"id" json:"id"`
	AnalysisID  uuid.UUID `db:"analysis_id" json:"analysis_id"`
	Name        string    `db:"name" json:"name"`
	ContentType string    `db:"content_type" json:"content_type"`
	Size        int64     `db:"size" json:"size"`
	StoragePath string    `db:"storage_path" json:"storage_path"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
