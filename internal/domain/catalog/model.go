package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Department is a ward or service category a patient is registered into.
// Consultative departments route registration through doctor selection
// instead of a billable sub-service.
type Department struct {
	ID           uuid.UUID `db:"id" json:"id"`
	TitleUz      string    `db:"title_uz" json:"title_uz"`
	TitleRu      string    `db:"title_ru" json:"title_ru"`
	TitleEn      string    `db:"title_en" json:"title_en"`
	Consultative bool      `db:"consultative" json:"consultative"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// DepartmentType is a billable sub-service or lab test catalog entry.
type DepartmentType struct {
	ID           uuid.UUID `db:"id" json:"id"`
	DepartmentID uuid.UUID `db:"department_id" json:"department_id"`
	TitleUz      string    `db:"title_uz" json:"title_uz"`
	TitleRu      string    `db:"title_ru" json:"title_ru"`
	TitleEn      string    `db:"title_en" json:"title_en"`
	Price        int       `db:"price" json:"price"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// TypeResult is a named result field a lab analysis of this type reports,
// with its reference norm.
type TypeResult struct {
	ID               uuid.UUID `db:"id" json:"id"`
	DepartmentTypeID uuid.UUID `db:"department_type_id" json:"department_type_id"`
	Name             string    `db:"name" json:"name"`
	Norm             string    `db:"norm" json:"norm"`
}
