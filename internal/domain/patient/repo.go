package patient

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jamshid-zayniyev/brosmedcrm-sub000/internal/workflow"
)

type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	Update(ctx context.Context, p *Patient) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, status workflow.PatientStatus, limit, offset int) ([]*Patient, int, error)
	Search(ctx context.Context, q string, limit, offset int) ([]*Patient, int, error)
	ListForDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Patient, error)

	AddStatusChange(ctx context.Context, sc *StatusChange) error
	StatusHistory(ctx context.Context, patientID uuid.UUID) ([]*StatusChange, error)

	CountByStatus(ctx context.Context) (map[workflow.PatientStatus]int, error)
	CountRegisteredOn(ctx context.Context, day time.Time) (int, error)
}
