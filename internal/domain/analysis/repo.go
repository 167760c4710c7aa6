package analysis

import (
	"context"

	"github.com/google/uuid"

	"github.com/jamshid-zayniyev/brosmedcrm-sub000/internal/workflow"
)

type Repository interface {
	Create(ctx context.Context, a *Analysis) error
	GetByID(ctx context.Context, id uuid.UUID) (*Analysis, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status workflow.AnalysisStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, status workflow.AnalysisStatus, limit, offset int) ([]*Analysis, int, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Analysis, error)

	AddResults(ctx context.Context, results []*Result) error
	GetResults(ctx context.Context, analysisID uuid.UUID) ([]*Result, error)

	AddFile(ctx context.Context, f *File) error
	ListFiles(ctx context.Context, analysisID uuid.UUID) ([]*File, error)

	CountByStatus(ctx context.Context) (map[workflow.AnalysisStatus]int, error)
}
