package visit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, v *Visit) error
	GetByID(ctx context.Context, id uuid.UUID) (*Visit, error)
	Update(ctx context.Context, v *Visit) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, departmentID uuid.UUID, limit, offset int) ([]*Visit, int, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Visit, error)

	// NextQueueNumber returns the next position in the department's queue
	// for the given day, starting from 1.
	NextQueueNumber(ctx context.Context, departmentID uuid.UUID, day time.Time) (int, error)
}
