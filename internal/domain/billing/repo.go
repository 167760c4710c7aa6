package billing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jamshid-zayniyev/brosmedcrm-sub000/internal/workflow"
)

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	List(ctx context.Context, limit, offset int) ([]*Payment, int, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Payment, error)

	TotalsByStatus(ctx context.Context) (map[workflow.PaymentStatus]int, error)
	RevenueOn(ctx context.Context, day time.Time) (int, error)
	CountOn(ctx context.Context, day time.Time) (int, error)
}
