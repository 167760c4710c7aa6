package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jamshid-zayniyev/brosmedcrm-sub000/internal/workflow"
)

// PatientCounts is the slice of the patient repo the dashboards read.
type PatientCounts interface {
	CountByStatus(ctx context.Context) (map[workflow.PatientStatus]int, error)
	CountRegisteredOn(ctx context.Context, day time.Time) (int, error)
}

// AnalysisCounts is the slice of the lab repo the dashboards read.
type AnalysisCounts interface {
	CountByStatus(ctx context.Context) (map[workflow.AnalysisStatus]int, error)
}

type Service struct {
	repo     Repository
	patients PatientCounts
	analyses AnalysisCounts
}

func NewService(repo Repository, patients PatientCounts, analyses AnalysisCounts) *Service {
	return &Service{repo: repo, patients: patients, analyses: analyses}
}

// RecordPayment writes a ledger entry; the patient service calls this when
// the cashier marks a patient paid or partially paid.
func (s *Service) RecordPayment(ctx context.Context, patientID uuid.UUID, amount int, status workflow.PaymentStatus) error {
	if amount < 0 {
		return fmt.Errorf("amount must not be negative")
	}
	return s.repo.Create(ctx, &Payment{PatientID: patientID, Amount: amount, Status: status})
}

func (s *Service) ListPayments(ctx context.Context, limit, offset int) ([]*Payment, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) PaymentsForPatient(ctx context.Context, patientID uuid.UUID) ([]*Payment, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

// CashierStats aggregates the ledger for the cashier dashboard.
func (s *Service) CashierStats(ctx context.Context) (*CashierStats, error) {
	totals, err := s.repo.TotalsByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("totals: %w", err)
	}
	now := time.Now()
	revenue, err := s.repo.RevenueOn(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("revenue: %w", err)
	}
	count, err := s.repo.CountOn(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("count: %w", err)
	}
	return &CashierStats{TotalsByStatus: totals, RevenueToday: revenue, PaymentsToday: count}, nil
}

// DashboardStats aggregates the clinic-wide overview every role's home
// screen shows.
func (s *Service) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	byStatus, err := s.patients.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("patient counts: %w", err)
	}
	now := time.Now()
	today, err := s.patients.CountRegisteredOn(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("patients today: %w", err)
	}
	analyses, err := s.analyses.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("analysis counts: %w", err)
	}
	revenue, err := s.repo.RevenueOn(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("revenue: %w", err)
	}
	return &DashboardStats{
		PatientsByStatus: byStatus,
		PatientsToday:    today,
		AnalysesByStatus: analyses,
		RevenueToday:     revenue,
	}, nil
}
