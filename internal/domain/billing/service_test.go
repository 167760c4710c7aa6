package billing

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jamshid-zayniyev/brosmedcrm-sub000/internal/workflow"
)

type mockRepo struct {
	payments []*Payment
}

func (m *mockRepo) Create(_ context.Context, p *Payment) error {
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	m.payments = append(m.payments, p)
	return nil
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*Payment, int, error) {
	return m.payments, len(m.payments), nil
}

func (m *mockRepo) ListByPatient(_ context.Context, patientID uuid.UUID) ([]*Payment, error) {
	var result []*Payment
	for _, p := range m.payments {
		if p.PatientID == patientID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *mockRepo) TotalsByStatus(_ context.Context) (map[workflow.PaymentStatus]int, error) {
	totals := make(map[workflow.PaymentStatus]int)
	for _, p := range m.payments {
		totals[p.Status] += p.Amount
	}
	return totals, nil
}

func (m *mockRepo) RevenueOn(_ context.Context, _ time.Time) (int, error) {
	sum := 0
	for _, p := range m.payments {
		sum += p.Amount
	}
	return sum, nil
}

func (m *mockRepo) CountOn(_ context.Context, _ time.Time) (int, error) {
	return len(m.payments), nil
}

type mockPatientCounts struct{}

func (mockPatientCounts) CountByStatus(_ context.Context) (map[workflow.PatientStatus]int, error) {
	return map[workflow.PatientStatus]int{workflow.StatusRegistered: 3, workflow.StatusWithDoctor: 1}, nil
}

func (mockPatientCounts) CountRegisteredOn(_ context.Context, _ time.Time) (int, error) {
	return 4, nil
}

type mockAnalysisCounts struct{}

func (mockAnalysisCounts) CountByStatus(_ context.Context) (map[workflow.AnalysisStatus]int, error) {
	return map[workflow.AnalysisStatus]int{workflow.AnalysisNew: 2}, nil
}

func newTestService() (*Service, *mockRepo) {
	repo := &mockRepo{}
	return NewService(repo, mockPatientCounts{}, mockAnalysisCounts{}), repo
}

func TestRecordPayment(t *testing.T) {
	svc, repo := newTestService()

	if err := svc.RecordPayment(context.Background(), uuid.New(), 50000, workflow.PaymentPaid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.payments) != 1 || repo.payments[0].Amount != 50000 {
		t.Error("expected ledger entry for 50000")
	}

	if err := svc.RecordPayment(context.Background(), uuid.New(), -1, workflow.PaymentPaid); err == nil {
		t.Error("expected error for negative amount")
	}
}

func TestCashierStats(t *testing.T) {
	svc, _ := newTestService()
	patient := uuid.New()

	if err := svc.RecordPayment(context.Background(), patient, 50000, workflow.PaymentPaid); err != nil {
		t.Fatal(err)
	}
	if err := svc.RecordPayment(context.Background(), patient, 20000, workflow.PaymentPartial); err != nil {
		t.Fatal(err)
	}

	stats, err := svc.CashierStats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalsByStatus[workflow.PaymentPaid] != 50000 {
		t.Errorf("expected 50000 paid, got %d", stats.TotalsByStatus[workflow.PaymentPaid])
	}
	if stats.RevenueToday != 70000 || stats.PaymentsToday != 2 {
		t.Errorf("expected 70000 revenue over 2 payments, got %d over %d", stats.RevenueToday, stats.PaymentsToday)
	}
}

func TestDashboardStats(t *testing.T) {
	svc, _ := newTestService()

	stats, err := svc.DashboardStats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.PatientsByStatus[workflow.StatusRegistered] != 3 {
		t.Errorf("expected 3 registered, got %d", stats.PatientsByStatus[workflow.StatusRegistered])
	}
	if stats.PatientsToday != 4 {
		t.Errorf("expected 4 today, got %d", stats.PatientsToday)
	}
	if stats.AnalysesByStatus[workflow.AnalysisNew] != 2 {
		t.Errorf("expected 2 new analyses, got %d", stats.AnalysesByStatus[workflow.AnalysisNew])
	}
}
