package billing

import (
	"time"

	"github.com/google/uuid"

	"github.com/jamshid-zayniyev/brosmedcrm-sub000/internal/workflow"
)

// Payment is one ledger entry, written when the cashier marks a patient paid
// or partially paid.
type Payment struct {
	ID        uuid.UUID              `db:"id" json:"id"`
	PatientID uuid.UUID              `db:"patient_id" json:"patient_id"`
	Amount    int                    `db:"amount" json:"amount"`
	Status    workflow.PaymentStatus `db:"status" json:"status"`
	CreatedAt time.Time              `db:"created_at" json:"created_at"`
}

// CashierStats is the cashier dashboard payload.
type CashierStats struct {
	TotalsByStatus map[workflow.PaymentStatus]int `json:"totals_by_status"`
	RevenueToday   int                            `json:"revenue_today"`
	PaymentsToday  int                            `json:"payments_today"`
}

// DashboardStats is the shared per-role overview: patient flow, lab load and
// the day's revenue.
type DashboardStats struct {
	PatientsByStatus map[workflow.PatientStatus]int  `json:"patients_by_status"`
	PatientsToday    int                             `json:"patients_today"`
	AnalysesByStatus map[workflow.AnalysisStatus]int `json:"analyses_by_status"`
	RevenueToday     int                             `json:"revenue_today"`
}
