package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jamshid-zayniyev/brosmedcrm-sub000/internal/platform/db"
	"github.com/jamshid-zayniyev/brosmedcrm-sub000/internal/workflow"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

type querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

func (r *repoPG) conn(ctx context.Context) querier {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const paymentCols = `id, patient_id, amount, status, created_at`

func (r *repoPG) Create(ctx context.Context, p *Payment) error {
	p.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO payment (id, patient_id, amount, status)
		VALUES ($1,$2,$3,$4)`,
		p.ID, p.PatientID, p.Amount, p.Status,
	)
	return err
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Payment, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM payment`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+paymentCols+` FROM payment ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	payments, err := collectPayments(rows)
	if err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Payment, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+paymentCols+` FROM payment WHERE patient_id = $1 ORDER BY created_at DESC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPayments(rows)
}

func (r *repoPG) TotalsByStatus(ctx context.Context) (map[workflow.PaymentStatus]int, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT status, COALESCE(SUM(amount), 0) FROM payment GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[workflow.PaymentStatus]int)
	for rows.Next() {
		var status workflow.PaymentStatus
		var sum int
		if err := rows.Scan(&status, &sum); err != nil {
			return nil, err
		}
		totals[status] = sum
	}
	return totals, rows.Err()
}

func (r *repoPG) RevenueOn(ctx context.Context, day time.Time) (int, error) {
	var sum int
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM payment WHERE created_at::date = $1::date`, day).Scan(&sum)
	return sum, err
}

func (r *repoPG) CountOn(ctx context.Context, day time.Time) (int, error) {
	var n int
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM payment WHERE created_at::date = $1::date`, day).Scan(&n)
	return n, err
}

func collectPayments(rows pgx.Rows) ([]*Payment, error) {
	var payments []*Payment
	for rows.Next() {
		var p Payment
		if err := rows.Scan(&p.ID, &p.PatientID, &p.Amount, &p.Status, &p.CreatedAt); err != nil {
			return nil, err
		}
		payments = append(payments, &p)
	}
	return payments, rows.Err()
}
