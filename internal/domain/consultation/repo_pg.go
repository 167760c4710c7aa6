package consultation

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jamshid-zayniyev/brosmedcrm-sub000/internal/platform/db"
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

const consultationCols = `id, patient_id, doctor_id, diagnosis, recommendation, prescription, resulting_status, created_at`

func (r *repoPG) Create(ctx context.Context, c *Consultation) error {
	c.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO consultation (id, patient_id, doctor_id, diagnosis, recommendation, prescription, resulting_status)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		c.ID, c.PatientID, c.DoctorID, c.Diagnosis, c.Recommendation, c.Prescription, c.ResultingStatus,
	)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Consultation, error) {
	var c Consultation
	err := r.conn(ctx).QueryRow(ctx, `SELECT `+consultationCols+` FROM consultation WHERE id = $1`, id).
		Scan(&c.ID, &c.PatientID, &c.DoctorID, &c.Diagnosis, &c.Recommendation, &c.Prescription, &c.ResultingStatus, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Consultation, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+consultationCols+` FROM consultation WHERE patient_id = $1 ORDER BY created_at DESC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func (r *repoPG) ListByDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*Consultation, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM consultation WHERE doctor_id = $1`, doctorID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+consultationCols+` FROM consultation
		WHERE doctor_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		doctorID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	consultations, err := collect(rows)
	if err != nil {
		return nil, 0, err
	}
	return consultations, total, nil
}

func collect(rows pgx.Rows) ([]*Consultation, error) {
	var consultations []*Consultation
	for rows.Next() {
		var c Consultation
		if err := rows.Scan(&c.ID, &c.PatientID, &c.DoctorID, &c.Diagnosis, &c.Recommendation,
			&c.Prescription, &c.ResultingStatus, &c.CreatedAt); err != nil {
			return nil, err
		}
		consultations = append(consultations, &c)
	}
	return consultations, rows.Err()
}
