package visit

import (
	"context"
	"fmt"
	"time"

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

const visitCols = `id, patient_id, department_id, department_type_id, doctor_id, complaint, queue_number, created_at, updated_at`

func (r *repoPG) Create(ctx context.Context, v *Visit) error {
	v.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO visit (id, patient_id, department_id, department_type_id, doctor_id, complaint, queue_number)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		v.ID, v.PatientID, v.DepartmentID, v.DepartmentTypeID, v.DoctorID, v.Complaint, v.QueueNumber,
	)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Visit, error) {
	return scanVisit(r.conn(ctx).QueryRow(ctx, `SELECT `+visitCols+` FROM visit WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, v *Visit) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE visit SET department_id=$2, department_type_id=$3, doctor_id=$4, complaint=$5, updated_at=NOW()
		WHERE id = $1`,
		v.ID, v.DepartmentID, v.DepartmentTypeID, v.DoctorID, v.Complaint,
	)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM visit WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, departmentID uuid.UUID, limit, offset int) ([]*Visit, int, error) {
	where := ""
	args := []interface{}{}
	if departmentID != uuid.Nil {
		where = " WHERE department_id = $1"
		args = append(args, departmentID)
	}

	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM visit`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT %s FROM visit%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		visitCols, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	visits, err := collectVisits(rows)
	if err != nil {
		return nil, 0, err
	}
	return visits, total, nil
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Visit, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+visitCols+` FROM visit WHERE patient_id = $1 ORDER BY created_at DESC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectVisits(rows)
}

func (r *repoPG) NextQueueNumber(ctx context.Context, departmentID uuid.UUID, day time.Time) (int, error) {
	q := r.conn(ctx)
	// Concurrent registrations in one department serialize on this lock;
	// the unique index on (department_id, day, queue_number) is the backstop.
	if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1::text))`, departmentID); err != nil {
		return 0, err
	}
	var max int
	err := q.QueryRow(ctx, `
		SELECT COALESCE(MAX(queue_number), 0) FROM visit
		WHERE department_id = $1 AND created_at::date = $2::date`,
		departmentID, day,
	).Scan(&max)
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

func scanVisit(row pgx.Row) (*Visit, error) {
	var v Visit
	err := row.Scan(&v.ID, &v.PatientID, &v.DepartmentID, &v.DepartmentTypeID, &v.DoctorID,
		&v.Complaint, &v.QueueNumber, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func collectVisits(rows pgx.Rows) ([]*Visit, error) {
	var visits []*Visit
	for rows.Next() {
		var v Visit
		if err := rows.Scan(&v.ID, &v.PatientID, &v.DepartmentID, &v.DepartmentTypeID, &v.DoctorID,
			&v.Complaint, &v.QueueNumber, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		visits = append(visits, &v)
	}
	return visits, rows.Err()
}
