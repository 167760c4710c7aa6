package patient

import (
	"context"
	"fmt"
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

const patientCols = `id, name, last_name, middle_name, phone_number, gender, birth_date, address,
	status, payment_status, payment_amount, department_id, doctor_id, created_at, updated_at`

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO patient (id, name, last_name, middle_name, phone_number, gender, birth_date, address,
			status, payment_status, payment_amount, department_id, doctor_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		p.ID, p.Name, p.LastName, p.MiddleName, p.PhoneNumber, p.Gender, p.BirthDate, p.Address,
		p.Status, p.PaymentStatus, p.PaymentAmount, p.DepartmentID, p.DoctorID,
	)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return scanPatient(r.conn(ctx).QueryRow(ctx, `SELECT `+patientCols+` FROM patient WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, p *Patient) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE patient SET name=$2, last_name=$3, middle_name=$4, phone_number=$5, gender=$6,
			birth_date=$7, address=$8, status=$9, payment_status=$10, payment_amount=$11,
			department_id=$12, doctor_id=$13, updated_at=NOW()
		WHERE id = $1`,
		p.ID, p.Name, p.LastName, p.MiddleName, p.PhoneNumber, p.Gender,
		p.BirthDate, p.Address, p.Status, p.PaymentStatus, p.PaymentAmount,
		p.DepartmentID, p.DoctorID,
	)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM patient WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, status workflow.PatientStatus, limit, offset int) ([]*Patient, int, error) {
	where := ""
	args := []interface{}{}
	if status != "" {
		where = " WHERE status = $1"
		args = append(args, status)
	}

	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM patient`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT %s FROM patient%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		patientCols, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	patients, err := collectPatients(rows)
	if err != nil {
		return nil, 0, err
	}
	return patients, total, nil
}

func (r *repoPG) Search(ctx context.Context, q string, limit, offset int) ([]*Patient, int, error) {
	pattern := "%" + q + "%"

	var total int
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT COUNT(*) FROM patient
		WHERE name ILIKE $1 OR last_name ILIKE $1 OR phone_number ILIKE $1`, pattern,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+patientCols+` FROM patient
		WHERE name ILIKE $1 OR last_name ILIKE $1 OR phone_number ILIKE $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		pattern, limit, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	patients, err := collectPatients(rows)
	if err != nil {
		return nil, 0, err
	}
	return patients, total, nil
}

func (r *repoPG) ListForDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Patient, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+patientCols+` FROM patient
		WHERE doctor_id = $1 AND status = $2
		ORDER BY created_at ASC`,
		doctorID, workflow.StatusWithDoctor,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPatients(rows)
}

func (r *repoPG) AddStatusChange(ctx context.Context, sc *StatusChange) error {
	sc.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO patient_status_history (id, patient_id, from_status, to_status, actor_id)
		VALUES ($1,$2,$3,$4,$5)`,
		sc.ID, sc.PatientID, sc.FromStatus, sc.ToStatus, sc.ActorID,
	)
	return err
}

func (r *repoPG) StatusHistory(ctx context.Context, patientID uuid.UUID) ([]*StatusChange, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, patient_id, from_status, to_status, actor_id, created_at
		FROM patient_status_history WHERE patient_id = $1 ORDER BY created_at ASC`,
		patientID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var changes []*StatusChange
	for rows.Next() {
		var sc StatusChange
		if err := rows.Scan(&sc.ID, &sc.PatientID, &sc.FromStatus, &sc.ToStatus, &sc.ActorID, &sc.CreatedAt); err != nil {
			return nil, err
		}
		changes = append(changes, &sc)
	}
	return changes, rows.Err()
}

func (r *repoPG) CountByStatus(ctx context.Context) (map[workflow.PatientStatus]int, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT status, COUNT(*) FROM patient GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[workflow.PatientStatus]int)
	for rows.Next() {
		var status workflow.PatientStatus
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

func (r *repoPG) CountRegisteredOn(ctx context.Context, day time.Time) (int, error) {
	var n int
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM patient WHERE created_at::date = $1::date`, day,
	).Scan(&n)
	return n, err
}

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.Name, &p.LastName, &p.MiddleName, &p.PhoneNumber, &p.Gender,
		&p.BirthDate, &p.Address, &p.Status, &p.PaymentStatus, &p.PaymentAmount,
		&p.DepartmentID, &p.DoctorID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func collectPatients(rows pgx.Rows) ([]*Patient, error) {
	var patients []*Patient
	for rows.Next() {
		var p Patient
		if err := rows.Scan(&p.ID, &p.Name, &p.LastName, &p.MiddleName, &p.PhoneNumber, &p.Gender,
			&p.BirthDate, &p.Address, &p.Status, &p.PaymentStatus, &p.PaymentAmount,
			&p.DepartmentID, &p.DoctorID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		patients = append(patients, &p)
	}
	return patients, rows.Err()
}
