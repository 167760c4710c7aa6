package analysis

import (
	"context"
	"fmt"

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

const analysisCols = `id, patient_id, department_type_id, status, ordered_by, created_at, updated_at`

func (r *repoPG) Create(ctx context.Context, a *Analysis) error {
	a.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO analysis (id, patient_id, department_type_id, status, ordered_by)
		VALUES ($1,$2,$3,$4,$5)`,
		a.ID, a.PatientID, a.DepartmentTypeID, a.Status, a.OrderedBy,
	)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Analysis, error) {
	return scanAnalysis(r.conn(ctx).QueryRow(ctx, `SELECT `+analysisCols+` FROM analysis WHERE id = $1`, id))
}

func (r *repoPG) UpdateStatus(ctx context.Context, id uuid.UUID, status workflow.AnalysisStatus) error {
	tag, err := r.conn(ctx).Exec(ctx,
		`UPDATE analysis SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("analysis %s not found", id)
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM analysis WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, status workflow.AnalysisStatus, limit, offset int) ([]*Analysis, int, error) {
	where := ""
	args := []interface{}{}
	if status != "" {
		where = " WHERE status = $1"
		args = append(args, status)
	}

	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM analysis`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT %s FROM analysis%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		analysisCols, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	analyses, err := collectAnalyses(rows)
	if err != nil {
		return nil, 0, err
	}
	return analyses, total, nil
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Analysis, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+analysisCols+` FROM analysis WHERE patient_id = $1 ORDER BY created_at DESC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAnalyses(rows)
}

func (r *repoPG) AddResults(ctx context.Context, results []*Result) error {
	for _, res := range results {
		res.ID = uuid.New()
		_, err := r.conn(ctx).Exec(ctx, `
			INSERT INTO analysis_result (id, analysis_id, type_result_id, value)
			VALUES ($1,$2,$3,$4)`,
			res.ID, res.AnalysisID, res.TypeResultID, res.Value,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *repoPG) GetResults(ctx context.Context, analysisID uuid.UUID) ([]*Result, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, analysis_id, type_result_id, value, created_at
		FROM analysis_result WHERE analysis_id = $1 ORDER BY created_at ASC`, analysisID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*Result
	for rows.Next() {
		var res Result
		if err := rows.Scan(&res.ID, &res.AnalysisID, &res.TypeResultID, &res.Value, &res.CreatedAt); err != nil {
			return nil, err
		}
		results = append(results, &res)
	}
	return results, rows.Err()
}

func (r *repoPG) AddFile(ctx context.Context, f *File) error {
	f.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO analysis_file (id, analysis_id, name, content_type, size, storage_path)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		f.ID, f.AnalysisID, f.Name, f.ContentType, f.Size, f.StoragePath,
	)
	return err
}

func (r *repoPG) ListFiles(ctx context.Context, analysisID uuid.UUID) ([]*File, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, analysis_id, name, content_type, size, storage_path, created_at
		FROM analysis_file WHERE analysis_id = $1 ORDER BY created_at ASC`, analysisID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []*File
	for rows.Next() {
		var f File
		if err := rows.Scan(&f.ID, &f.AnalysisID, &f.Name, &f.ContentType, &f.Size, &f.StoragePath, &f.CreatedAt); err != nil {
			return nil, err
		}
		files = append(files, &f)
	}
	return files, rows.Err()
}

func (r *repoPG) CountByStatus(ctx context.Context) (map[workflow.AnalysisStatus]int, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT status, COUNT(*) FROM analysis GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[workflow.AnalysisStatus]int)
	for rows.Next() {
		var status workflow.AnalysisStatus
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

func scanAnalysis(row pgx.Row) (*Analysis, error) {
	var a Analysis
	err := row.Scan(&a.ID, &a.PatientID, &a.DepartmentTypeID, &a.Status, &a.OrderedBy, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func collectAnalyses(rows pgx.Rows) ([]*Analysis, error) {
	var analyses []*Analysis
	for rows.Next() {
		var a Analysis
		if err := rows.Scan(&a.ID, &a.PatientID, &a.DepartmentTypeID, &a.Status, &a.OrderedBy, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		analyses = append(analyses, &a)
	}
	return analyses, rows.Err()
}
