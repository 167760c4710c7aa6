package catalog

import (
	"context"
	"fmt"

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

const deptCols = `id, title_uz, title_ru, title_en, consultative, created_at, updated_at`

func (r *repoPG) CreateDepartment(ctx context.Context, d *Department) error {
	d.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO department (id, title_uz, title_ru, title_en, consultative)
		VALUES ($1,$2,$3,$4,$5)`,
		d.ID, d.TitleUz, d.TitleRu, d.TitleEn, d.Consultative,
	)
	return err
}

func (r *repoPG) GetDepartment(ctx context.Context, id uuid.UUID) (*Department, error) {
	return scanDept(r.conn(ctx).QueryRow(ctx, `SELECT `+deptCols+` FROM department WHERE id = $1`, id))
}

func (r *repoPG) UpdateDepartment(ctx context.Context, d *Department) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE department SET title_uz=$2, title_ru=$3, title_en=$4, consultative=$5, updated_at=NOW()
		WHERE id = $1`,
		d.ID, d.TitleUz, d.TitleRu, d.TitleEn, d.Consultative,
	)
	return err
}

func (r *repoPG) DeleteDepartment(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM department WHERE id = $1`, id)
	return err
}

func (r *repoPG) ListDepartments(ctx context.Context, limit, offset int) ([]*Department, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM department`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+deptCols+` FROM department ORDER BY title_uz LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var depts []*Department
	for rows.Next() {
		var d Department
		if err := rows.Scan(&d.ID, &d.TitleUz, &d.TitleRu, &d.TitleEn, &d.Consultative, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, 0, err
		}
		depts = append(depts, &d)
	}
	return depts, total, rows.Err()
}

const typeCols = `id, department_id, title_uz, title_ru, title_en, price, created_at, updated_at`

func (r *repoPG) CreateType(ctx context.Context, t *DepartmentType) error {
	t.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO department_type (id, department_id, title_uz, title_ru, title_en, price)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		t.ID, t.DepartmentID, t.TitleUz, t.TitleRu, t.TitleEn, t.Price,
	)
	return err
}

func (r *repoPG) GetType(ctx context.Context, id uuid.UUID) (*DepartmentType, error) {
	return scanType(r.conn(ctx).QueryRow(ctx, `SELECT `+typeCols+` FROM department_type WHERE id = $1`, id))
}

func (r *repoPG) UpdateType(ctx context.Context, t *DepartmentType) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE department_type SET title_uz=$2, title_ru=$3, title_en=$4, price=$5, updated_at=NOW()
		WHERE id = $1`,
		t.ID, t.TitleUz, t.TitleRu, t.TitleEn, t.Price,
	)
	return err
}

func (r *repoPG) DeleteType(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM department_type WHERE id = $1`, id)
	return err
}

func (r *repoPG) ListTypes(ctx context.Context, departmentID uuid.UUID, limit, offset int) ([]*DepartmentType, int, error) {
	where := ``
	args := []interface{}{}
	if departmentID != uuid.Nil {
		where = ` WHERE department_id = $1`
		args = append(args, departmentID)
	}

	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM department_type`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	n := len(args)
	query := fmt.Sprintf(`SELECT `+typeCols+` FROM department_type%s ORDER BY title_uz LIMIT $%d OFFSET $%d`,
		where, n+1, n+2)
	args = append(args, limit, offset)

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var types []*DepartmentType
	for rows.Next() {
		var t DepartmentType
		if err := rows.Scan(&t.ID, &t.DepartmentID, &t.TitleUz, &t.TitleRu, &t.TitleEn, &t.Price, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, 0, err
		}
		types = append(types, &t)
	}
	return types, total, rows.Err()
}

func (r *repoPG) AddTypeResult(ctx context.Context, tr *TypeResult) error {
	tr.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO department_type_result (id, department_type_id, name, norm)
		VALUES ($1,$2,$3,$4)`,
		tr.ID, tr.DepartmentTypeID, tr.Name, tr.Norm,
	)
	return err
}

func (r *repoPG) GetTypeResults(ctx context.Context, typeID uuid.UUID) ([]*TypeResult, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, department_type_id, name, norm
		FROM department_type_result WHERE department_type_id = $1 ORDER BY name`, typeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*TypeResult
	for rows.Next() {
		var tr TypeResult
		if err := rows.Scan(&tr.ID, &tr.DepartmentTypeID, &tr.Name, &tr.Norm); err != nil {
			return nil, err
		}
		results = append(results, &tr)
	}
	return results, rows.Err()
}

func (r *repoPG) RemoveTypeResult(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM department_type_result WHERE id = $1`, id)
	return err
}

func scanDept(row pgx.Row) (*Department, error) {
	var d Department
	err := row.Scan(&d.ID, &d.TitleUz, &d.TitleRu, &d.TitleEn, &d.Consultative, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func scanType(row pgx.Row) (*DepartmentType, error) {
	var t DepartmentType
	err := row.Scan(&t.ID, &t.DepartmentID, &t.TitleUz, &t.TitleRu, &t.TitleEn, &t.Price, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
