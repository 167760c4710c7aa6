package staff

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

const userCols = `id, phone_number, password_hash, name, last_name, middle_name,
	role, department_id, price, created_at, updated_at`

func (r *repoPG) Create(ctx context.Context, u *User) error {
	u.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO staff_user (id, phone_number, password_hash, name, last_name, middle_name, role, department_id, price)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		u.ID, u.PhoneNumber, u.PasswordHash, u.Name, u.LastName, u.MiddleName, u.Role, u.DepartmentID, u.Price,
	)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return scanUser(r.conn(ctx).QueryRow(ctx, `SELECT `+userCols+` FROM staff_user WHERE id = $1`, id))
}

func (r *repoPG) GetByPhone(ctx context.Context, phone string) (*User, error) {
	return scanUser(r.conn(ctx).QueryRow(ctx, `SELECT `+userCols+` FROM staff_user WHERE phone_number = $1`, phone))
}

func (r *repoPG) Update(ctx context.Context, u *User) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE staff_user SET
			phone_number=$2, password_hash=$3, name=$4, last_name=$5, middle_name=$6,
			role=$7, department_id=$8, price=$9, updated_at=NOW()
		WHERE id = $1`,
		u.ID, u.PhoneNumber, u.PasswordHash, u.Name, u.LastName, u.MiddleName,
		u.Role, u.DepartmentID, u.Price,
	)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM staff_user WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, role workflow.Role, departmentID uuid.UUID, limit, offset int) ([]*User, int, error) {
	where := ``
	args := []interface{}{}
	if role != "" {
		args = append(args, role)
		where = fmt.Sprintf(` WHERE role = $%d`, len(args))
	}
	if departmentID != uuid.Nil {
		args = append(args, departmentID)
		if where == "" {
			where = fmt.Sprintf(` WHERE department_id = $%d`, len(args))
		} else {
			where += fmt.Sprintf(` AND department_id = $%d`, len(args))
		}
	}

	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM staff_user`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	n := len(args)
	query := fmt.Sprintf(`SELECT `+userCols+` FROM staff_user%s ORDER BY last_name, name LIMIT $%d OFFSET $%d`,
		where, n+1, n+2)
	args = append(args, limit, offset)

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var users []*User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.PhoneNumber, &u.PasswordHash, &u.Name, &u.LastName, &u.MiddleName,
			&u.Role, &u.DepartmentID, &u.Price, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, 0, err
		}
		users = append(users, &u)
	}
	return users, total, rows.Err()
}

func scanUser(row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.PhoneNumber, &u.PasswordHash, &u.Name, &u.LastName, &u.MiddleName,
		&u.Role, &u.DepartmentID, &u.Price, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
