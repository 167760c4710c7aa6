package clinic

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

func (r *repoPG) Get(ctx context.Context) (*About, error) {
	var a About
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT id, name, address, phone, logo_path, updated_at FROM clinic_about LIMIT 1`).
		Scan(&a.ID, &a.Name, &a.Address, &a.Phone, &a.LogoPath, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repoPG) Upsert(ctx context.Context, a *About) error {
	existing, err := r.Get(ctx)
	if err == nil {
		a.ID = existing.ID
		_, err = r.conn(ctx).Exec(ctx, `
			UPDATE clinic_about SET name=$2, address=$3, phone=$4, logo_path=$5, updated_at=NOW()
			WHERE id = $1`,
			a.ID, a.Name, a.Address, a.Phone, a.LogoPath,
		)
		return err
	}

	a.ID = uuid.New()
	_, err = r.conn(ctx).Exec(ctx, `
		INSERT INTO clinic_about (id, name, address, phone, logo_path)
		VALUES ($1,$2,$3,$4,$5)`,
		a.ID, a.Name, a.Address, a.Phone, a.LogoPath,
	)
	return err
}
