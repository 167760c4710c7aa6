package catalog

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	CreateDepartment(ctx context.Context, d *Department) error
	GetDepartment(ctx context.Context, id uuid.UUID) (*Department, error)
	UpdateDepartment(ctx context.Context, d *Department) error
	DeleteDepartment(ctx context.Context, id uuid.UUID) error
	ListDepartments(ctx context.Context, limit, offset int) ([]*Department, int, error)

	CreateType(ctx context.Context, t *DepartmentType) error
	GetType(ctx context.Context, id uuid.UUID) (*DepartmentType, error)
	UpdateType(ctx context.Context, t *DepartmentType) error
	DeleteType(ctx context.Context, id uuid.UUID) error
	ListTypes(ctx context.Context, departmentID uuid.UUID, limit, offset int) ([]*DepartmentType, int, error)

	AddTypeResult(ctx context.Context, r *TypeResult) error
	GetTypeResults(ctx context.Context, typeID uuid.UUID) ([]*TypeResult, error)
	RemoveTypeResult(ctx context.Context, id uuid.UUID) error
}
