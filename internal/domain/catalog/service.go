package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateDepartment(ctx context.Context, d *Department) error {
	if d.TitleUz == "" && d.TitleRu == "" && d.TitleEn == "" {
		return fmt.Errorf("at least one title is required")
	}
	return s.repo.CreateDepartment(ctx, d)
}

func (s *Service) GetDepartment(ctx context.Context, id uuid.UUID) (*Department, error) {
	return s.repo.GetDepartment(ctx, id)
}

func (s *Service) UpdateDepartment(ctx context.Context, d *Department) error {
	if d.ID == uuid.Nil {
		return fmt.Errorf("id is required")
	}
	return s.repo.UpdateDepartment(ctx, d)
}

func (s *Service) DeleteDepartment(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteDepartment(ctx, id)
}

func (s *Service) ListDepartments(ctx context.Context, limit, offset int) ([]*Department, int, error) {
	return s.repo.ListDepartments(ctx, limit, offset)
}

func (s *Service) CreateType(ctx context.Context, t *DepartmentType) error {
	if t.DepartmentID == uuid.Nil {
		return fmt.Errorf("department_id is required")
	}
	if t.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	if _, err := s.repo.GetDepartment(ctx, t.DepartmentID); err != nil {
		return fmt.Errorf("department not found: %w", err)
	}
	return s.repo.CreateType(ctx, t)
}

func (s *Service) GetType(ctx context.Context, id uuid.UUID) (*DepartmentType, error) {
	return s.repo.GetType(ctx, id)
}

func (s *Service) UpdateType(ctx context.Context, t *DepartmentType) error {
	if t.ID == uuid.Nil {
		return fmt.Errorf("id is required")
	}
	if t.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	return s.repo.UpdateType(ctx, t)
}

func (s *Service) DeleteType(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteType(ctx, id)
}

func (s *Service) ListTypes(ctx context.Context, departmentID uuid.UUID, limit, offset int) ([]*DepartmentType, int, error) {
	return s.repo.ListTypes(ctx, departmentID, limit, offset)
}

func (s *Service) AddTypeResult(ctx context.Context, tr *TypeResult) error {
	if tr.DepartmentTypeID == uuid.Nil {
		return fmt.Errorf("department_type_id is required")
	}
	if tr.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.repo.AddTypeResult(ctx, tr)
}

func (s *Service) GetTypeResults(ctx context.Context, typeID uuid.UUID) ([]*TypeResult, error) {
	return s.repo.GetTypeResults(ctx, typeID)
}

func (s *Service) RemoveTypeResult(ctx context.Context, id uuid.UUID) error {
	return s.repo.RemoveTypeResult(ctx, id)
}
