package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
)

// -- Mock Repository --

type mockRepo struct {
	departments map[uuid.UUID]*Department
	types       map[uuid.UUID]*DepartmentType
	results     map[uuid.UUID]*TypeResult
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		departments: make(map[uuid.UUID]*Department),
		types:       make(map[uuid.UUID]*DepartmentType),
		results:     make(map[uuid.UUID]*TypeResult),
	}
}

func (m *mockRepo) CreateDepartment(_ context.Context, d *Department) error {
	d.ID = uuid.New()
	m.departments[d.ID] = d
	return nil
}

func (m *mockRepo) GetDepartment(_ context.Context, id uuid.UUID) (*Department, error) {
	d, ok := m.departments[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return d, nil
}

func (m *mockRepo) UpdateDepartment(_ context.Context, d *Department) error {
	m.departments[d.ID] = d
	return nil
}

func (m *mockRepo) DeleteDepartment(_ context.Context, id uuid.UUID) error {
	delete(m.departments, id)
	return nil
}

func (m *mockRepo) ListDepartments(_ context.Context, limit, offset int) ([]*Department, int, error) {
	var result []*Department
	for _, d := range m.departments {
		result = append(result, d)
	}
	return result, len(result), nil
}

func (m *mockRepo) CreateType(_ context.Context, t *DepartmentType) error {
	t.ID = uuid.New()
	m.types[t.ID] = t
	return nil
}

func (m *mockRepo) GetType(_ context.Context, id uuid.UUID) (*DepartmentType, error) {
	t, ok := m.types[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return t, nil
}

func (m *mockRepo) UpdateType(_ context.Context, t *DepartmentType) error {
	m.types[t.ID] = t
	return nil
}

func (m *mockRepo) DeleteType(_ context.Context, id uuid.UUID) error {
	delete(m.types, id)
	return nil
}

func (m *mockRepo) ListTypes(_ context.Context, departmentID uuid.UUID, limit, offset int) ([]*DepartmentType, int, error) {
	var result []*DepartmentType
	for _, t := range m.types {
		if departmentID == uuid.Nil || t.DepartmentID == departmentID {
			result = append(result, t)
		}
	}
	return result, len(result), nil
}

func (m *mockRepo) AddTypeResult(_ context.Context, tr *TypeResult) error {
	tr.ID = uuid.New()
	m.results[tr.ID] = tr
	return nil
}

func (m *mockRepo) GetTypeResults(_ context.Context, typeID uuid.UUID) ([]*TypeResult, error) {
	var result []*TypeResult
	for _, tr := range m.results {
		if tr.DepartmentTypeID == typeID {
			result = append(result, tr)
		}
	}
	return result, nil
}

func (m *mockRepo) RemoveTypeResult(_ context.Context, id uuid.UUID) error {
	delete(m.results, id)
	return nil
}

// -- Tests --

func TestCreateDepartment(t *testing.T) {
	svc := NewService(newMockRepo())

	d := &Department{TitleUz: "Laboratoriya", TitleRu: "Лаборатория", TitleEn: "Laboratory"}
	if err := svc.CreateDepartment(context.Background(), d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.ID == uuid.Nil {
		t.Error("expected ID to be set")
	}
}

func TestCreateDepartment_TitleRequired(t *testing.T) {
	svc := NewService(newMockRepo())
	if err := svc.CreateDepartment(context.Background(), &Department{}); err == nil {
		t.Error("expected error for empty titles")
	}
}

func TestCreateType(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)

	d := &Department{TitleUz: "Tahlil"}
	if err := svc.CreateDepartment(context.Background(), d); err != nil {
		t.Fatal(err)
	}

	dt := &DepartmentType{DepartmentID: d.ID, TitleUz: "Qon tahlili", Price: 50000}
	if err := svc.CreateType(context.Background(), dt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dt.ID == uuid.Nil {
		t.Error("expected ID to be set")
	}
}

func TestCreateType_DepartmentMustExist(t *testing.T) {
	svc := NewService(newMockRepo())
	dt := &DepartmentType{DepartmentID: uuid.New(), TitleUz: "X", Price: 100}
	if err := svc.CreateType(context.Background(), dt); err == nil {
		t.Error("expected error for unknown department")
	}
}

func TestCreateType_RejectsNegativePrice(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	d := &Department{TitleUz: "Tahlil"}
	if err := svc.CreateDepartment(context.Background(), d); err != nil {
		t.Fatal(err)
	}
	dt := &DepartmentType{DepartmentID: d.ID, Price: -1}
	if err := svc.CreateType(context.Background(), dt); err == nil {
		t.Error("expected error for negative price")
	}
}

func TestAddTypeResult_NameRequired(t *testing.T) {
	svc := NewService(newMockRepo())
	tr := &TypeResult{DepartmentTypeID: uuid.New()}
	if err := svc.AddTypeResult(context.Background(), tr); err == nil {
		t.Error("expected error for empty name")
	}
}
