package visit

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockRepo struct {
	visits map[uuid.UUID]*Visit
}

func newMockRepo() *mockRepo {
	return &mockRepo{visits: make(map[uuid.UUID]*Visit)}
}

func (m *mockRepo) Create(_ context.Context, v *Visit) error {
	v.ID = uuid.New()
	v.CreatedAt = time.Now()
	m.visits[v.ID] = v
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Visit, error) {
	v, ok := m.visits[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return v, nil
}

func (m *mockRepo) Update(_ context.Context, v *Visit) error {
	m.visits[v.ID] = v
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.visits, id)
	return nil
}

func (m *mockRepo) List(_ context.Context, departmentID uuid.UUID, limit, offset int) ([]*Visit, int, error) {
	var result []*Visit
	for _, v := range m.visits {
		if departmentID != uuid.Nil && v.DepartmentID != departmentID {
			continue
		}
		result = append(result, v)
	}
	return result, len(result), nil
}

func (m *mockRepo) ListByPatient(_ context.Context, patientID uuid.UUID) ([]*Visit, error) {
	var result []*Visit
	for _, v := range m.visits {
		if v.PatientID == patientID {
			result = append(result, v)
		}
	}
	return result, nil
}

func (m *mockRepo) NextQueueNumber(_ context.Context, departmentID uuid.UUID, day time.Time) (int, error) {
	max := 0
	for _, v := range m.visits {
		if v.DepartmentID == departmentID && sameDay(v.CreatedAt, day) && v.QueueNumber > max {
			max = v.QueueNumber
		}
	}
	return max + 1, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func TestOpen_AssignsQueueNumbersPerDepartment(t *testing.T) {
	svc := NewService(newMockRepo())
	depA := uuid.New()
	depB := uuid.New()

	v1 := &Visit{PatientID: uuid.New(), DepartmentID: depA}
	v2 := &Visit{PatientID: uuid.New(), DepartmentID: depA}
	v3 := &Visit{PatientID: uuid.New(), DepartmentID: depB}
	for _, v := range []*Visit{v1, v2, v3} {
		if err := svc.Open(context.Background(), v); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if v1.QueueNumber != 1 || v2.QueueNumber != 2 {
		t.Errorf("expected queue 1,2 in department A, got %d,%d", v1.QueueNumber, v2.QueueNumber)
	}
	if v3.QueueNumber != 1 {
		t.Errorf("expected queue to restart per department, got %d", v3.QueueNumber)
	}
}

func TestOpen_RequiresPatientAndDepartment(t *testing.T) {
	svc := NewService(newMockRepo())

	if err := svc.Open(context.Background(), &Visit{DepartmentID: uuid.New()}); err == nil {
		t.Error("expected error without patient_id")
	}
	if err := svc.Open(context.Background(), &Visit{PatientID: uuid.New()}); err == nil {
		t.Error("expected error without department_id")
	}
}

func TestHistory_ReturnsOnlyPatientVisits(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	patient := uuid.New()
	dep := uuid.New()

	mine := &Visit{PatientID: patient, DepartmentID: dep}
	other := &Visit{PatientID: uuid.New(), DepartmentID: dep}
	for _, v := range []*Visit{mine, other} {
		if err := svc.Open(context.Background(), v); err != nil {
			t.Fatal(err)
		}
	}

	history, err := svc.History(context.Background(), patient)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(history) != 1 || history[0].ID != mine.ID {
		t.Errorf("expected only the patient's visit, got %d", len(history))
	}
}

func TestUpdate_UnknownVisit(t *testing.T) {
	svc := NewService(newMockRepo())
	err := svc.Update(context.Background(), &Visit{ID: uuid.New(), DepartmentID: uuid.New()})
	if err == nil {
		t.Error("expected error for unknown visit")
	}
}
