package visit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Open starts a clinical episode and assigns the patient a position in the
// department's queue for today.
func (s *Service) Open(ctx context.Context, v *Visit) error {
	if v.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	if v.DepartmentID == uuid.Nil {
		return fmt.Errorf("department_id is required")
	}
	n, err := s.repo.NextQueueNumber(ctx, v.DepartmentID, time.Now())
	if err != nil {
		return fmt.Errorf("assign queue number: %w", err)
	}
	v.QueueNumber = n
	return s.repo.Create(ctx, v)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Visit, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, v *Visit) error {
	if _, err := s.repo.GetByID(ctx, v.ID); err != nil {
		return fmt.Errorf("visit not found: %w", err)
	}
	if v.DepartmentID == uuid.Nil {
		return fmt.Errorf("department_id is required")
	}
	return s.repo.Update(ctx, v)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, departmentID uuid.UUID, limit, offset int) ([]*Visit, int, error) {
	return s.repo.List(ctx, departmentID, limit, offset)
}

func (s *Service) History(ctx context.Context, patientID uuid.UUID) ([]*Visit, error) {
	return s.repo.ListByPatient(ctx, patientID)
}
