package consultation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jamshid-zayniyev/brosmedcrm-sub000/internal/domain/patient"
	"github.com/jamshid-zayniyev/brosmedcrm-sub000/internal/workflow"
)

// StatusApplier moves the patient through the visit workflow; satisfied by
// the patient service.
type StatusApplier interface {
	TransitionStatus(ctx context.Context, patientID uuid.UUID, to workflow.PatientStatus, actorID uuid.UUID, role workflow.Role) (*patient.Patient, error)
}

type TxRunner func(ctx context.Context, fn func(ctx context.Context) error) error

type Service struct {
	repo     Repository
	patients StatusApplier
	tx       TxRunner
}

func NewService(repo Repository, patients StatusApplier, tx TxRunner) *Service {
	if tx == nil {
		tx = func(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }
	}
	return &Service{repo: repo, patients: patients, tx: tx}
}

// Create records the doctor's outcome and moves the patient to the resulting
// status in one unit. The workflow machine still judges the move, so a
// consultation for a patient who never reached the doctor is rejected whole.
func (s *Service) Create(ctx context.Context, c *Consultation, doctorID uuid.UUID, role workflow.Role) error {
	if c.Diagnosis == "" {
		return fmt.Errorf("diagnosis is required")
	}
	if c.ResultingStatus != workflow.StatusUnderTreatment && c.ResultingStatus != workflow.StatusFinished {
		return fmt.Errorf("resulting status must be %s or %s", workflow.StatusUnderTreatment, workflow.StatusFinished)
	}
	c.DoctorID = doctorID

	return s.tx(ctx, func(ctx context.Context) error {
		if _, err := s.patients.TransitionStatus(ctx, c.PatientID, c.ResultingStatus, doctorID, role); err != nil {
			return err
		}
		return s.repo.Create(ctx, c)
	})
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Consultation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) HistoryForPatient(ctx context.Context, patientID uuid.UUID) ([]*Consultation, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *Service) ListByDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*Consultation, int, error) {
	return s.repo.ListByDoctor(ctx, doctorID, limit, offset)
}
