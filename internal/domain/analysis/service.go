package analysis

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jamshid-zayniyev/brosmedcrm-sub000/internal/domain/catalog"
	"github.com/jamshid-zayniyev/brosmedcrm-sub000/internal/workflow"
)

// Catalog is the slice of the department catalog lab orders need.
type Catalog interface {
	GetType(ctx context.Context, id uuid.UUID) (*catalog.DepartmentType, error)
	GetTypeResults(ctx context.Context, typeID uuid.UUID) ([]*catalog.TypeResult, error)
}

// Patients confirms a patient exists before ordering against them.
type Patients interface {
	Exists(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo     Repository
	catalog  Catalog
	patients Patients
}

func NewService(repo Repository, cat Catalog, patients Patients) *Service {
	return &Service{repo: repo, catalog: cat, patients: patients}
}

// CreateOrder opens a new lab order in status n.
func (s *Service) CreateOrder(ctx context.Context, a *Analysis) error {
	if err := s.patients.Exists(ctx, a.PatientID); err != nil {
		return fmt.Errorf("patient not found: %w", err)
	}
	if _, err := s.catalog.GetType(ctx, a.DepartmentTypeID); err != nil {
		return fmt.Errorf("department type not found: %w", err)
	}
	a.Status = workflow.AnalysisNew
	return s.repo.Create(ctx, a)
}

// SetStatus records the lab operator's assertion of where the order stands.
// Completion is not inferred from results; an order may be finished with any
// number of values, zero included.
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status workflow.AnalysisStatus) (*Analysis, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("invalid analysis status: %q", status)
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// ResultInput is one submitted value; blank values are skipped so a partial
// form submits cleanly.
type ResultInput struct {
	TypeResultID uuid.UUID `json:"type_result_id"`
	Value        string    `json:"value"`
}

// SubmitResults stores the non-blank values of a batch against the order.
// Every referenced field must belong to the order's catalog type.
func (s *Service) SubmitResults(ctx context.Context, analysisID uuid.UUID, inputs []ResultInput) ([]*Result, error) {
	a, err := s.repo.GetByID(ctx, analysisID)
	if err != nil {
		return nil, fmt.Errorf("analysis not found: %w", err)
	}

	fields, err := s.catalog.GetTypeResults(ctx, a.DepartmentTypeID)
	if err != nil {
		return nil, fmt.Errorf("load result fields: %w", err)
	}
	known := make(map[uuid.UUID]bool, len(fields))
	for _, f := range fields {
		known[f.ID] = true
	}

	var results []*Result
	for _, in := range inputs {
		if in.Value == "" {
			continue
		}
		if !known[in.TypeResultID] {
			return nil, fmt.Errorf("result field %s does not belong to this analysis type", in.TypeResultID)
		}
		results = append(results, &Result{
			AnalysisID:   analysisID,
			TypeResultID: in.TypeResultID,
			Value:        in.Value,
		})
	}
	if len(results) > 0 {
		if err := s.repo.AddResults(ctx, results); err != nil {
			return nil, err
		}
	}
	return results, nil
}

// AttachFile records attachment metadata for an order.
func (s *Service) AttachFile(ctx context.Context, f *File) error {
	if f.Name == "" {
		return fmt.Errorf("file name is required")
	}
	if _, err := s.repo.GetByID(ctx, f.AnalysisID); err != nil {
		return fmt.Errorf("analysis not found: %w", err)
	}
	return s.repo.AddFile(ctx, f)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Analysis, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, status workflow.AnalysisStatus, limit, offset int) ([]*Analysis, int, error) {
	if status != "" && !status.Valid() {
		return nil, 0, fmt.Errorf("invalid analysis status: %q", status)
	}
	return s.repo.List(ctx, status, limit, offset)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Analysis, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *Service) Results(ctx context.Context, analysisID uuid.UUID) ([]*Result, error) {
	return s.repo.GetResults(ctx, analysisID)
}

func (s *Service) Files(ctx context.Context, analysisID uuid.UUID) ([]*File, error) {
	return s.repo.ListFiles(ctx, analysisID)
}
