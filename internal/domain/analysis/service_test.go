package analysis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jamshid-zayniyev/brosmedcrm-sub000/internal/domain/catalog"
	"github.com/jamshid-zayniyev/brosmedcrm-sub000/internal/workflow"
)

type mockRepo struct {
	analyses map[uuid.UUID]*Analysis
	results  []*Result
	files    []*File
}

func newMockRepo() *mockRepo {
	return &mockRepo{analyses: make(map[uuid.UUID]*Analysis)}
}

func (m *mockRepo) Create(_ context.Context, a *Analysis) error {
	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	m.analyses[a.ID] = a
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Analysis, error) {
	a, ok := m.analyses[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return a, nil
}

func (m *mockRepo) UpdateStatus(_ context.Context, id uuid.UUID, status workflow.AnalysisStatus) error {
	a, ok := m.analyses[id]
	if !ok {
		return fmt.Errorf("not found")
	}
	a.Status = status
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.analyses, id)
	return nil
}

func (m *mockRepo) List(_ context.Context, status workflow.AnalysisStatus, limit, offset int) ([]*Analysis, int, error) {
	var result []*Analysis
	for _, a := range m.analyses {
		if status != "" && a.Status != status {
			continue
		}
		result = append(result, a)
	}
	return result, len(result), nil
}

func (m *mockRepo) ListByPatient(_ context.Context, patientID uuid.UUID) ([]*Analysis, error) {
	var result []*Analysis
	for _, a := range m.analyses {
		if a.PatientID == patientID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *mockRepo) AddResults(_ context.Context, results []*Result) error {
	for _, res := range results {
		res.ID = uuid.New()
	}
	m.results = append(m.results, results...)
	return nil
}

func (m *mockRepo) GetResults(_ context.Context, analysisID uuid.UUID) ([]*Result, error) {
	var result []*Result
	for _, res := range m.results {
		if res.AnalysisID == analysisID {
			result = append(result, res)
		}
	}
	return result, nil
}

func (m *mockRepo) AddFile(_ context.Context, f *File) error {
	f.ID = uuid.New()
	m.files = append(m.files, f)
	return nil
}

func (m *mockRepo) ListFiles(_ context.Context, analysisID uuid.UUID) ([]*File, error) {
	var result []*File
	for _, f := range m.files {
		if f.AnalysisID == analysisID {
			result = append(result, f)
		}
	}
	return result, nil
}

func (m *mockRepo) CountByStatus(_ context.Context) (map[workflow.AnalysisStatus]int, error) {
	counts := make(map[workflow.AnalysisStatus]int)
	for _, a := range m.analyses {
		counts[a.Status]++
	}
	return counts, nil
}

type mockCatalog struct {
	types  map[uuid.UUID]*catalog.DepartmentType
	fields map[uuid.UUID][]*catalog.TypeResult
}

func (m *mockCatalog) GetType(_ context.Context, id uuid.UUID) (*catalog.DepartmentType, error) {
	t, ok := m.types[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return t, nil
}

func (m *mockCatalog) GetTypeResults(_ context.Context, typeID uuid.UUID) ([]*catalog.TypeResult, error) {
	return m.fields[typeID], nil
}

type mockPatients struct {
	known map[uuid.UUID]bool
}

func (m *mockPatients) Exists(_ context.Context, id uuid.UUID) error {
	if !m.known[id] {
		return fmt.Errorf("not found")
	}
	return nil
}

type fixture struct {
	svc       *Service
	repo      *mockRepo
	patientID uuid.UUID
	typeID    uuid.UUID
	fieldA    uuid.UUID
	fieldB    uuid.UUID
}

func newFixture() *fixture {
	repo := newMockRepo()
	patientID := uuid.New()
	typeID := uuid.New()
	fieldA := uuid.New()
	fieldB := uuid.New()

	cat := &mockCatalog{
		types: map[uuid.UUID]*catalog.DepartmentType{
			typeID: {ID: typeID, TitleUz: "Qon tahlili", Price: 50000},
		},
		fields: map[uuid.UUID][]*catalog.TypeResult{
			typeID: {
				{ID: fieldA, DepartmentTypeID: typeID, Name: "Gemoglobin", Norm: "120-160"},
				{ID: fieldB, DepartmentTypeID: typeID, Name: "Leykotsitlar", Norm: "4-9"},
			},
		},
	}
	patients := &mockPatients{known: map[uuid.UUID]bool{patientID: true}}

	return &fixture{
		svc:       NewService(repo, cat, patients),
		repo:      repo,
		patientID: patientID,
		typeID:    typeID,
		fieldA:    fieldA,
		fieldB:    fieldB,
	}
}

func order(t *testing.T, f *fixture) *Analysis {
	t.Helper()
	a := &Analysis{PatientID: f.patientID, DepartmentTypeID: f.typeID, OrderedBy: uuid.New()}
	if err := f.svc.CreateOrder(context.Background(), a); err != nil {
		t.Fatal(err)
	}
	return a
}

func TestCreateOrder_StartsNew(t *testing.T) {
	f := newFixture()
	a := order(t, f)
	if a.Status != workflow.AnalysisNew {
		t.Errorf("expected status n, got %s", a.Status)
	}
}

func TestCreateOrder_UnknownPatient(t *testing.T) {
	f := newFixture()
	a := &Analysis{PatientID: uuid.New(), DepartmentTypeID: f.typeID}
	if err := f.svc.CreateOrder(context.Background(), a); err == nil {
		t.Error("expected error for unknown patient")
	}
}

func TestSubmitResults_SkipsBlankValues(t *testing.T) {
	f := newFixture()
	a := order(t, f)

	results, err := f.svc.SubmitResults(context.Background(), a.ID, []ResultInput{
		{TypeResultID: f.fieldA, Value: "135"},
		{TypeResultID: f.fieldB, Value: ""},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].Value != "135" {
		t.Errorf("expected only the filled value stored, got %d", len(results))
	}
}

func TestSubmitResults_RejectsForeignField(t *testing.T) {
	f := newFixture()
	a := order(t, f)

	_, err := f.svc.SubmitResults(context.Background(), a.ID, []ResultInput{
		{TypeResultID: uuid.New(), Value: "7"},
	})
	if err == nil {
		t.Error("expected error for field outside the analysis type")
	}
}

// Completion is the operator's word. An order marked finished with no
// submitted values stays finished.
func TestSetStatus_FinishedWithZeroResultsAccepted(t *testing.T) {
	f := newFixture()
	a := order(t, f)

	updated, err := f.svc.SetStatus(context.Background(), a.ID, workflow.AnalysisFinished)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != workflow.AnalysisFinished {
		t.Errorf("expected status f, got %s", updated.Status)
	}
	results, _ := f.svc.Results(context.Background(), a.ID)
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestSetStatus_InvalidCode(t *testing.T) {
	f := newFixture()
	a := order(t, f)
	if _, err := f.svc.SetStatus(context.Background(), a.ID, "done"); err == nil {
		t.Error("expected error for unknown analysis status")
	}
}

func TestAttachFile(t *testing.T) {
	f := newFixture()
	a := order(t, f)

	file := &File{AnalysisID: a.ID, Name: "natija.pdf", ContentType: "application/pdf", Size: 1024, StoragePath: "analysis/natija.pdf"}
	if err := f.svc.AttachFile(context.Background(), file); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	files, err := f.svc.Files(context.Background(), a.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || files[0].Name != "natija.pdf" {
		t.Error("expected the attachment listed")
	}

	if err := f.svc.AttachFile(context.Background(), &File{AnalysisID: a.ID}); err == nil {
		t.Error("expected error for unnamed file")
	}
}

func TestListByPatient(t *testing.T) {
	f := newFixture()
	order(t, f)

	analyses, err := f.svc.ListByPatient(context.Background(), f.patientID)
	if err != nil {
		t.Fatal(err)
	}
	if len(analyses) != 1 {
		t.Errorf("expected one order, got %d", len(analyses))
	}
}
