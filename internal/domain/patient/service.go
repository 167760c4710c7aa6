package patient

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jamshid-zayniyev/brosmedcrm-sub000/internal/domain/catalog"
	"github.com/jamshid-zayniyev/brosmedcrm-sub000/internal/domain/staff"
	"github.com/jamshid-zayniyev/brosmedcrm-sub000/internal/domain/visit"
	"github.com/jamshid-zayniyev/brosmedcrm-sub000/internal/workflow"
)

// TxRunner runs fn inside one database transaction. The default runner
// executes fn directly, which keeps mock-backed tests free of a database.
type TxRunner func(ctx context.Context, fn func(ctx context.Context) error) error

// Catalog is the slice of the department catalog registration needs.
type Catalog interface {
	GetDepartment(ctx context.Context, id uuid.UUID) (*catalog.Department, error)
	GetType(ctx context.Context, id uuid.UUID) (*catalog.DepartmentType, error)
}

// Doctors resolves consulting doctors for consultative registrations.
type Doctors interface {
	GetByID(ctx context.Context, id uuid.UUID) (*staff.User, error)
}

// VisitOpener starts the clinical episode tied to a registration.
type VisitOpener interface {
	Open(ctx context.Context, v *visit.Visit) error
}

// PaymentRecorder keeps the cashier ledger. Optional; nil disables it.
type PaymentRecorder interface {
	RecordPayment(ctx context.Context, patientID uuid.UUID, amount int, status workflow.PaymentStatus) error
}

type Service struct {
	repo     Repository
	visits   VisitOpener
	catalog  Catalog
	doctors  Doctors
	payments PaymentRecorder
	tx       TxRunner
}

func NewService(repo Repository, visits VisitOpener, cat Catalog, doctors Doctors, tx TxRunner) *Service {
	if tx == nil {
		tx = func(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }
	}
	return &Service{repo: repo, visits: visits, catalog: cat, doctors: doctors, tx: tx}
}

// SetPaymentRecorder wires the cashier ledger in after construction; the
// billing service depends on this package, not the other way around.
func (s *Service) SetPaymentRecorder(pr PaymentRecorder) {
	s.payments = pr
}

// RegisterInput is everything the front desk submits for a new patient.
type RegisterInput struct {
	Name             string                 `json:"name"`
	LastName         string                 `json:"last_name"`
	MiddleName       *string                `json:"middle_name,omitempty"`
	PhoneNumber      string                 `json:"phone_number"`
	Gender           workflow.Gender        `json:"gender"`
	BirthDate        *time.Time             `json:"birth_date,omitempty"`
	Address          string                 `json:"address"`
	DepartmentID     uuid.UUID              `json:"department_id"`
	DepartmentTypeID *uuid.UUID             `json:"department_type_id,omitempty"`
	DoctorID         *uuid.UUID             `json:"doctor_id,omitempty"`
	Complaint        string                 `json:"complaint"`
}

// RegisterResult is the receipt data the front desk prints.
type RegisterResult struct {
	Patient       *Patient     `json:"patient"`
	Visit         *visit.Visit `json:"visit"`
	PaymentAmount int          `json:"payment_amount"`
	QueueNumber   int          `json:"queue_number"`
}

// Register creates the patient and their first visit atomically. The
// payment amount comes from the doctor's consultation price when the
// department is consultative, otherwise from the chosen sub-service price.
func (s *Service) Register(ctx context.Context, actorID uuid.UUID, role workflow.Role, in *RegisterInput) (*RegisterResult, error) {
	if err := workflow.CanRegister(role); err != nil {
		return nil, err
	}
	if in.Name == "" || in.LastName == "" {
		return nil, fmt.Errorf("name and last_name are required")
	}
	if in.PhoneNumber == "" {
		return nil, fmt.Errorf("phone_number is required")
	}
	if !in.Gender.Valid() {
		return nil, fmt.Errorf("invalid gender: %q", in.Gender)
	}

	dept, err := s.catalog.GetDepartment(ctx, in.DepartmentID)
	if err != nil {
		return nil, fmt.Errorf("department not found: %w", err)
	}

	amount := 0
	if dept.Consultative {
		if in.DoctorID == nil {
			return nil, fmt.Errorf("consultative departments require a doctor")
		}
		doc, err := s.doctors.GetByID(ctx, *in.DoctorID)
		if err != nil {
			return nil, fmt.Errorf("doctor not found: %w", err)
		}
		if doc.Role != workflow.RoleDoctor || doc.Price == nil {
			return nil, fmt.Errorf("selected user is not a priced doctor")
		}
		amount = *doc.Price
	} else {
		if in.DepartmentTypeID == nil {
			return nil, fmt.Errorf("department_type_id is required")
		}
		dt, err := s.catalog.GetType(ctx, *in.DepartmentTypeID)
		if err != nil {
			return nil, fmt.Errorf("department type not found: %w", err)
		}
		if dt.DepartmentID != dept.ID {
			return nil, fmt.Errorf("department type belongs to another department")
		}
		amount = dt.Price
	}

	p := &Patient{
		Name:          in.Name,
		LastName:      in.LastName,
		MiddleName:    in.MiddleName,
		PhoneNumber:   in.PhoneNumber,
		Gender:        in.Gender,
		BirthDate:     in.BirthDate,
		Address:       in.Address,
		Status:        workflow.StatusRegistered,
		PaymentStatus: workflow.PaymentPending,
		PaymentAmount: amount,
		DepartmentID:  in.DepartmentID,
		DoctorID:      in.DoctorID,
	}
	v := &visit.Visit{
		DepartmentID:     in.DepartmentID,
		DepartmentTypeID: in.DepartmentTypeID,
		DoctorID:         in.DoctorID,
		Complaint:        in.Complaint,
	}

	err = s.tx(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, p); err != nil {
			return fmt.Errorf("create patient: %w", err)
		}
		v.PatientID = p.ID
		if err := s.visits.Open(ctx, v); err != nil {
			return fmt.Errorf("open visit: %w", err)
		}
		return s.repo.AddStatusChange(ctx, &StatusChange{
			PatientID: p.ID,
			ToStatus:  workflow.StatusRegistered,
			ActorID:   actorID,
		})
	})
	if err != nil {
		return nil, err
	}

	return &RegisterResult{Patient: p, Visit: v, PaymentAmount: amount, QueueNumber: v.QueueNumber}, nil
}

// TransitionStatus moves a patient along the visit workflow. The machine
// decides whether the edge exists and whether the caller's role may take it;
// a successful move writes an audit row in the same transaction.
func (s *Service) TransitionStatus(ctx context.Context, patientID uuid.UUID, to workflow.PatientStatus, actorID uuid.UUID, role workflow.Role) (*Patient, error) {
	p, err := s.repo.GetByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if err := workflow.CanTransition(role, p.Status, to); err != nil {
		return nil, err
	}

	from := p.Status
	p.Status = to
	err = s.tx(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, p); err != nil {
			return fmt.Errorf("update patient: %w", err)
		}
		return s.repo.AddStatusChange(ctx, &StatusChange{
			PatientID:  p.ID,
			FromStatus: from,
			ToStatus:   to,
			ActorID:    actorID,
		})
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// SetPaymentStatus updates the billing state independently of the visit
// workflow; a paid or partial mark is also recorded in the cashier ledger.
func (s *Service) SetPaymentStatus(ctx context.Context, patientID uuid.UUID, to workflow.PaymentStatus) (*Patient, error) {
	if !to.Valid() {
		return nil, fmt.Errorf("invalid payment status: %q", to)
	}
	p, err := s.repo.GetByID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	p.PaymentStatus = to
	err = s.tx(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, p); err != nil {
			return err
		}
		if s.payments != nil && (to == workflow.PaymentPaid || to == workflow.PaymentPartial) {
			return s.payments.RecordPayment(ctx, p.ID, p.PaymentAmount, to)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

// Exists reports whether the patient record is present.
func (s *Service) Exists(ctx context.Context, id uuid.UUID) error {
	_, err := s.repo.GetByID(ctx, id)
	return err
}

func (s *Service) Update(ctx context.Context, p *Patient) error {
	current, err := s.repo.GetByID(ctx, p.ID)
	if err != nil {
		return fmt.Errorf("patient not found: %w", err)
	}
	if p.Name == "" || p.PhoneNumber == "" {
		return fmt.Errorf("name and phone_number are required")
	}
	if !p.Gender.Valid() {
		return fmt.Errorf("invalid gender: %q", p.Gender)
	}
	// Status and billing move through their own endpoints only.
	p.Status = current.Status
	p.PaymentStatus = current.PaymentStatus
	p.PaymentAmount = current.PaymentAmount
	return s.repo.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, status workflow.PatientStatus, limit, offset int) ([]*Patient, int, error) {
	if status != "" && !status.Valid() {
		return nil, 0, fmt.Errorf("%w: %q", workflow.ErrUnknownStatus, status)
	}
	return s.repo.List(ctx, status, limit, offset)
}

func (s *Service) Search(ctx context.Context, q string, limit, offset int) ([]*Patient, int, error) {
	if q == "" {
		return nil, 0, fmt.Errorf("query is required")
	}
	return s.repo.Search(ctx, q, limit, offset)
}

func (s *Service) ForDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Patient, error) {
	return s.repo.ListForDoctor(ctx, doctorID)
}

func (s *Service) StatusHistory(ctx context.Context, patientID uuid.UUID) ([]*StatusChange, error) {
	if _, err := s.repo.GetByID(ctx, patientID); err != nil {
		return nil, err
	}
	return s.repo.StatusHistory(ctx, patientID)
}
