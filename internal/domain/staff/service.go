package staff

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jamshid-zayniyev/brosmedcrm-sub000/internal/platform/auth"
	"github.com/jamshid-zayniyev/brosmedcrm-sub000/internal/workflow"
)

// ErrInvalidCredentials is returned for both unknown phone numbers and wrong
// passwords so login responses do not leak which accounts exist.
var ErrInvalidCredentials = errors.New("invalid phone number or password")

type Service struct {
	repo   Repository
	issuer *auth.TokenIssuer
}

func NewService(repo Repository, issuer *auth.TokenIssuer) *Service {
	return &Service{repo: repo, issuer: issuer}
}

// LoginResult pairs the minted tokens with the authenticated user object,
// matching the shape the dashboards persist after login.
type LoginResult struct {
	Tokens *auth.TokenPair `json:"tokens"`
	User   *User           `json:"user"`
}

func (s *Service) Login(ctx context.Context, phone, password string) (*LoginResult, error) {
	if phone == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	u, err := s.repo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !auth.CheckPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	tokens, err := s.issuer.Issue(u.ID, u.Role)
	if err != nil {
		return nil, fmt.Errorf("issue tokens: %w", err)
	}
	return &LoginResult{Tokens: tokens, User: u}, nil
}

func (s *Service) Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	return s.issuer.Refresh(refreshToken)
}

func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) CreateUser(ctx context.Context, u *User, password string) error {
	if u.PhoneNumber == "" {
		return fmt.Errorf("phone_number is required")
	}
	if !u.Role.Valid() {
		return fmt.Errorf("invalid role: %q", u.Role)
	}
	if u.Role == workflow.RoleDoctor && u.Price == nil {
		return fmt.Errorf("doctors require a consultation price")
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return s.repo.Create(ctx, u)
}

func (s *Service) UpdateUser(ctx context.Context, u *User, password string) error {
	existing, err := s.repo.GetByID(ctx, u.ID)
	if err != nil {
		return fmt.Errorf("user not found: %w", err)
	}
	if !u.Role.Valid() {
		return fmt.Errorf("invalid role: %q", u.Role)
	}
	u.PasswordHash = existing.PasswordHash
	if password != "" {
		hash, err := auth.HashPassword(password)
		if err != nil {
			return err
		}
		u.PasswordHash = hash
	}
	return s.repo.Update(ctx, u)
}

func (s *Service) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListUsers(ctx context.Context, role workflow.Role, departmentID uuid.UUID, limit, offset int) ([]*User, int, error) {
	if role != "" && !role.Valid() {
		return nil, 0, fmt.Errorf("invalid role: %q", role)
	}
	return s.repo.List(ctx, role, departmentID, limit, offset)
}

// ListDoctors returns doctor accounts, optionally scoped to a department.
// Reception uses this during registration into consultative departments.
func (s *Service) ListDoctors(ctx context.Context, departmentID uuid.UUID, limit, offset int) ([]*User, int, error) {
	return s.repo.List(ctx, workflow.RoleDoctor, departmentID, limit, offset)
}
