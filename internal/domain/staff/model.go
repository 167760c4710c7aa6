package staff

import (
	"time"

	"github.com/google/uuid"

	"github.com/jamshid-zayniyev/brosmedcrm-sub000/internal/workflow"
)

// User is a staff account. Doctors carry a consultation price that drives
// registration receipts; other roles leave it null.
type User struct {
	ID           uuid.UUID     `db:"id" json:"id"`
	PhoneNumber  string        `db:"phone_number" json:"phone_number"`
	PasswordHash string        `db:"password_hash" json:"-"`
	Name         string        `db:"name" json:"name"`
	LastName     string        `db:"last_name" json:"last_name"`
	MiddleName   *string       `db:"middle_name" json:"middle_name,omitempty"`
	Role         workflow.Role `db:"role" json:"role"`
	DepartmentID *uuid.UUID    `db:"department_id" json:"department_id,omitempty"`
	Price        *int          `db:"price" json:"price,omitempty"`
	CreatedAt    time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time     `db:"updated_at" json:"updated_at"`
}
