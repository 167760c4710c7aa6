package clinic

import (
	"time"

	"github.com/google/uuid"
)

// About is the single settings row shown on receipts and the login screen.
type About struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Address   string    `db:"address" json:"address"`
	Phone     string    `db:"phone" json:"phone"`
	LogoPath  string    `db:"logo_path" json:"logo_path"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
