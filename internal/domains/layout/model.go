package layout

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// PageLayout is a named, persisted block sequence. At most one layout
// is active at a time; the active one drives the public home page.
type PageLayout struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	Blocks    []Block    `json:"blocks" db:"blocks"`
	IsActive  bool       `json:"is_active" db:"is_active"`
	CreatedBy *uuid.UUID `json:"created_by,omitempty" db:"created_by"`
	UpdatedBy *uuid.UUID `json:"updated_by,omitempty" db:"updated_by"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

// NewPageLayout validates input and builds an inactive layout.
func NewPageLayout(name string, blocks []Block, createdBy uuid.UUID) (*PageLayout, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > 100 {
		return nil, ErrInvalidName
	}
	if blocks == nil {
		blocks = []Block{}
	}
	for _, b := range blocks {
		if !ValidBlockType(b.Type) {
			return nil, ErrInvalidBlockType
		}
	}

	return &PageLayout{
		Name:      name,
		Blocks:    blocks,
		CreatedBy: &createdBy,
	}, nil
}
