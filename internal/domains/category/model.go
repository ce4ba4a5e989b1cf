package category

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"memepmw-backend/internal/shared/utils"
)

// Category groups articles for listing, filtering and layout blocks.
type Category struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Slug        string    `json:"slug" db:"slug"`
	Description *string   `json:"description,omitempty" db:"description"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// NewCategory validates input and builds a category with a generated slug.
func NewCategory(name string, description *string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidCategoryName
	}
	if len(name) > 100 {
		return nil, ErrInvalidCategoryName
	}

	return &Category{
		Name:        name,
		Slug:        utils.GenerateSlug(name),
		Description: description,
		IsActive:    true,
	}, nil
}

// Rename updates the name and regenerates the slug.
func (c *Category) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > 100 {
		return ErrInvalidCategoryName
	}

	c.Name = name
	c.Slug = utils.GenerateSlug(name)
	return nil
}
