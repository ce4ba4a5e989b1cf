package page

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"memepmw-backend/internal/shared/utils"
)

// Page statuses.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Page is a static site page (about, contact, privacy policy).
type Page struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Title     string     `json:"title" db:"title"`
	Slug      string     `json:"slug" db:"slug"`
	Content   string     `json:"content" db:"content"`
	Status    string     `json:"status" db:"status"`
	CreatedBy *uuid.UUID `json:"created_by,omitempty" db:"created_by"`
	UpdatedBy *uuid.UUID `json:"updated_by,omitempty" db:"updated_by"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

// NewPage validates input and builds a draft page.
func NewPage(title, content string, createdBy uuid.UUID) (*Page, error) {
	title = strings.TrimSpace(title)
	if title == "" || len(title) > 200 {
		return nil, ErrInvalidTitle
	}

	return &Page{
		Title:     title,
		Slug:      utils.GenerateSlug(title),
		Content:   content,
		Status:    StatusDraft,
		CreatedBy: &createdBy,
	}, nil
}

// Retitle updates the title and regenerates the slug.
func (p *Page) Retitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" || len(title) > 200 {
		return ErrInvalidTitle
	}

	p.Title = title
	p.Slug = utils.GenerateSlug(title)
	return nil
}

// IsPublished reports whether the page is publicly visible.
func (p *Page) IsPublished() bool {
	return p.Status == StatusPublished
}

// ValidStatus reports whether s is a known page status.
func ValidStatus(s string) bool {
	return s == StatusDraft || s == StatusPublished
}
