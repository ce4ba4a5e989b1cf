package article

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"memepmw-backend/internal/shared/utils"
)

// Article statuses.
const (
	StatusDraft     = "draft"
	StatusScheduled = "scheduled"
	StatusPublished = "published"
)

// Article is a published or draft news entry.
type Article struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Slug        string     `json:"slug" db:"slug"`
	Summary     *string    `json:"summary,omitempty" db:"summary"`
	Content     string     `json:"content" db:"content"`
	CategoryID  *uuid.UUID `json:"category_id,omitempty" db:"category_id"`
	ImageURL    *string    `json:"image_url,omitempty" db:"image_url"`
	Tags        []string   `json:"tags" db:"tags"`
	Status      string     `json:"status" db:"status"`
	PublishedAt *time.Time `json:"published_at,omitempty" db:"published_at"`
	AuthorID    uuid.UUID  `json:"author_id" db:"author_id"`
	ViewCount   int        `json:"view_count" db:"view_count"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`

	// Joined/aggregated columns, not part of the articles table.
	CategoryName  *string `json:"category_name,omitempty" db:"-"`
	AuthorName    string  `json:"author_name,omitempty" db:"-"`
	CommentCount  int     `json:"comment_count" db:"-"`
	ReactionCount int     `json:"reaction_count" db:"-"`
}

// NewArticle validates input and builds a draft article with a generated slug.
func NewArticle(title, content string, authorID uuid.UUID) (*Article, error) {
	title = strings.TrimSpace(title)
	if title == "" || len(title) > 255 {
		return nil, ErrInvalidTitle
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrInvalidContent
	}

	return &Article{
		Title:    title,
		Slug:     utils.GenerateSlug(title),
		Content:  content,
		Status:   StatusDraft,
		AuthorID: authorID,
		Tags:     []string{},
	}, nil
}

// Retitle updates the title and regenerates the slug.
func (a *Article) Retitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" || len(title) > 255 {
		return ErrInvalidTitle
	}

	a.Title = title
	a.Slug = utils.GenerateSlug(title)
	return nil
}

// Publish marks the article published. A nil at publishes immediately;
// a future at schedules it (the worker flips it to published when due).
func (a *Article) Publish(at *time.Time) {
	now := time.Now()
	if at == nil || !at.After(now) {
		a.Status = StatusPublished
		if at == nil {
			a.PublishedAt = &now
		} else {
			a.PublishedAt = at
		}
		return
	}

	a.Status = StatusScheduled
	a.PublishedAt = at
}

// Unpublish reverts the article to draft.
func (a *Article) Unpublish() {
	a.Status = StatusDraft
	a.PublishedAt = nil
}

// IsVisible reports whether the article should appear on public pages.
func (a *Article) IsVisible(now time.Time) bool {
	return a.Status == StatusPublished && a.PublishedAt != nil && !a.PublishedAt.After(now)
}
