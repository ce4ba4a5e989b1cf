package comment

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Comment statuses. New comments land in pending until moderated.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Comment is a reader comment attached to an article.
type Comment struct {
	ID         uuid.UUID `json:"id" db:"id"`
	ArticleID  uuid.UUID `json:"article_id" db:"article_id"`
	AuthorName string    `json:"author_name" db:"author_name"`
	Content    string    `json:"content" db:"content"`
	Status     string    `json:"status" db:"status"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// NewComment validates input and builds a pending comment.
func NewComment(articleID uuid.UUID, authorName, content string) (*Comment, error) {
	authorName = strings.TrimSpace(authorName)
	content = strings.TrimSpace(content)

	if authorName == "" || len(authorName) > 80 {
		return nil, ErrInvalidAuthorName
	}
	if content == "" || len(content) > 2000 {
		return nil, ErrInvalidContent
	}

	return &Comment{
		ArticleID:  articleID,
		AuthorName: authorName,
		Content:    content,
		Status:     StatusPending,
	}, nil
}

// ValidStatus reports whether s is a known moderation status.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}
