package article

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type CreateArticleReq struct {
	Title      string     `json:"title" binding:"required"`
	Summary    *string    `json:"summary,omitempty"`
	Content    string     `json:"content" binding:"required"`
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
	ImageURL   *string    `json:"image_url,omitempty"`
	Tags       []string   `json:"tags,omitempty"`
	Publish    bool       `json:"publish"`
	// PublishAt schedules publication; ignored unless Publish is true.
	PublishAt *time.Time `json:"publish_at,omitempty"`
}

func (r CreateArticleReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Summary, validation.Length(0, 500)),
		validation.Field(&r.Content, validation.Required.Error("content is required")),
		validation.Field(&r.Tags, validation.Length(0, 20)),
	)
}

type UpdateArticleReq struct {
	Title      *string    `json:"title,omitempty"`
	Summary    *string    `json:"summary,omitempty"`
	Content    *string    `json:"content,omitempty"`
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
	ImageURL   *string    `json:"image_url,omitempty"`
	Tags       []string   `json:"tags,omitempty"`
}

func (r UpdateArticleReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Length(1, 255)),
		validation.Field(&r.Summary, validation.Length(0, 500)),
		validation.Field(&r.Tags, validation.Length(0, 20)),
	)
}

// ListQuery drives the public article listing ("fetch page p of up to n").
type ListQuery struct {
	Page     int
	Limit    int
	Category string // category slug filter, empty = all
	Search   string // title substring, empty = no search
}

func (q *ListQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 || q.Limit > 100 {
		q.Limit = 20
	}
}

type ArticleResp struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Summary       *string    `json:"summary,omitempty"`
	Content       string     `json:"content,omitempty"`
	CategoryID    *uuid.UUID `json:"category_id,omitempty"`
	CategoryName  *string    `json:"category_name,omitempty"`
	ImageURL      *string    `json:"image_url,omitempty"`
	Tags          []string   `json:"tags"`
	Status        string     `json:"status"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	AuthorName    string     `json:"author_name,omitempty"`
	ViewCount     int        `json:"view_count"`
	CommentCount  int        `json:"comment_count"`
	ReactionCount int        `json:"reaction_count"`
}

// ArticleToResp maps an entity to the full response DTO.
func ArticleToResp(a *Article) *ArticleResp {
	return &ArticleResp{
		ID:            a.ID,
		Title:         a.Title,
		Slug:          a.Slug,
		Summary:       a.Summary,
		Content:       a.Content,
		CategoryID:    a.CategoryID,
		CategoryName:  a.CategoryName,
		ImageURL:      a.ImageURL,
		Tags:          a.Tags,
		Status:        a.Status,
		PublishedAt:   a.PublishedAt,
		AuthorName:    a.AuthorName,
		ViewCount:     a.ViewCount,
		CommentCount:  a.CommentCount,
		ReactionCount: a.ReactionCount,
	}
}

// ArticleToListResp maps an entity to the listing DTO (no body content).
func ArticleToListResp(a *Article) *ArticleResp {
	resp := ArticleToResp(a)
	resp.Content = ""
	return resp
}
