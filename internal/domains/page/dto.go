package page

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type CreatePageReq struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
	Status  string `json:"status"`
}

func (r CreatePageReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 200),
		),
		validation.Field(&r.Status,
			validation.In(StatusDraft, StatusPublished).Error("unknown status"),
		),
	)
}

type UpdatePageReq struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Status  *string `json:"status"`
}

func (r UpdatePageReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&r.Status,
			validation.In(StatusDraft, StatusPublished).Error("unknown status"),
		),
	)
}

type PageResp struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Content   string    `json:"content"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func PageToResp(p *Page) *PageResp {
	return &PageResp{
		ID:        p.ID,
		Title:     p.Title,
		Slug:      p.Slug,
		Content:   p.Content,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
