package comment

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type CreateCommentReq struct {
	AuthorName string `json:"author_name" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

func (r CreateCommentReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AuthorName,
			validation.Required.Error("author name is required"),
			validation.Length(1, 80),
		),
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
			validation.Length(1, 2000),
		),
	)
}

type ModerateCommentReq struct {
	Status string `json:"status" binding:"required"`
}

func (r ModerateCommentReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status,
			validation.Required.Error("status is required"),
			validation.In(StatusPending, StatusApproved, StatusRejected).Error("unknown status"),
		),
	)
}

type CommentResp struct {
	ID         uuid.UUID `json:"id"`
	ArticleID  uuid.UUID `json:"article_id"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func CommentToResp(c *Comment) *CommentResp {
	return &CommentResp{
		ID:         c.ID,
		ArticleID:  c.ArticleID,
		AuthorName: c.AuthorName,
		Content:    c.Content,
		Status:     c.Status,
		CreatedAt:  c.CreatedAt,
	}
}
