package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"memepmw-backend/internal/domains/comment"
	"memepmw-backend/internal/shared/response"
)

type CommentHandler struct {
	service comment.Service
}

func NewCommentHandler(svc comment.Service) *CommentHandler {
	return &CommentHandler{
		service: svc,
	}
}

// Create - POST /api/v1/articles/:id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	articleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid article id")
		return
	}

	var req comment.CreateCommentReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), articleID, &req)
	if err != nil {
		response.ErrorResponse(c, comment.GetHTTPStatusCode(err), "COMMENT_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// ListForArticle - GET /api/v1/articles/:id/comments
func (h *CommentHandler) ListForArticle(c *gin.Context) {
	articleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid article id")
		return
	}

	resp, err := h.service.ListForArticle(c.Request.Context(), articleID)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"comments": resp})
}

// ListAll - GET /api/v1/admin/comments?status=pending&page=1&limit=20
func (h *CommentHandler) ListAll(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	status := c.Query("status")

	resp, total, err := h.service.ListAll(c.Request.Context(), status, page, limit)
	if err != nil {
		response.ErrorResponse(c, comment.GetHTTPStatusCode(err), "COMMENT_ERROR", err.Error())
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, gin.H{"comments": resp}, &response.Meta{
		Page:  page,
		Limit: limit,
		Total: total,
	})
}

// Moderate - PATCH /api/v1/admin/comments/:id
func (h *CommentHandler) Moderate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid comment id")
		return
	}

	var req comment.ModerateCommentReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Moderate(c.Request.Context(), id, &req)
	if err != nil {
		response.ErrorResponse(c, comment.GetHTTPStatusCode(err), "COMMENT_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Delete - DELETE /api/v1/admin/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid comment id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ErrorResponse(c, comment.GetHTTPStatusCode(err), "COMMENT_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}
