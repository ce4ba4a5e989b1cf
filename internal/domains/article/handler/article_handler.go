package handler

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"memepmw-backend/internal/domains/article"
	"memepmw-backend/internal/shared/response"
)

const maxImageSize = 5 << 20 // 5 MiB

type ArticleHandler struct {
	service article.Service
}

func NewArticleHandler(svc article.Service) *ArticleHandler {
	return &ArticleHandler{
		service: svc,
	}
}

// List - GET /api/v1/articles?page=1&limit=20&category=memes&search=...
func (h *ArticleHandler) List(c *gin.Context) {
	q := &article.ListQuery{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	q.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	q.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	q.Normalize()

	resp, total, err := h.service.ListPublished(c.Request.Context(), q)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, gin.H{"articles": resp}, &response.Meta{
		Page:  q.Page,
		Limit: q.Limit,
		Total: total,
	})
}

// GetBySlug - GET /api/v1/articles/by-slug/:slug
func (h *ArticleHandler) GetBySlug(c *gin.Context) {
	resp, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.ErrorResponse(c, article.GetHTTPStatusCode(err), "ARTICLE_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// GetByID - GET /api/v1/admin/articles/:id
func (h *ArticleHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid article id")
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, article.GetHTTPStatusCode(err), "ARTICLE_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ListAll - GET /api/v1/admin/articles?page=1&limit=20
func (h *ArticleHandler) ListAll(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	resp, total, err := h.service.ListAll(c.Request.Context(), page, limit)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, gin.H{"articles": resp}, &response.Meta{
		Page:  page,
		Limit: limit,
		Total: total,
	})
}

// Create - POST /api/v1/admin/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	var req article.CreateArticleReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	authorID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "missing user identity")
		return
	}

	resp, err := h.service.Create(c.Request.Context(), authorID, &req)
	if err != nil {
		response.ErrorResponse(c, article.GetHTTPStatusCode(err), "ARTICLE_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// Update - PUT /api/v1/admin/articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid article id")
		return
	}

	var req article.UpdateArticleReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.ErrorResponse(c, article.GetHTTPStatusCode(err), "ARTICLE_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Publish - POST /api/v1/admin/articles/:id/publish
func (h *ArticleHandler) Publish(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid article id")
		return
	}

	var req article.PublishArticleReq
	if c.Request.ContentLength > 0 {
		if err := c.BindJSON(&req); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	}

	resp, err := h.service.Publish(c.Request.Context(), id, &req)
	if err != nil {
		response.ErrorResponse(c, article.GetHTTPStatusCode(err), "ARTICLE_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Unpublish - POST /api/v1/admin/articles/:id/unpublish
func (h *ArticleHandler) Unpublish(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid article id")
		return
	}

	resp, err := h.service.Unpublish(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, article.GetHTTPStatusCode(err), "ARTICLE_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Delete - DELETE /api/v1/admin/articles/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid article id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ErrorResponse(c, article.GetHTTPStatusCode(err), "ARTICLE_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// UploadImage - POST /api/v1/admin/articles/:id/image (multipart form, field "image")
func (h *ArticleHandler) UploadImage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid article id")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "missing image file")
		return
	}
	if fileHeader.Size > maxImageSize {
		response.BadRequest(c, "image exceeds 5MB limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "unreadable image file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize+1))
	if err != nil {
		response.InternalServerError(c, "failed to read image")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	url, err := h.service.UploadImage(c.Request.Context(), id, fileHeader.Filename, contentType, data)
	if err != nil {
		response.ErrorResponse(c, article.GetHTTPStatusCode(err), "ARTICLE_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"image_url": url})
}

// Export - GET /api/v1/admin/articles/export
func (h *ArticleHandler) Export(c *gin.Context) {
	data, err := h.service.ExportXLSX(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	filename := fmt.Sprintf("articles-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("userID")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
