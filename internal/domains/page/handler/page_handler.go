package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"memepmw-backend/internal/domains/page"
	"memepmw-backend/internal/shared/response"
)

type PageHandler struct {
	service page.Service
}

func NewPageHandler(svc page.Service) *PageHandler {
	return &PageHandler{
		service: svc,
	}
}

// GetBySlug - GET /api/v1/pages/by-slug/:slug
func (h *PageHandler) GetBySlug(c *gin.Context) {
	resp, err := h.service.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.ErrorResponse(c, page.GetHTTPStatusCode(err), "PAGE_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// List - GET /api/v1/admin/pages
func (h *PageHandler) List(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"pages": resp})
}

// GetByID - GET /api/v1/admin/pages/:id
func (h *PageHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid page id")
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, page.GetHTTPStatusCode(err), "PAGE_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Create - POST /api/v1/admin/pages
func (h *PageHandler) Create(c *gin.Context) {
	var req page.CreatePageReq
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
		response.ErrorResponse(c, page.GetHTTPStatusCode(err), "PAGE_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// Update - PUT /api/v1/admin/pages/:id
func (h *PageHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid page id")
		return
	}

	var req page.UpdatePageReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	editorID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "missing user identity")
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, editorID, &req)
	if err != nil {
		response.ErrorResponse(c, page.GetHTTPStatusCode(err), "PAGE_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Delete - DELETE /api/v1/admin/pages/:id
func (h *PageHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid page id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ErrorResponse(c, page.GetHTTPStatusCode(err), "PAGE_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Page deleted successfully"})
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return uuid.Nil, false
	}

	id, ok := v.(uuid.UUID)
	return id, ok
}
