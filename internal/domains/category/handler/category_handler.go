package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"memepmw-backend/internal/domains/category"
	"memepmw-backend/internal/shared/response"
)

type CategoryHandler struct {
	service category.Service
}

func NewCategoryHandler(svc category.Service) *CategoryHandler {
	return &CategoryHandler{
		service: svc,
	}
}

// Create - POST /api/v1/admin/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req category.CreateCategoryReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, category.GetHTTPStatusCode(err), "CATEGORY_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// GetByID - GET /api/v1/categories/:id
func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, category.GetHTTPStatusCode(err), "CATEGORY_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// GetBySlug - GET /api/v1/categories/by-slug/:slug
func (h *CategoryHandler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		response.BadRequest(c, "invalid slug")
		return
	}

	resp, err := h.service.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		response.ErrorResponse(c, category.GetHTTPStatusCode(err), "CATEGORY_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// List - GET /api/v1/categories?active=true
func (h *CategoryHandler) List(c *gin.Context) {
	onlyActive := c.Query("active") == "true"

	resp, err := h.service.List(c.Request.Context(), onlyActive)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Update - PUT /api/v1/admin/categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return
	}

	var req category.UpdateCategoryReq
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
		response.ErrorResponse(c, category.GetHTTPStatusCode(err), "CATEGORY_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Delete - DELETE /api/v1/admin/categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ErrorResponse(c, category.GetHTTPStatusCode(err), "CATEGORY_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
