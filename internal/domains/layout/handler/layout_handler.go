package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"memepmw-backend/internal/domains/layout"
	"memepmw-backend/internal/shared/response"
)

type LayoutHandler struct {
	service layout.Service
}

func NewLayoutHandler(svc layout.Service) *LayoutHandler {
	return &LayoutHandler{
		service: svc,
	}
}

// Active - GET /api/v1/layouts/active
// Returns null data when no layout is active, never a 404.
func (h *LayoutHandler) Active(c *gin.Context) {
	resp, err := h.service.Active(c.Request.Context())
	if err != nil {
		if errors.Is(err, layout.ErrNoActiveLayout) {
			response.Success(c, http.StatusOK, nil)
			return
		}
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ComposeHome - GET /api/v1/compose/home
func (h *LayoutHandler) ComposeHome(c *gin.Context) {
	resp, err := h.service.ComposeHome(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// List - GET /api/v1/admin/layouts
func (h *LayoutHandler) List(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"layouts": resp})
}

// GetByID - GET /api/v1/admin/layouts/:id
func (h *LayoutHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid layout id")
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, layout.GetHTTPStatusCode(err), "LAYOUT_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Create - POST /api/v1/admin/layouts
func (h *LayoutHandler) Create(c *gin.Context) {
	var req layout.CreateLayoutReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "missing user identity")
		return
	}

	resp, err := h.service.Create(c.Request.Context(), userID, &req)
	if err != nil {
		response.ErrorResponse(c, layout.GetHTTPStatusCode(err), "LAYOUT_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// Update - PUT /api/v1/admin/layouts/:id
func (h *LayoutHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid layout id")
		return
	}

	var req layout.UpdateLayoutReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "missing user identity")
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, userID, &req)
	if err != nil {
		response.ErrorResponse(c, layout.GetHTTPStatusCode(err), "LAYOUT_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Delete - DELETE /api/v1/admin/layouts/:id
func (h *LayoutHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid layout id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ErrorResponse(c, layout.GetHTTPStatusCode(err), "LAYOUT_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Layout deleted successfully"})
}

// Activate - POST /api/v1/admin/layouts/:id/activate
func (h *LayoutHandler) Activate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid layout id")
		return
	}

	resp, err := h.service.Activate(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, layout.GetHTTPStatusCode(err), "LAYOUT_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ApplyOp - POST /api/v1/admin/layouts/editor/apply
// Stateless editor endpoint: the client round-trips {blocks, selected}
// and one operation; the response is the next editor state.
func (h *LayoutHandler) ApplyOp(c *gin.Context) {
	var req layout.ApplyOpReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.ApplyOp(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, layout.GetHTTPStatusCode(err), "LAYOUT_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return uuid.Nil, false
	}

	id, ok := v.(uuid.UUID)
	return id, ok
}
