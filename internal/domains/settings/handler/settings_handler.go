package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"memepmw-backend/internal/domains/settings"
	"memepmw-backend/internal/shared/response"
)

type SettingsHandler struct {
	service settings.Service
}

func NewSettingsHandler(svc settings.Service) *SettingsHandler {
	return &SettingsHandler{
		service: svc,
	}
}

// Appearance - GET /api/v1/settings/appearance
func (h *SettingsHandler) Appearance(c *gin.Context) {
	m, err := h.service.Appearance(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"appearance": m})
}

// List - GET /api/v1/admin/settings?group=appearance
func (h *SettingsHandler) List(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context(), c.Query("group"))
	if err != nil {
		response.ErrorResponse(c, settings.GetHTTPStatusCode(err), "SETTINGS_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"settings": resp})
}

// BulkUpsert - PUT /api/v1/admin/settings
func (h *SettingsHandler) BulkUpsert(c *gin.Context) {
	var req settings.BulkUpsertReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.BulkUpsert(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, settings.GetHTTPStatusCode(err), "SETTINGS_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"settings": resp})
}
