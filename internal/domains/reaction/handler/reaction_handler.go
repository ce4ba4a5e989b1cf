package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"memepmw-backend/internal/domains/reaction"
	"memepmw-backend/internal/shared/response"
)

type ReactionHandler struct {
	service reaction.Service
}

func NewReactionHandler(svc reaction.Service) *ReactionHandler {
	return &ReactionHandler{
		service: svc,
	}
}

// React - POST /api/v1/articles/:id/reactions
func (h *ReactionHandler) React(c *gin.Context) {
	articleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid article id")
		return
	}

	var req reaction.ReactReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.React(c.Request.Context(), articleID, &req)
	if err != nil {
		response.ErrorResponse(c, reaction.GetHTTPStatusCode(err), "REACTION_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Counts - GET /api/v1/articles/:id/reactions
func (h *ReactionHandler) Counts(c *gin.Context) {
	articleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid article id")
		return
	}

	resp, err := h.service.Counts(c.Request.Context(), articleID)
	if err != nil {
		response.ErrorResponse(c, reaction.GetHTTPStatusCode(err), "REACTION_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}
