package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"memepmw-backend/internal/domains/user"
	"memepmw-backend/internal/shared/response"
)

type UserHandler struct {
	service user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{
		service: svc,
	}
}

// Register - POST /api/v1/auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, user.GetHTTPStatusCode(err), "USER_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// Login - POST /api/v1/auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, user.GetHTTPStatusCode(err), "USER_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Refresh - POST /api/v1/auth/refresh
func (h *UserHandler) Refresh(c *gin.Context) {
	var req user.RefreshReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Refresh(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, user.GetHTTPStatusCode(err), "USER_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Profile - GET /api/v1/auth/me
func (h *UserHandler) Profile(c *gin.Context) {
	id, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "missing user identity")
		return
	}

	resp, err := h.service.Profile(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, user.GetHTTPStatusCode(err), "USER_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ChangePassword - PUT /api/v1/auth/password
func (h *UserHandler) ChangePassword(c *gin.Context) {
	id, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "missing user identity")
		return
	}

	var req user.ChangePasswordReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), id, &req); err != nil {
		response.ErrorResponse(c, user.GetHTTPStatusCode(err), "USER_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Password changed successfully"})
}

// List - GET /api/v1/admin/users?page=1&limit=20
func (h *UserHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	resp, total, err := h.service.List(c.Request.Context(), page, limit)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, gin.H{"users": resp}, &response.Meta{
		Page:  page,
		Limit: limit,
		Total: total,
	})
}

// Update - PATCH /api/v1/admin/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	var req user.UpdateUserReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.UpdateUser(c.Request.Context(), id, &req)
	if err != nil {
		response.ErrorResponse(c, user.GetHTTPStatusCode(err), "USER_ERROR", err.Error())
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
