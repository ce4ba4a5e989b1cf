package user

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business operations for the user domain.
type Service interface {
	Register(ctx context.Context, req *RegisterReq) (*AuthResp, error)
	Login(ctx context.Context, req *LoginReq) (*AuthResp, error)

	// Refresh exchanges a valid refresh token for a new token pair.
	Refresh(ctx context.Context, req *RefreshReq) (*AuthResp, error)

	Profile(ctx context.Context, id uuid.UUID) (*UserResp, error)
	ChangePassword(ctx context.Context, id uuid.UUID, req *ChangePasswordReq) error

	// Admin operations.
	List(ctx context.Context, page, limit int) ([]*UserResp, int, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req *UpdateUserReq) (*UserResp, error)
}
