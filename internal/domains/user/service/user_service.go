package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"memepmw-backend/internal/domains/user"
	"memepmw-backend/pkg/jwt"
	"memepmw-backend/pkg/logger"
)

type userService struct {
	repo user.Repository
	jwt  *jwt.Manager
}

func NewUserService(repo user.Repository, jwtManager *jwt.Manager) user.Service {
	return &userService{repo: repo, jwt: jwtManager}
}

func (s *userService) Register(ctx context.Context, req *user.RegisterReq) (*user.AuthResp, error) {
	entity, err := user.NewUser(req.Name, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByEmail(ctx, entity.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, user.ErrEmailTaken
	}

	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		return nil, err
	}

	logger.Info("User registered", map[string]interface{}{
		"user_id": created.ID,
		"email":   created.Email,
	})

	return s.issueTokens(created)
}

func (s *userService) Login(ctx context.Context, req *user.LoginReq) (*user.AuthResp, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, user.ErrInvalidCredentials
		}
		return nil, err
	}

	if !u.CheckPassword(req.Password) {
		return nil, user.ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, user.ErrAccountDisabled
	}

	logger.Info("User logged in", map[string]interface{}{"user_id": u.ID})

	return s.issueTokens(u)
}

func (s *userService) Refresh(ctx context.Context, req *user.RefreshReq) (*user.AuthResp, error) {
	claims, err := s.jwt.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, user.ErrInvalidRefreshToken
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, user.ErrInvalidRefreshToken
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, user.ErrInvalidRefreshToken
	}
	if !u.IsActive {
		return nil, user.ErrAccountDisabled
	}

	return s.issueTokens(u)
}

func (s *userService) Profile(ctx context.Context, id uuid.UUID) (*user.UserResp, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return user.UserToResp(u), nil
}

func (s *userService) ChangePassword(ctx context.Context, id uuid.UUID, req *user.ChangePasswordReq) error {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !u.CheckPassword(req.CurrentPassword) {
		return user.ErrInvalidCredentials
	}

	if err := u.SetPassword(req.NewPassword); err != nil {
		return err
	}

	if _, err := s.repo.Update(ctx, u); err != nil {
		return err
	}

	logger.Info("Password changed", map[string]interface{}{"user_id": u.ID})
	return nil
}

func (s *userService) List(ctx context.Context, page, limit int) ([]*user.UserResp, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	users, total, err := s.repo.List(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}

	resp := make([]*user.UserResp, 0, len(users))
	for _, u := range users {
		resp = append(resp, user.UserToResp(u))
	}

	return resp, total, nil
}

func (s *userService) UpdateUser(ctx context.Context, id uuid.UUID, req *user.UpdateUserReq) (*user.UserResp, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Role != nil {
		if !user.ValidRole(*req.Role) {
			return nil, user.ErrInvalidRole
		}
		u.Role = *req.Role
	}
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}

	updated, err := s.repo.Update(ctx, u)
	if err != nil {
		return nil, err
	}

	logger.Info("User updated", map[string]interface{}{
		"user_id":   updated.ID,
		"role":      updated.Role,
		"is_active": updated.IsActive,
	})

	return user.UserToResp(updated), nil
}

func (s *userService) issueTokens(u *user.User) (*user.AuthResp, error) {
	access, err := s.jwt.GenerateAccessToken(u.ID.String(), u.Email, u.Role)
	if err != nil {
		return nil, err
	}

	refresh, err := s.jwt.GenerateRefreshToken(u.ID.String())
	if err != nil {
		return nil, err
	}

	return &user.AuthResp{
		User:         user.UserToResp(u),
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
