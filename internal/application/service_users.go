package application

import (
	"context"
	"strings"

	"github.com/freshpantry/stockroom/internal/domain"
	"github.com/freshpantry/stockroom/internal/ports"
	"github.com/google/uuid"
)

func (s *Service) ListUsers(ctx context.Context, claims ports.AuthClaims) ([]UserResponse, error) {
	if !claims.IsAdmin {
		return nil, domain.ErrForbidden
	}
	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

func (s *Service) UpdateUser(ctx context.Context, claims ports.AuthClaims, userID uuid.UUID, req UpdateUserRequest) (UserResponse, error) {
	if !claims.IsAdmin {
		return UserResponse{}, domain.ErrForbidden
	}

	params := ports.UpdateUserParams{UserID: userID, IsAdmin: req.IsAdmin}
	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if err := domain.ValidateUsername(username); err != nil {
			return UserResponse{}, err
		}
		params.Username = &username
	}
	if req.Password != nil {
		if err := domain.ValidatePassword(*req.Password); err != nil {
			return UserResponse{}, err
		}
		hash, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return UserResponse{}, err
		}
		params.PasswordHash = &hash
	}

	user, err := s.users.Update(ctx, params)
	if err != nil {
		return UserResponse{}, err
	}
	s.logger.InfoContext(ctx, "user updated", "operation", "update_user", "user_id", userID)
	return toUserResponse(user), nil
}

func (s *Service) DeleteUser(ctx context.Context, claims ports.AuthClaims, userID uuid.UUID) error {
	if !claims.IsAdmin {
		return domain.ErrForbidden
	}
	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "user deleted", "operation", "delete_user", "user_id", userID)
	return nil
}

func toUserResponse(u domain.User) UserResponse {
	return UserResponse{UserID: u.UserID, Username: u.Username, IsAdmin: u.IsAdmin}
}
