package application

import (
	"context"
	"errors"
	"strings"

	"github.com/freshpantry/stockroom/internal/domain"
	"github.com/freshpantry/stockroom/internal/ports"
	"github.com/google/uuid"
)

func (s *Service) Register(ctx context.Context, req RegisterRequest) (UserResponse, error) {
	username := strings.TrimSpace(req.Username)
	if err := domain.ValidateUsername(username); err != nil {
		return UserResponse{}, err
	}
	if err := domain.ValidatePassword(req.Password); err != nil {
		return UserResponse{}, err
	}

	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return UserResponse{}, domain.ErrConflict
	} else if !errors.Is(err, domain.ErrNotFound) {
		return UserResponse{}, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return UserResponse{}, err
	}
	user, err := s.users.Create(ctx, ports.CreateUserParams{
		Username:     username,
		PasswordHash: hash,
	})
	if err != nil {
		return UserResponse{}, err
	}

	s.logger.InfoContext(ctx, "user registered", "operation", "register", "username", username)
	return toUserResponse(user), nil
}

// Login verifies credentials and issues a signed token. Lookup failure and
// password mismatch collapse into the same unauthorized outcome.
func (s *Service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return LoginResponse{}, domain.ErrUnauthorized
		}
		return LoginResponse{}, err
	}
	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		return LoginResponse{}, domain.ErrUnauthorized
	}

	now := s.nowFn()
	token, err := s.signer.Sign(ports.AuthClaims{
		Username:  user.Username,
		IsAdmin:   user.IsAdmin,
		SessionID: uuid.New(),
		IssuedAt:  now,
		ExpiresAt: now.Add(s.cfg.TokenTTL),
	})
	if err != nil {
		return LoginResponse{}, err
	}

	s.logger.InfoContext(ctx, "user logged in", "operation", "login", "username", user.Username)
	return LoginResponse{Token: token, Username: user.Username, IsAdmin: user.IsAdmin}, nil
}

// Logout revokes the session and drains the basket back into stock.
func (s *Service) Logout(ctx context.Context, claims ports.AuthClaims) (DrainResult, error) {
	if s.revocations != nil {
		if err := s.revocations.MarkRevoked(ctx, claims.SessionID, claims.ExpiresAt); err != nil {
			return DrainResult{}, err
		}
	}
	result, err := s.LogoutDrain(ctx)
	if err != nil {
		return DrainResult{}, err
	}
	s.logger.InfoContext(ctx, "user logged out",
		"operation", "logout",
		"username", claims.Username,
		"items_drained", result.ItemsDrained,
	)
	return result, nil
}

// ValidateToken parses the bearer token and rejects revoked sessions.
func (s *Service) ValidateToken(ctx context.Context, token string) (ports.AuthClaims, error) {
	claims, err := s.signer.ParseAndValidate(token)
	if err != nil {
		return ports.AuthClaims{}, domain.ErrUnauthorized
	}
	if s.revocations != nil {
		revoked, err := s.revocations.IsRevoked(ctx, claims.SessionID)
		if err != nil {
			return ports.AuthClaims{}, err
		}
		if revoked {
			return ports.AuthClaims{}, domain.ErrUnauthorized
		}
	}
	return claims, nil
}
