package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/auth"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/user"
	"github.com/shiftboard/shiftboard-backend-go/internal/pkg/jwt"
	"github.com/shiftboard/shiftboard-backend-go/internal/pkg/validator"
)

type AuthServiceImpl struct {
	userRepo   user.Repository
	jwtService jwt.Service
}

func NewAuthService(userRepo user.Repository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login verifies credentials and issues an access token plus a refresh
// token. A wrong username and a wrong password are indistinguishable to the
// caller.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, string, int64, error) {
	u, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, "", 0, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, "", 0, fmt.Errorf("failed to load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, "", 0, auth.ErrInvalidCredentials
	}

	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(u.ID, u.Username, u.EmployeeID, u.Role)
	if err != nil {
		return auth.TokenResponse{}, "", 0, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, "", 0, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken: accessToken,
		ExpiresAt:   accessExp,
		UserID:      u.ID,
		Username:    u.Username,
		Role:        string(u.Role),
	}, refreshToken, refreshExp, nil
}

// Refresh exchanges a valid refresh token's user for a fresh access token.
// The token itself is verified by the transport layer; the service only
// reloads the user so role changes take effect on rotation.
func (s *AuthServiceImpl) Refresh(ctx context.Context, userID string) (auth.TokenResponse, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to load user: %w", err)
	}

	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(u.ID, u.Username, u.EmployeeID, u.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken: accessToken,
		ExpiresAt:   accessExp,
		UserID:      u.ID,
		Username:    u.Username,
		Role:        string(u.Role),
	}, nil
}

// Register creates a user account. Admin only.
func (s *AuthServiceImpl) Register(ctx context.Context, actor auth.Identity, req auth.RegisterRequest) (user.User, error) {
	if !actor.IsAdmin() {
		return user.User{}, user.ErrAdminAccessRequired
	}

	var validationErrors validator.ValidationErrors
	if validator.IsEmpty(req.Username) {
		validationErrors = append(validationErrors, validator.ValidationError{Field: "username", Message: "username is required"})
	}
	if len(req.Password) < 8 {
		validationErrors = append(validationErrors, validator.ValidationError{Field: "password", Message: "password must be at least 8 characters"})
	}
	role := user.Role(req.Role)
	if role != user.RoleAdmin && role != user.RoleManager && role != user.RoleEmployee {
		validationErrors = append(validationErrors, validator.ValidationError{Field: "role", Message: "role must be admin, manager or employee"})
	}
	if len(validationErrors) > 0 {
		return user.User{}, validationErrors
	}

	if _, err := s.userRepo.GetByUsername(ctx, req.Username); err == nil {
		return user.User{}, user.ErrUsernameExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return user.User{}, fmt.Errorf("failed to check username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.userRepo.Create(ctx, user.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         role,
		EmployeeID:   req.EmployeeID,
	})
	if err != nil {
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	created.PasswordHash = ""
	return created, nil
}
