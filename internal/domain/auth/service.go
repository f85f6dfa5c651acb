package auth

import (
	"context"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/user"
)

// AuthService handles credential verification and account provisioning.
type AuthService interface {
	// Login verifies credentials and issues an access token. It also
	// returns the refresh token value and its unix expiry for the cookie.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, string, int64, error)

	// Refresh issues a fresh access token for the user, reloading the
	// account so role changes take effect on rotation.
	Refresh(ctx context.Context, userID string) (TokenResponse, error)

	// Register creates a new account. Admin only.
	Register(ctx context.Context, actor Identity, req RegisterRequest) (user.User, error)
}
