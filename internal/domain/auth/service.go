package auth

import "context"

type AuthService interface {
	// Register self-registers an employee: a default employee record and a
	// linked employee-role user account are created in one transaction.
	Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error)

	// Login authenticates with email and password and issues a token pair.
	Login(ctx context.Context, req LoginRequest, sessionReq SessionTrackingRequest) (TokenResponse, error)

	// GoogleRedirectURL starts the Google OAuth2 flow and returns the
	// consent URL plus the state to pin in a cookie.
	GoogleRedirectURL(ctx context.Context, userAgent string) (url string, state string, err error)

	// LoginWithGoogle completes the OAuth2 flow. Only already registered
	// users may sign in this way.
	LoginWithGoogle(ctx context.Context, code string, sessionReq SessionTrackingRequest) (TokenResponse, error)

	// RefreshToken rotates a valid refresh token into a fresh token pair.
	RefreshToken(ctx context.Context, refreshToken string, sessionReq SessionTrackingRequest) (TokenResponse, error)

	// Logout revokes the presented refresh token.
	Logout(ctx context.Context, refreshToken string) error
}
