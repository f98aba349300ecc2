package ports

import "context"

// TokenService issues and verifies signed bearer tokens.
type TokenService interface {
	// Issue produces a signed credential embedding userID and an expiry.
	Issue(userID string) (string, error)
	// Verify validates signature and expiry and resolves the user ID.
	// Malformed, tampered, expired, and revoked tokens all surface as
	// domain.ErrInvalidToken.
	Verify(ctx context.Context, token string) (string, error)
	// Revoke denylists a still-valid token until its natural expiry.
	Revoke(ctx context.Context, token string) error
}
