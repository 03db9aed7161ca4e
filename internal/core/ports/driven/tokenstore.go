package driven

import "context"

// TokenStore persists OAuth tokens between runs. Tokens are stored as
// opaque blobs keyed by provider id; the auth adapter owns the format.
type TokenStore interface {
	// SaveToken stores or replaces the token blob for a provider.
	SaveToken(ctx context.Context, providerID string, token []byte) error

	// GetToken returns the token blob for a provider.
	// Returns domain.ErrNotFound when no token is stored.
	GetToken(ctx context.Context, providerID string) ([]byte, error)

	// DeleteToken removes the token blob for a provider.
	DeleteToken(ctx context.Context, providerID string) error
}
