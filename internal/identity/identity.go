// Package identity is the storefront's view of the external
// authentication service. The storefront only ever asks "who is the
// current user"; login, logout and registration are passed through.
package identity

import (
	"context"

	"github.com/jafarshop/storefront/internal/domain"
)

// Session is an authenticated session issued by the provider
type Session struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// Provider exposes the identity collaborator. All failures surface as
// *errors.ErrUnauthorized regardless of the underlying reason; the
// storefront treats "no authenticated user" uniformly.
type Provider interface {
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*Session, error)
	Logout(ctx context.Context, token string) error
	Register(ctx context.Context, name, email, password string) (*Session, error)
}
