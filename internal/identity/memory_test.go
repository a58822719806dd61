package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/pkg/errors"
)

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	p := NewMemoryProvider(zap.NewNop())

	session, err := p.Register(ctx, "جعفر", "jafar@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "jafar@example.com", session.User.Email)
	assert.NotEmpty(t, session.User.ID)

	// The issued session resolves to the same user
	user, err := p.CurrentUser(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, user.ID)

	// A fresh login issues a distinct token
	login, err := p.Login(ctx, "jafar@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEqual(t, session.Token, login.Token)
	assert.Equal(t, session.User.ID, login.User.ID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	p := NewMemoryProvider(zap.NewNop())

	_, err := p.Register(ctx, "جعفر", "jafar@example.com", "secret123")
	require.NoError(t, err)

	_, err = p.Register(ctx, "آخر", "jafar@example.com", "other456")
	var verr *errors.ErrValidation
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "البريد الإلكتروني مسجل مسبقاً", verr.Message)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()
	p := NewMemoryProvider(zap.NewNop())
	_, err := p.Register(ctx, "جعفر", "jafar@example.com", "secret123")
	require.NoError(t, err)

	_, err = p.Login(ctx, "jafar@example.com", "wrong")
	var uerr *errors.ErrUnauthorized
	assert.ErrorAs(t, err, &uerr)

	_, err = p.Login(ctx, "nobody@example.com", "secret123")
	assert.ErrorAs(t, err, &uerr)
}

func TestLogout_InvalidatesToken(t *testing.T) {
	ctx := context.Background()
	p := NewMemoryProvider(zap.NewNop())
	session, err := p.Register(ctx, "جعفر", "jafar@example.com", "secret123")
	require.NoError(t, err)

	require.NoError(t, p.Logout(ctx, session.Token))

	_, err = p.CurrentUser(ctx, session.Token)
	var uerr *errors.ErrUnauthorized
	assert.ErrorAs(t, err, &uerr)

	// Logging out twice is harmless
	assert.NoError(t, p.Logout(ctx, session.Token))
}

func TestCurrentUser_UnknownToken(t *testing.T) {
	p := NewMemoryProvider(zap.NewNop())

	_, err := p.CurrentUser(context.Background(), "made-up")
	var uerr *errors.ErrUnauthorized
	assert.ErrorAs(t, err, &uerr)
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	p := NewMemoryProvider(zap.NewNop())

	require.NoError(t, p.Seed("Admin", "admin@example.com", "admin123"))

	session, err := p.Login(ctx, "admin@example.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "Admin", session.User.Name)

	// Seeding the same email again fails
	assert.Error(t, p.Seed("Admin", "admin@example.com", "admin123"))
}
