package identity

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/jafarshop/storefront/internal/domain"
	"github.com/jafarshop/storefront/pkg/errors"
)

type account struct {
	user         domain.User
	passwordHash string
}

// MemoryProvider is an in-process identity provider for development and
// tests. Passwords are bcrypt-hashed; session tokens are random UUIDs.
type MemoryProvider struct {
	mu       sync.Mutex
	accounts map[string]*account // keyed by email
	sessions map[string]string   // token -> email
	logger   *zap.Logger
}

// NewMemoryProvider creates an empty in-memory provider
func NewMemoryProvider(logger *zap.Logger) *MemoryProvider {
	return &MemoryProvider{
		accounts: make(map[string]*account),
		sessions: make(map[string]string),
		logger:   logger,
	}
}

// Seed registers a user without issuing a session. Used at startup for
// demo accounts.
func (p *MemoryProvider) Seed(name, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if _, exists := p.accounts[email]; exists {
		return &errors.ErrValidation{Message: "email already registered"}
	}
	p.accounts[email] = &account{
		user: domain.User{
			ID:        uuid.NewString(),
			Email:     email,
			Name:      name,
			CreatedAt: time.Now(),
		},
		passwordHash: string(hash),
	}
	return nil
}

func (p *MemoryProvider) CurrentUser(_ context.Context, token string) (*domain.User, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	email, ok := p.sessions[token]
	if !ok {
		return nil, &errors.ErrUnauthorized{Message: "authentication failed"}
	}
	acct, ok := p.accounts[email]
	if !ok {
		return nil, &errors.ErrUnauthorized{Message: "authentication failed"}
	}
	user := acct.user
	return &user, nil
}

func (p *MemoryProvider) Login(_ context.Context, email, password string) (*Session, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	acct, ok := p.accounts[email]
	if !ok {
		return nil, &errors.ErrUnauthorized{Message: "authentication failed"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acct.passwordHash), []byte(password)); err != nil {
		return nil, &errors.ErrUnauthorized{Message: "authentication failed"}
	}

	token := uuid.NewString()
	p.sessions[token] = email
	p.logger.Info("User logged in", zap.String("email", email))

	return &Session{Token: token, User: acct.user}, nil
}

func (p *MemoryProvider) Logout(_ context.Context, token string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.sessions, token)
	return nil
}

func (p *MemoryProvider) Register(_ context.Context, name, email, password string) (*Session, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.accounts[email]; exists {
		return nil, &errors.ErrValidation{Message: "البريد الإلكتروني مسجل مسبقاً"}
	}

	acct := &account{
		user: domain.User{
			ID:        uuid.NewString(),
			Email:     email,
			Name:      name,
			CreatedAt: time.Now(),
		},
		passwordHash: string(hash),
	}
	p.accounts[email] = acct

	token := uuid.NewString()
	p.sessions[token] = email
	p.logger.Info("User registered", zap.String("email", email))

	return &Session{Token: token, User: acct.user}, nil
}
