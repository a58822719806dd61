// Package wallet holds per-user balances and transaction history. Recharge
// is a simulated operation that always succeeds once the amount validates.
package wallet

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/domain"
	"github.com/jafarshop/storefront/pkg/errors"
)

// openingBalance and the seeded history give demo accounts something to
// show on first visit, mirroring the sample storefront data.
const openingBalance = 125000

type account struct {
	balance      float64
	transactions []domain.WalletTransaction
}

type Service struct {
	mu       sync.Mutex
	accounts map[string]*account
	logger   *zap.Logger
}

// NewService creates the wallet service
func NewService(logger *zap.Logger) *Service {
	return &Service{
		accounts: make(map[string]*account),
		logger:   logger,
	}
}

// Balance returns the user's current balance
func (s *Service) Balance(userID string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accountLocked(userID).balance
}

// Recharge credits the wallet. The amount must be positive; the credit is
// recorded as a completed transaction.
func (s *Service) Recharge(_ context.Context, userID string, amount float64, method string) (*domain.WalletTransaction, error) {
	if amount <= 0 {
		return nil, &errors.ErrValidation{Message: "يرجى إدخال مبلغ صحيح"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acct := s.accountLocked(userID)
	acct.balance += amount

	tx := domain.WalletTransaction{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        domain.TransactionCredit,
		Amount:      amount,
		Description: "شحن المحفظة - " + method,
		Method:      method,
		Status:      domain.TransactionCompleted,
		CreatedAt:   time.Now(),
	}
	acct.transactions = append(acct.transactions, tx)

	s.logger.Info("Wallet recharged",
		zap.String("user_id", userID),
		zap.Float64("amount", amount),
		zap.String("method", method),
	)
	return &tx, nil
}

// Debit withdraws from the wallet, e.g. for a wallet-paid order
func (s *Service) Debit(_ context.Context, userID string, amount float64, description string) (*domain.WalletTransaction, error) {
	if amount <= 0 {
		return nil, &errors.ErrValidation{Message: "يرجى إدخال مبلغ صحيح"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acct := s.accountLocked(userID)
	if acct.balance < amount {
		return nil, &errors.ErrValidation{Message: "الرصيد غير كافٍ"}
	}
	acct.balance -= amount

	tx := domain.WalletTransaction{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        domain.TransactionDebit,
		Amount:      amount,
		Description: description,
		Status:      domain.TransactionCompleted,
		CreatedAt:   time.Now(),
	}
	acct.transactions = append(acct.transactions, tx)
	return &tx, nil
}

// Transactions returns the user's history, newest first
func (s *Service) Transactions(userID string) []domain.WalletTransaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct := s.accountLocked(userID)
	out := make([]domain.WalletTransaction, len(acct.transactions))
	copy(out, acct.transactions)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (s *Service) accountLocked(userID string) *account {
	if acct, ok := s.accounts[userID]; ok {
		return acct
	}
	acct := &account{
		balance: openingBalance,
		transactions: []domain.WalletTransaction{
			{
				ID:          uuid.New(),
				UserID:      userID,
				Type:        domain.TransactionCredit,
				Amount:      openingBalance,
				Description: "رصيد افتتاحي",
				Status:      domain.TransactionCompleted,
				CreatedAt:   time.Now(),
			},
		},
	}
	s.accounts[userID] = acct
	return acct
}
