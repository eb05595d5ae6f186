package wallet

import (
	"context"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscriber/pkg/logger"
	"github.com/gaze-network/inscriber/pkg/logger/slogx"
	"github.com/samber/lo"
)

// Session is the in-memory connection to a wallet. It is never persisted.
type Session struct {
	wallet Wallet

	mu      sync.RWMutex
	address string
}

func NewSession(w Wallet) *Session {
	return &Session{wallet: Detect(w, "").Wallet}
}

// Wallet returns the underlying wallet.
func (s *Session) Wallet() Wallet {
	return s.wallet
}

// Connect requests the wallet's accounts and binds the session to the first one.
func (s *Session) Connect(ctx context.Context) (string, error) {
	accounts, err := s.wallet.RequestAccounts(ctx)
	if err != nil {
		return "", errors.WithStack(err)
	}
	accounts = lo.Compact(lo.Map(accounts, func(a string, _ int) string { return strings.TrimSpace(a) }))
	if len(accounts) == 0 {
		return "", errors.WithStack(ErrNoAccounts)
	}

	s.mu.Lock()
	s.address = accounts[0]
	s.mu.Unlock()

	logger.InfoContext(ctx, "Wallet connected", slogx.String("address", accounts[0]))
	return accounts[0], nil
}

// Restore rebinds the session if the wallet still grants an account, without prompting.
func (s *Session) Restore(ctx context.Context) (string, bool) {
	accounts, err := s.wallet.GetAccounts(ctx)
	if err != nil {
		logger.DebugContext(ctx, "Can't restore wallet session", slogx.Error(err))
		return "", false
	}
	accounts = lo.Compact(accounts)
	if len(accounts) == 0 {
		return "", false
	}
	s.mu.Lock()
	s.address = accounts[0]
	s.mu.Unlock()
	return accounts[0], true
}

func (s *Session) Disconnect() {
	s.mu.Lock()
	s.address = ""
	s.mu.Unlock()
}

// Address returns the connected address.
func (s *Session) Address() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.address, s.address != ""
}

func (s *Session) Connected() bool {
	_, ok := s.Address()
	return ok
}
