package cmd

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscriber/common/errs"
	"github.com/gaze-network/inscriber/pkg/wallet"
	"github.com/samber/do/v2"
)

const (
	msgWalletUnavailable = "No wallet is available. Configure wallet.bitcoind to connect one."
	msgWalletConnect     = "Failed to connect wallet."
)

// connectWallet restores the wallet session, prompting the wallet only when nothing is granted yet.
func connectWallet(ctx context.Context, injector do.Injector) (*wallet.Session, error) {
	session, err := do.Invoke[*wallet.Session](injector)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if _, ok := session.Restore(ctx); ok {
		return session, nil
	}
	if _, err := session.Connect(ctx); err != nil {
		if errors.Is(err, wallet.ErrWalletUnavailable) {
			return nil, errs.WithUserMessage(err, msgWalletUnavailable)
		}
		return nil, errs.WithUserMessage(err, msgWalletConnect)
	}
	return session, nil
}
