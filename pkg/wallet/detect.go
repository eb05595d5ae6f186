package wallet

import (
	"context"

	"github.com/cockroachdb/errors"
)

// unavailable is the Wallet used when no wallet is configured. Every call fails with ErrWalletUnavailable.
type unavailable struct {
	reason string
}

func (u unavailable) err() error {
	return errors.Wrap(ErrWalletUnavailable, u.reason)
}

func (u unavailable) RequestAccounts(context.Context) ([]string, error) { return nil, u.err() }

func (u unavailable) GetAccounts(context.Context) ([]string, error) { return nil, u.err() }

func (u unavailable) SendBitcoin(context.Context, string, int64, SendOptions) (string, error) {
	return "", u.err()
}

// Detection is the result of looking for a wallet.
type Detection struct {
	Wallet    Wallet
	Available bool
	Reason    string
}

// Detect returns a Detection for w. A nil wallet yields an unavailable wallet instead of nil.
func Detect(w Wallet, reason string) Detection {
	if w == nil {
		if reason == "" {
			reason = "no wallet configured"
		}
		return Detection{Wallet: unavailable{reason: reason}, Available: false, Reason: reason}
	}
	return Detection{Wallet: w, Available: true}
}
