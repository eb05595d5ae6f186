// Package wallet adapts a bitcoin wallet into the account and payment operations
// the inscription flows need. The adapter never retries.
package wallet

import (
	"context"
	"encoding/hex"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscriber/common/errs"
	"github.com/shopspring/decimal"
)

var (
	// ErrWalletUnavailable is returned when no wallet is configured or it can't be reached.
	ErrWalletUnavailable = errors.Mark(errors.New("wallet is unavailable"), errs.WalletError)

	// ErrWalletRejected is returned when the wallet declined or failed a request.
	ErrWalletRejected = errors.Mark(errors.New("wallet rejected the request"), errs.WalletError)

	// ErrNoAccounts is returned when the wallet exposes no address.
	ErrNoAccounts = errors.Mark(errors.New("wallet has no accounts"), errs.WalletError)
)

// SendOptions are the optional parameters of SendBitcoin.
type SendOptions struct {
	// FeeRate in sats/vbyte.
	FeeRate decimal.Decimal
}

type Wallet interface {
	// RequestAccounts asks the wallet for access and returns its addresses.
	RequestAccounts(ctx context.Context) ([]string, error)

	// GetAccounts returns the addresses already granted.
	GetAccounts(ctx context.Context) ([]string, error)

	// SendBitcoin pays amountSats to address and returns the transaction id.
	SendBitcoin(ctx context.Context, address string, amountSats int64, opts SendOptions) (string, error)
}

// TransactionGetter is implemented by wallets that can describe their own transactions.
type TransactionGetter interface {
	GetTransaction(ctx context.Context, txid string) (map[string]any, error)
}

// TransactionWallet is a Wallet that also implements TransactionGetter.
type TransactionWallet interface {
	Wallet
	TransactionGetter
}

// Rejected wraps err as a wallet rejection.
func Rejected(err error, msg string) error {
	if err == nil {
		return nil
	}
	return mark(errors.Wrap(err, msg), ErrWalletRejected)
}

// Unavailable wraps err as a wallet that can't be reached.
func Unavailable(err error, msg string) error {
	if err == nil {
		return nil
	}
	return mark(errors.Wrap(err, msg), ErrWalletUnavailable)
}

// mark makes err match both reference and errs.WalletError with errors.Is.
func mark(err, reference error) error {
	return errors.Mark(errors.Mark(err, reference), errs.WalletError)
}

// NormalizeTxID validates a transaction id returned by a wallet.
func NormalizeTxID(txid string) (string, error) {
	txid = strings.ToLower(strings.TrimSpace(txid))
	if len(txid) != chainhash.MaxHashStringSize {
		return "", mark(errors.Errorf("invalid txid %q", txid), ErrWalletRejected)
	}
	if _, err := hex.DecodeString(txid); err != nil {
		return "", mark(errors.Wrapf(err, "invalid txid %q", txid), ErrWalletRejected)
	}
	if _, err := chainhash.NewHashFromStr(txid); err != nil {
		return "", mark(errors.Wrapf(err, "invalid txid %q", txid), ErrWalletRejected)
	}
	return txid, nil
}
