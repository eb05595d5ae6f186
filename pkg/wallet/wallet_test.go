package wallet_test

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscriber/common/errs"
	"github.com/gaze-network/inscriber/pkg/wallet"
	"github.com/gaze-network/inscriber/pkg/wallet/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSessionConnect(t *testing.T) {
	ctx := context.Background()
	w := mocks.NewWallet(t)
	w.EXPECT().RequestAccounts(mock.Anything).Return([]string{" bc1qsender ", "bc1qother"}, nil)

	s := wallet.NewSession(w)
	assert.False(t, s.Connected())

	addr, err := s.Connect(ctx)
	require.NoError(t, err)
	assert.Equal(t, "bc1qsender", addr)

	got, ok := s.Address()
	assert.True(t, ok)
	assert.Equal(t, "bc1qsender", got)

	s.Disconnect()
	assert.False(t, s.Connected())
}

func TestSessionConnectNoAccounts(t *testing.T) {
	w := mocks.NewWallet(t)
	w.EXPECT().RequestAccounts(mock.Anything).Return([]string{}, nil)

	s := wallet.NewSession(w)
	_, err := s.Connect(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, wallet.ErrNoAccounts))
	assert.True(t, errors.Is(err, errs.WalletError))
	assert.False(t, s.Connected())
}

func TestSessionConnectRejected(t *testing.T) {
	w := mocks.NewWallet(t)
	w.EXPECT().RequestAccounts(mock.Anything).Return(nil, wallet.Rejected(errors.New("user closed popup"), "can't request accounts"))

	_, err := wallet.NewSession(w).Connect(context.Background())
	assert.True(t, errors.Is(err, wallet.ErrWalletRejected))
	assert.True(t, errors.Is(err, errs.WalletError))
	assert.False(t, errors.Is(err, errs.NetworkError))
}

func TestSessionRestore(t *testing.T) {
	w := mocks.NewWallet(t)
	w.EXPECT().GetAccounts(mock.Anything).Return([]string{"bc1qsender"}, nil)

	s := wallet.NewSession(w)
	addr, ok := s.Restore(context.Background())
	assert.True(t, ok)
	assert.Equal(t, "bc1qsender", addr)
	w.AssertNotCalled(t, "RequestAccounts", mock.Anything)
}

func TestDetectNoWallet(t *testing.T) {
	d := wallet.Detect(nil, "")
	assert.False(t, d.Available)
	require.NotNil(t, d.Wallet)

	_, err := d.Wallet.SendBitcoin(context.Background(), "bc1q", 1000, wallet.SendOptions{})
	assert.True(t, errors.Is(err, wallet.ErrWalletUnavailable))
	assert.True(t, errors.Is(err, errs.WalletError))

	_, err = wallet.NewSession(nil).Connect(context.Background())
	assert.True(t, errors.Is(err, wallet.ErrWalletUnavailable))
}

func TestNormalizeTxID(t *testing.T) {
	txid, err := wallet.NormalizeTxID(" 4A5E1E4BAAB89F3A32518A88C31BC87F618F76673E2CC77AB2127B7AFDEDA33B ")
	require.NoError(t, err)
	assert.Equal(t, "4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b", txid)

	_, err = wallet.NormalizeTxID("abc")
	assert.True(t, errors.Is(err, wallet.ErrWalletRejected))

	_, err = wallet.NormalizeTxID("zz5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b")
	assert.True(t, errors.Is(err, errs.WalletError))
}
