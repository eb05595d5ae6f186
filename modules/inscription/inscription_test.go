package inscription_test

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscriber/common"
	"github.com/gaze-network/inscriber/common/errs"
	"github.com/gaze-network/inscriber/core/orchestrator"
	"github.com/gaze-network/inscriber/core/types"
	"github.com/gaze-network/inscriber/modules/inscription"
	"github.com/gaze-network/inscriber/modules/inscription/config"
	"github.com/gaze-network/inscriber/modules/inscription/datagateway/mocks"
	"github.com/gaze-network/inscriber/pkg/inscriptionapi"
	"github.com/gaze-network/inscriber/pkg/wallet"
	walletmocks "github.com/gaze-network/inscriber/pkg/wallet/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	sender    = "bc1qsenderaddress000000000000000000000000"
	recipient = "bc1qexamplerecipient00000000000000000000"
	payTo     = "bc1qpaymentaddress0000000000000000000000"
	txid      = "4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b"
)

type fixture struct {
	inscriber *inscription.Inscriber
	api       *mocks.InscriptionDataGateway
	wallet    *walletmocks.Wallet
	session   *wallet.Session
}

func newFixture(t *testing.T, connected bool, conf config.Config) *fixture {
	t.Helper()
	api := mocks.NewInscriptionDataGateway(t)
	w := walletmocks.NewWallet(t)
	session := wallet.NewSession(w)
	if connected {
		w.EXPECT().RequestAccounts(mock.Anything).Return([]string{sender}, nil).Once()
		_, err := session.Connect(context.Background())
		require.NoError(t, err)
	}
	i := inscription.New(conf, common.NetworkMainnet, api, session, nil)
	t.Cleanup(func() { _ = i.Close(context.Background()) })
	return &fixture{inscriber: i, api: api, wallet: w, session: session}
}

func request(feeRate string) types.InscriptionRequest {
	return types.InscriptionRequest{
		File:             types.File{Name: "hello.txt", ContentType: "text/plain", Data: []byte("0123456789")},
		RecipientAddress: recipient,
		FeeRate:          feeRate,
	}
}

func commit() types.CommitResponse {
	return types.CommitResponse{
		InscriptionID:            "42",
		PaymentAddress:           payTo,
		RequiredAmountInSats:     5000,
		FileSizeInBytes:          10,
		SenderAddress:            sender,
		RecipientAddress:         recipient,
		CommitCreationSuccessful: true,
	}
}

func TestSubmitKeepsFeeRate(t *testing.T) {
	for _, feeRate := range []string{"10", "1", "10.50", "2.000"} {
		t.Run(feeRate, func(t *testing.T) {
			f := newFixture(t, true, config.Config{})
			f.api.EXPECT().CreateCommit(mock.Anything, inscriptionapi.CreateCommitRequest{
				File:             request(feeRate).File,
				RecipientAddress: recipient,
				FeeRate:          feeRate,
				SenderAddress:    sender,
			}).Return(commit(), nil).Once()

			attempt, err := f.inscriber.Submit(context.Background(), request(feeRate))
			require.NoError(t, err)
			assert.Equal(t, feeRate, attempt.FeeRate.String())
			assert.Equal(t, "42", attempt.Commit.InscriptionID.String())
			assert.Equal(t, payTo, attempt.Commit.PaymentAddress)
			assert.EqualValues(t, 5000, attempt.Commit.RequiredAmountInSats)

			snap := f.inscriber.Snapshot()
			assert.Equal(t, orchestrator.StateAwaitingPayment, snap.State)
			assert.Equal(t, feeRate, snap.Attempt.FeeRate.String())
			assert.Equal(t, "42", snap.Target.InscriptionID)
		})
	}
}

func TestSubmitTrimsRecipient(t *testing.T) {
	f := newFixture(t, true, config.Config{})
	f.api.EXPECT().CreateCommit(mock.Anything, inscriptionapi.CreateCommitRequest{
		File:             request("10").File,
		RecipientAddress: recipient,
		FeeRate:          "10",
		SenderAddress:    sender,
	}).Return(commit(), nil).Once()

	req := request("10")
	req.RecipientAddress = "  " + recipient + "\n"
	_, err := f.inscriber.Submit(context.Background(), req)
	require.NoError(t, err)
}

func TestSubmitValidation(t *testing.T) {
	testCases := []struct {
		name      string
		connected bool
		req       types.InscriptionRequest
		message   string
	}{
		{"missing file", true, types.InscriptionRequest{RecipientAddress: recipient, FeeRate: "10"}, inscription.MsgRequiredFields},
		{"missing recipient", true, types.InscriptionRequest{File: request("10").File, FeeRate: "10"}, inscription.MsgRequiredFields},
		{"missing fee rate", true, types.InscriptionRequest{File: request("10").File, RecipientAddress: recipient}, inscription.MsgRequiredFields},
		{"empty file", true, types.InscriptionRequest{File: types.File{Name: "a", Data: []byte{}}, RecipientAddress: recipient, FeeRate: "10"}, inscription.MsgEmptyFile},
		{"wallet disconnected", false, request("10"), inscription.MsgWalletRequired},
		{"fee rate below one", true, request("0.99"), inscription.MsgInvalidFeeRate},
		{"fee rate zero", true, request("0"), inscription.MsgInvalidFeeRate},
		{"fee rate negative", true, request("-5"), inscription.MsgInvalidFeeRate},
		{"fee rate not numeric", true, request("fast"), inscription.MsgInvalidFeeRate},
		{"fee rate with unit", true, request("10sats"), inscription.MsgInvalidFeeRate},
		{"bad recipient", true, types.InscriptionRequest{File: request("10").File, RecipientAddress: "not-an-address", FeeRate: "10"}, inscription.MsgInvalidRecipient},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, tc.connected, config.Config{})

			_, err := f.inscriber.Submit(context.Background(), tc.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errs.InvalidArgument))
			assert.Equal(t, tc.message, errs.UserMessage(err, ""))
			assert.Equal(t, orchestrator.StateIdle, f.inscriber.State())
			f.api.AssertNotCalled(t, "CreateCommit", mock.Anything, mock.Anything)
		})
	}
}

func TestSubmitStrictAddress(t *testing.T) {
	f := newFixture(t, true, config.Config{StrictAddress: true})

	req := request("10")
	req.RecipientAddress = "tb1qw508d6qejxtdg4y5r3zarvary0c5xw7kxpjzsx"
	_, err := f.inscriber.Submit(context.Background(), req)
	assert.Equal(t, inscription.MsgInvalidRecipient, errs.UserMessage(err, ""))

	req.RecipientAddress = "bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq"
	f.api.EXPECT().CreateCommit(mock.Anything, mock.Anything).Return(commit(), nil).Once()
	_, err = f.inscriber.Submit(context.Background(), req)
	require.NoError(t, err)
}

func TestSubmitServerError(t *testing.T) {
	f := newFixture(t, true, config.Config{})
	f.api.EXPECT().CreateCommit(mock.Anything, mock.Anything).
		Return(types.CommitResponse{}, errors.WithStack(&inscriptionapi.ResponseError{StatusCode: http.StatusBadRequest, Message: "File too large"})).Once()

	_, err := f.inscriber.Submit(context.Background(), request("10"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.NetworkError))
	assert.Equal(t, "File too large", errs.UserMessage(err, ""))

	snap := f.inscriber.Snapshot()
	assert.Equal(t, orchestrator.StateError, snap.State)
	assert.Equal(t, "File too large", snap.ErrMessage)
}

func TestSubmitTransportError(t *testing.T) {
	f := newFixture(t, true, config.Config{})
	f.api.EXPECT().CreateCommit(mock.Anything, mock.Anything).
		Return(types.CommitResponse{}, errors.Mark(errors.New("connection refused"), errs.NetworkError)).Once()

	_, err := f.inscriber.Submit(context.Background(), request("10"))
	require.Error(t, err)
	assert.Equal(t, inscription.MsgCreateCommitFailed, f.inscriber.Snapshot().ErrMessage)
}

func TestPayAndPollToConfirmation(t *testing.T) {
	f := newFixture(t, true, config.Config{PollInterval: 20 * time.Millisecond})
	f.api.EXPECT().CreateCommit(mock.Anything, mock.Anything).Return(commit(), nil).Once()
	_, err := f.inscriber.Submit(context.Background(), request("12.5"))
	require.NoError(t, err)

	f.wallet.EXPECT().SendBitcoin(mock.Anything, payTo, int64(5000), mock.MatchedBy(func(opts wallet.SendOptions) bool {
		return opts.FeeRate.String() == "12.5"
	})).Return(txid, nil).Once()

	var polls atomic.Int32
	f.api.EXPECT().PaymentStatus(mock.Anything, types.PaymentStatusRequest{
		PaymentAddress:       payTo,
		RequiredAmountInSats: 5000,
		SenderAddress:        sender,
		ID:                   "42",
	}).RunAndReturn(func(context.Context, types.PaymentStatusRequest) (types.PaymentStatus, error) {
		if polls.Add(1) == 1 {
			return types.PaymentStatus{IsPaid: false}, nil
		}
		return types.PaymentStatus{IsPaid: true, Status: types.PaymentConfirmed}, nil
	})

	got, err := f.inscriber.PayNow(context.Background())
	require.NoError(t, err)
	assert.Equal(t, txid, got)

	require.Eventually(t, func() bool { return f.inscriber.State() == orchestrator.StateConfirmed }, 2*time.Second, 5*time.Millisecond)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(2), polls.Load())
}

func TestPayNowAfterDisconnect(t *testing.T) {
	f := newFixture(t, true, config.Config{})
	f.api.EXPECT().CreateCommit(mock.Anything, mock.Anything).Return(commit(), nil).Once()
	_, err := f.inscriber.Submit(context.Background(), request("10"))
	require.NoError(t, err)

	f.session.Disconnect()
	_, err = f.inscriber.PayNow(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.InvalidArgument))
	assert.Equal(t, "Invalid wallet address. Please connect your wallet.", errs.UserMessage(err, ""))
	assert.Equal(t, orchestrator.StateAwaitingPayment, f.inscriber.State())
	f.wallet.AssertNotCalled(t, "SendBitcoin", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetInscriptionDetails(t *testing.T) {
	f := newFixture(t, true, config.Config{})

	_, err := f.inscriber.GetInscriptionDetails(context.Background(), "")
	assert.Equal(t, inscription.MsgDetailsIDRequired, errs.UserMessage(err, ""))

	details := types.InscriptionDetails{ID: "7", PaymentAddress: payTo, Status: "pending"}
	f.api.EXPECT().GetInscription(mock.Anything, "7").Return(details, nil).Twice()

	first, err := f.inscriber.GetInscriptionDetails(context.Background(), "7")
	require.NoError(t, err)
	second, err := f.inscriber.GetInscriptionDetails(context.Background(), " 7 ")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, orchestrator.StateIdle, f.inscriber.State())
}

func TestGetInscriptionDetailsDefaultsToActive(t *testing.T) {
	f := newFixture(t, true, config.Config{})
	f.api.EXPECT().CreateCommit(mock.Anything, mock.Anything).Return(commit(), nil).Once()
	_, err := f.inscriber.Submit(context.Background(), request("10"))
	require.NoError(t, err)

	f.api.EXPECT().GetInscription(mock.Anything, "42").
		Return(types.InscriptionDetails{}, errors.WithStack(&inscriptionapi.ResponseError{StatusCode: http.StatusNotFound})).Once()

	_, err = f.inscriber.GetInscriptionDetails(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.NotFound))
	assert.Equal(t, inscription.MsgDetailsNotFound, errs.UserMessage(err, ""))
	assert.Equal(t, orchestrator.StateAwaitingPayment, f.inscriber.State())
}

func TestFetchWalletInscriptions(t *testing.T) {
	t.Run("disconnected", func(t *testing.T) {
		f := newFixture(t, false, config.Config{})
		_, err := f.inscriber.FetchWalletInscriptions(context.Background())
		assert.True(t, errors.Is(err, errs.InvalidArgument))
	})
	t.Run("connected", func(t *testing.T) {
		f := newFixture(t, true, config.Config{})
		f.api.EXPECT().GetInscriptionsBySender(mock.Anything, sender).
			Return([]types.InscriptionDetails{{ID: "1"}, {ID: "2"}}, nil).Once()

		list, err := f.inscriber.FetchWalletInscriptions(context.Background())
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})
	t.Run("failure", func(t *testing.T) {
		f := newFixture(t, true, config.Config{})
		f.api.EXPECT().GetInscriptionsBySender(mock.Anything, sender).
			Return(nil, errors.Mark(errors.New("timeout"), errs.NetworkError)).Once()

		_, err := f.inscriber.FetchWalletInscriptions(context.Background())
		assert.Equal(t, inscription.MsgWalletListFailed, errs.UserMessage(err, ""))
	})
}

func TestFetchStats(t *testing.T) {
	f := newFixture(t, false, config.Config{})
	f.api.EXPECT().GetStats(mock.Anything).Return(types.InscriptionStats{TotalInscriptions: 3, TotalConfirmed: 1}, nil).Once()

	stats, err := f.inscriber.FetchStats(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.TotalInscriptions)
}

func TestReveal(t *testing.T) {
	f := newFixture(t, true, config.Config{})

	_, err := f.inscriber.CreateReveal(context.Background(), types.RevealRequest{CommitTxID: txid, Amount: 1000})
	assert.True(t, errors.Is(err, errs.InvalidArgument))

	f.api.EXPECT().CreateReveal(mock.Anything, types.RevealRequest{InscriptionID: "9", CommitTxID: txid, Vout: 0, Amount: 1000}).
		Return(types.RevealResponse{RevealTxHex: "0200"}, nil).Once()
	reveal, err := f.inscriber.CreateReveal(context.Background(), types.RevealRequest{InscriptionID: "9", CommitTxID: txid, Amount: 1000})
	require.NoError(t, err)
	assert.Equal(t, "0200", reveal.RevealTxHex)

	f.api.EXPECT().BroadcastReveal(mock.Anything, types.BroadcastRevealRequest{RevealTxHex: "0200"}).
		Return(types.BroadcastRevealResponse{Txid: txid}, nil).Once()
	broadcast, err := f.inscriber.BroadcastReveal(context.Background(), types.BroadcastRevealRequest{RevealTxHex: "0200"})
	require.NoError(t, err)
	assert.Equal(t, txid, broadcast.Txid.String())
}
