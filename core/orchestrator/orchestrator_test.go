package orchestrator_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscriber/common/errs"
	"github.com/gaze-network/inscriber/core/orchestrator"
	"github.com/gaze-network/inscriber/core/orchestrator/mocks"
	"github.com/gaze-network/inscriber/core/types"
	"github.com/gaze-network/inscriber/pkg/btcutils"
	"github.com/gaze-network/inscriber/pkg/wallet"
	walletmocks "github.com/gaze-network/inscriber/pkg/wallet/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	sender   = "bc1qsender0000000000000000000000000000000"
	payTo    = "bc1qpayment000000000000000000000000000000"
	txid     = "4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b"
	interval = 20 * time.Millisecond
)

var messages = orchestrator.Messages{
	NoAttempt:           "Create an inscription first.",
	PayWalletRequired:   "Invalid wallet address. Please connect your UniSat wallet.",
	PayInvalidFeeRate:   "Invalid fee rate.",
	CheckWalletRequired: "Please connect your UniSat wallet.",
	StatusFailed:        "Error checking payment status.",
}

type fixture struct {
	o      *orchestrator.Orchestrator[string]
	wallet *walletmocks.Wallet
	status *mocks.StatusFetcher
}

func newFixture(t *testing.T, connected bool) *fixture {
	t.Helper()
	w := walletmocks.NewWallet(t)
	session := wallet.NewSession(w)
	if connected {
		w.EXPECT().RequestAccounts(mock.Anything).Return([]string{sender}, nil).Once()
		_, err := session.Connect(context.Background())
		require.NoError(t, err)
	}
	status := mocks.NewStatusFetcher(t)
	o := orchestrator.New[string](orchestrator.Config{
		Flow:         "test",
		PollInterval: interval,
		Wallet:       session,
		Status:       status,
		Messages:     messages,
	})
	t.Cleanup(func() { _ = o.Close(context.Background()) })
	return &fixture{o: o, wallet: w, status: status}
}

func target() orchestrator.Target {
	return orchestrator.Target{
		InscriptionID:      "abc",
		PaymentAddress:     payTo,
		RequiredAmountSats: 5000,
		SenderAddress:      sender,
		FeeRate:            btcutils.MustParseFeeRate("10"),
	}
}

func submitOK(t *testing.T, f *fixture) {
	t.Helper()
	_, err := f.o.Submit(context.Background(), func(ctx context.Context) (string, orchestrator.Target, error) {
		return "attempt", target(), nil
	}, "fallback")
	require.NoError(t, err)
	require.Equal(t, orchestrator.StateAwaitingPayment, f.o.State())
}

func waitState(t *testing.T, o *orchestrator.Orchestrator[string], want orchestrator.State) {
	t.Helper()
	require.Eventually(t, func() bool { return o.State() == want }, 2*time.Second, 5*time.Millisecond,
		"state never reached %s", want)
}

func TestSubmitStoresAttempt(t *testing.T) {
	f := newFixture(t, true)

	var states []orchestrator.State
	f.o.OnChange(func(s orchestrator.Snapshot[string]) { states = append(states, s.State) })

	submitOK(t, f)

	snap := f.o.Snapshot()
	assert.True(t, snap.HasAttempt)
	assert.Equal(t, "attempt", snap.Attempt)
	assert.Equal(t, "10", snap.Target.FeeRate.String())
	assert.NotEmpty(t, snap.AttemptID)
	assert.Equal(t, []orchestrator.State{orchestrator.StateSubmitting, orchestrator.StateAwaitingPayment}, states)
}

func TestSubmitFailure(t *testing.T) {
	f := newFixture(t, true)

	_, err := f.o.Submit(context.Background(), func(ctx context.Context) (string, orchestrator.Target, error) {
		return "", orchestrator.Target{}, errors.New("boom")
	}, "Error creating inscription commit.")
	require.Error(t, err)
	assert.Equal(t, "Error creating inscription commit.", errs.UserMessage(err, ""))

	snap := f.o.Snapshot()
	assert.Equal(t, orchestrator.StateError, snap.State)
	assert.Equal(t, "Error creating inscription commit.", snap.ErrMessage)
	assert.False(t, snap.HasAttempt)
}

func TestSubmitFailureKeepsServerMessage(t *testing.T) {
	f := newFixture(t, true)

	_, err := f.o.Submit(context.Background(), func(ctx context.Context) (string, orchestrator.Target, error) {
		return "", orchestrator.Target{}, errs.WithUserMessage(errors.New("400"), "Invalid fee_rate")
	}, "fallback")
	require.Error(t, err)
	assert.Equal(t, "Invalid fee_rate", f.o.Snapshot().ErrMessage)
}

func TestSubmitBusy(t *testing.T) {
	f := newFixture(t, true)

	release := make(chan struct{})
	started := make(chan struct{})
	go func() {
		_, _ = f.o.Submit(context.Background(), func(ctx context.Context) (string, orchestrator.Target, error) {
			close(started)
			<-release
			return "first", target(), nil
		}, "fallback")
	}()
	<-started

	_, err := f.o.Submit(context.Background(), func(ctx context.Context) (string, orchestrator.Target, error) {
		t.Fatal("second submit must not reach the network")
		return "", orchestrator.Target{}, nil
	}, "fallback")
	assert.True(t, errors.Is(err, errs.Busy))
	assert.True(t, f.o.Snapshot().Busy[orchestrator.OpSubmit])

	close(release)
	waitState(t, f.o, orchestrator.StateAwaitingPayment)
	assert.Equal(t, "first", f.o.Snapshot().Attempt)
}

func TestPayNowRequiresWallet(t *testing.T) {
	f := newFixture(t, false)
	submitOK(t, f)

	_, err := f.o.PayNow(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.InvalidArgument))
	assert.Equal(t, messages.PayWalletRequired, errs.UserMessage(err, ""))
	assert.Equal(t, orchestrator.StateAwaitingPayment, f.o.State())
	f.wallet.AssertNotCalled(t, "SendBitcoin", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPayNowWithoutAttempt(t *testing.T) {
	f := newFixture(t, true)

	_, err := f.o.PayNow(context.Background())
	assert.True(t, errors.Is(err, errs.InvalidState))
	assert.Equal(t, messages.NoAttempt, errs.UserMessage(err, ""))
}

func TestPollUntilConfirmed(t *testing.T) {
	f := newFixture(t, true)
	submitOK(t, f)

	f.wallet.EXPECT().SendBitcoin(mock.Anything, payTo, int64(5000), mock.MatchedBy(func(opts wallet.SendOptions) bool {
		return opts.FeeRate.String() == "10"
	})).Return(txid, nil).Once()

	var polls atomic.Int32
	f.status.EXPECT().PaymentStatus(mock.Anything, types.PaymentStatusRequest{
		PaymentAddress:       payTo,
		RequiredAmountInSats: 5000,
		SenderAddress:        sender,
		ID:                   "abc",
	}).RunAndReturn(func(ctx context.Context, req types.PaymentStatusRequest) (types.PaymentStatus, error) {
		if polls.Add(1) == 1 {
			return types.PaymentStatus{IsPaid: false, Status: types.PaymentPending}, nil
		}
		return types.PaymentStatus{IsPaid: true, Status: types.PaymentConfirmed}, nil
	})

	got, err := f.o.PayNow(context.Background())
	require.NoError(t, err)
	assert.Equal(t, txid, got)

	snap := f.o.Snapshot()
	require.NotNil(t, snap.Payment)
	assert.Equal(t, txid, snap.Payment.Txid)
	assert.False(t, snap.Payment.IsPaid)

	waitState(t, f.o, orchestrator.StateConfirmed)
	time.Sleep(5 * interval)
	assert.Equal(t, int32(2), polls.Load(), "no poll may follow a confirmed status")

	snap = f.o.Snapshot()
	assert.True(t, snap.Payment.IsConfirmed())
	assert.Equal(t, txid, snap.Payment.Txid)
}

func TestWait(t *testing.T) {
	f := newFixture(t, true)
	submitOK(t, f)

	ctx, cancel := context.WithTimeout(context.Background(), 2*interval)
	defer cancel()
	snap, err := f.o.Wait(ctx)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Equal(t, orchestrator.StateAwaitingPayment, snap.State)

	f.wallet.EXPECT().SendBitcoin(mock.Anything, payTo, int64(5000), mock.Anything).Return(txid, nil).Once()
	f.status.EXPECT().PaymentStatus(mock.Anything, mock.Anything).
		Return(types.PaymentStatus{IsPaid: true, Status: types.PaymentConfirmed}, nil).Once()
	_, err = f.o.PayNow(context.Background())
	require.NoError(t, err)

	ctx, cancel = context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	snap, err = f.o.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, orchestrator.StateConfirmed, snap.State)
}

func TestPayNowWalletFailure(t *testing.T) {
	f := newFixture(t, true)
	submitOK(t, f)

	f.wallet.EXPECT().SendBitcoin(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", wallet.Rejected(errors.New("User rejected the request"), "send")).Once()

	_, err := f.o.PayNow(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.WalletError))

	snap := f.o.Snapshot()
	assert.Equal(t, orchestrator.StateError, snap.State)
	assert.Contains(t, snap.ErrMessage, "Failed to send payment with fee rate 10 sats/vbyte")
	assert.Contains(t, snap.ErrMessage, "Try a higher fee rate.")
	f.status.AssertNotCalled(t, "PaymentStatus", mock.Anything, mock.Anything)
}

func TestPollErrorStopsPolling(t *testing.T) {
	f := newFixture(t, true)
	submitOK(t, f)

	f.wallet.EXPECT().SendBitcoin(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(txid, nil).Once()
	var polls atomic.Int32
	f.status.EXPECT().PaymentStatus(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, types.PaymentStatusRequest) (types.PaymentStatus, error) {
			polls.Add(1)
			return types.PaymentStatus{}, errors.Mark(errors.New("502"), errs.NetworkError)
		})

	_, err := f.o.PayNow(context.Background())
	require.NoError(t, err)

	waitState(t, f.o, orchestrator.StateError)
	time.Sleep(5 * interval)
	assert.Equal(t, int32(1), polls.Load())
	assert.Equal(t, messages.StatusFailed, f.o.Snapshot().ErrMessage)
}

func TestCheckPaymentStatus(t *testing.T) {
	f := newFixture(t, true)
	submitOK(t, f)

	f.status.EXPECT().PaymentStatus(mock.Anything, mock.Anything).
		Return(types.PaymentStatus{}, errors.New("timeout")).Once()
	_, err := f.o.CheckPaymentStatus(context.Background())
	require.Error(t, err)
	assert.Equal(t, messages.StatusFailed, errs.UserMessage(err, ""))
	assert.Equal(t, orchestrator.StateAwaitingPayment, f.o.State())

	f.status.EXPECT().PaymentStatus(mock.Anything, mock.Anything).
		Return(types.PaymentStatus{IsPaid: false, Status: types.PaymentPending}, nil).Once()
	status, err := f.o.CheckPaymentStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, types.PaymentPending, status.Status)
	assert.Equal(t, orchestrator.StateAwaitingPayment, f.o.State())
}

func TestCheckPaymentStatusRequiresWallet(t *testing.T) {
	f := newFixture(t, false)
	submitOK(t, f)

	_, err := f.o.CheckPaymentStatus(context.Background())
	assert.True(t, errors.Is(err, errs.InvalidArgument))
	f.status.AssertNotCalled(t, "PaymentStatus", mock.Anything, mock.Anything)
}

func TestSubmitSupersedesPolling(t *testing.T) {
	f := newFixture(t, true)
	submitOK(t, f)

	f.wallet.EXPECT().SendBitcoin(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(txid, nil).Once()
	var polls atomic.Int32
	f.status.EXPECT().PaymentStatus(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, types.PaymentStatusRequest) (types.PaymentStatus, error) {
			polls.Add(1)
			return types.PaymentStatus{Status: types.PaymentPending}, nil
		}).Maybe()

	_, err := f.o.PayNow(context.Background())
	require.NoError(t, err)
	require.Equal(t, orchestrator.StatePolling, f.o.State())

	submitOK(t, f)
	n := polls.Load()
	time.Sleep(5 * interval)
	assert.Equal(t, n, polls.Load(), "superseded attempt kept polling")
	assert.Nil(t, f.o.Snapshot().Payment)
}

func TestCancel(t *testing.T) {
	f := newFixture(t, true)
	submitOK(t, f)

	require.NoError(t, f.o.Cancel(context.Background()))
	snap := f.o.Snapshot()
	assert.Equal(t, orchestrator.StateIdle, snap.State)
	assert.False(t, snap.HasAttempt)
}

func TestClose(t *testing.T) {
	f := newFixture(t, true)
	submitOK(t, f)

	require.NoError(t, f.o.Close(context.Background()))
	_, err := f.o.PayNow(context.Background())
	assert.True(t, errors.Is(err, errs.InvalidState))
	require.NoError(t, f.o.Close(context.Background()))
}

func TestRecorderFailureIsIgnored(t *testing.T) {
	w := walletmocks.NewWallet(t)
	recorder := mocks.NewRecorder(t)
	recorder.EXPECT().Record(mock.Anything, mock.Anything).Return(errors.New("db down"))

	o := orchestrator.New[string](orchestrator.Config{
		Flow:     "test",
		Wallet:   wallet.NewSession(w),
		Status:   mocks.NewStatusFetcher(t),
		Recorder: recorder,
		Messages: messages,
	})
	defer o.Close(context.Background())

	_, err := o.Submit(context.Background(), func(ctx context.Context) (string, orchestrator.Target, error) {
		return "attempt", target(), nil
	}, "fallback")
	require.NoError(t, err)

	recorder.AssertCalled(t, "Record", mock.Anything, mock.MatchedBy(func(rec orchestrator.Record) bool {
		return rec.State == orchestrator.StateAwaitingPayment && rec.FeeRate == "10" && rec.AttemptID != ""
	}))
}

func TestRecordCarriesSnapshotOrder(t *testing.T) {
	w := walletmocks.NewWallet(t)
	var (
		mu      sync.Mutex
		records []orchestrator.Record
		snaps   []orchestrator.Snapshot[string]
	)
	recorder := mocks.NewRecorder(t)
	recorder.EXPECT().Record(mock.Anything, mock.Anything).Run(func(_ context.Context, rec orchestrator.Record) {
		mu.Lock()
		defer mu.Unlock()
		records = append(records, rec)
	}).Return(nil)

	o := orchestrator.New[string](orchestrator.Config{
		Flow:     "test",
		Wallet:   wallet.NewSession(w),
		Status:   mocks.NewStatusFetcher(t),
		Recorder: recorder,
		Messages: messages,
	})
	defer o.Close(context.Background())
	defer o.OnChange(func(snap orchestrator.Snapshot[string]) {
		if snap.AttemptID == "" {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		snaps = append(snaps, snap)
	})()

	for i := 0; i < 2; i++ {
		_, err := o.Submit(context.Background(), func(ctx context.Context) (string, orchestrator.Target, error) {
			return "attempt", target(), nil
		}, "fallback")
		require.NoError(t, err)
	}

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, records)
	require.Len(t, records, len(snaps))
	for i, rec := range records {
		assert.Equal(t, snaps[i].Seq, rec.Seq)
		assert.True(t, snaps[i].At.Equal(rec.At), "record %d", i)
		if i > 0 {
			assert.GreaterOrEqual(t, rec.Seq, records[i-1].Seq)
			assert.False(t, rec.At.Before(records[i-1].At))
		}
	}
}

func TestStateTransitions(t *testing.T) {
	assert.True(t, orchestrator.StateIdle.CanTransition(orchestrator.StateSubmitting))
	assert.True(t, orchestrator.StatePolling.CanTransition(orchestrator.StateConfirmed))
	assert.False(t, orchestrator.StateIdle.CanTransition(orchestrator.StatePaying))
	assert.False(t, orchestrator.StatePaying.CanTransition(orchestrator.StateIdle))
	assert.True(t, orchestrator.StateError.IsTerminal())
	assert.False(t, orchestrator.StatePolling.IsTerminal())
}
