package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscriber/common/errs"
	"github.com/gaze-network/inscriber/core/orchestrator"
	"github.com/gaze-network/inscriber/core/types"
	"github.com/gaze-network/inscriber/internal/config"
	"github.com/gaze-network/inscriber/modules/brc20"
	"github.com/gaze-network/inscriber/modules/inscription"
	"github.com/gaze-network/inscriber/modules/inscription/datagateway"
	"github.com/gaze-network/inscriber/modules/inscription/datagateway/mocks"
	"github.com/gaze-network/inscriber/modules/inscription/entity"
	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hello.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o600))

	file, err := readFile(path, "")
	require.NoError(t, err)
	assert.Equal(t, "hello.txt", file.Name)
	assert.Contains(t, file.ContentType, "text/plain")
	assert.Equal(t, []byte("hello"), file.Data)

	file, err = readFile(path, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", file.ContentType)

	_, err = readFile("", "")
	assert.Equal(t, inscription.MsgRequiredFields, errs.UserMessage(err, ""))

	_, err = readFile(filepath.Join(dir, "missing.png"), "")
	assert.Error(t, err)
}

type fakePayer struct {
	payErr error
	snap   orchestrator.Snapshot[types.InscriptionAttempt]
	err    error
}

func (f *fakePayer) PayNow(context.Context) (string, error) {
	return "txid", f.payErr
}

func (f *fakePayer) Wait(context.Context) (orchestrator.Snapshot[types.InscriptionAttempt], error) {
	return f.snap, f.err
}

func TestPayAndWait(t *testing.T) {
	ctx := context.Background()

	t.Run("confirmed", func(t *testing.T) {
		var out bytes.Buffer
		p := &fakePayer{snap: orchestrator.Snapshot[types.InscriptionAttempt]{
			State:   orchestrator.StateConfirmed,
			Payment: &types.PaymentStatus{Txid: "abcd", IsPaid: true},
		}}
		require.NoError(t, payAndWait[types.InscriptionAttempt](ctx, &out, p, 0))
		assert.Contains(t, out.String(), "abcd")
	})

	t.Run("pay failed", func(t *testing.T) {
		p := &fakePayer{payErr: errs.WithUserMessage(errs.WalletError, "Payment rejected.")}
		err := payAndWait[types.InscriptionAttempt](ctx, &bytes.Buffer{}, p, 0)
		assert.Equal(t, "Payment rejected.", errs.UserMessage(err, ""))
	})

	t.Run("attempt failed", func(t *testing.T) {
		p := &fakePayer{snap: orchestrator.Snapshot[types.InscriptionAttempt]{
			State:      orchestrator.StateError,
			ErrMessage: "Error checking payment status.",
		}}
		err := payAndWait[types.InscriptionAttempt](ctx, &bytes.Buffer{}, p, 0)
		assert.Equal(t, "Error checking payment status.", errs.UserMessage(err, ""))
	})

	t.Run("wait stopped", func(t *testing.T) {
		p := &fakePayer{err: errors.WithStack(context.DeadlineExceeded)}
		err := payAndWait[types.InscriptionAttempt](ctx, &bytes.Buffer{}, p, 0)
		assert.True(t, errors.Is(err, errs.Timeout))
		assert.Equal(t, msgWaitStopped, errs.UserMessage(err, ""))
	})
}

func TestProgress(t *testing.T) {
	var out bytes.Buffer
	emit := progress[types.InscriptionAttempt](&out)

	emit(orchestrator.Snapshot[types.InscriptionAttempt]{Seq: 1, State: orchestrator.StatePaying})
	emit(orchestrator.Snapshot[types.InscriptionAttempt]{Seq: 3, State: orchestrator.StatePolling, Payment: &types.PaymentStatus{Txid: "beef"}})
	// stale and repeated snapshots are skipped
	emit(orchestrator.Snapshot[types.InscriptionAttempt]{Seq: 2, State: orchestrator.StateError})
	emit(orchestrator.Snapshot[types.InscriptionAttempt]{Seq: 4, State: orchestrator.StatePolling})
	emit(orchestrator.Snapshot[types.InscriptionAttempt]{Seq: 5, State: orchestrator.StateConfirmed})

	assert.Equal(t, "State: paying\nPayment sent (txid beef), waiting for confirmation...\nPayment confirmed.\n", out.String())
}

func TestVersion(t *testing.T) {
	c := NewVersionCommand()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetArgs([]string{"--module", "brc20"})
	require.NoError(t, c.Execute())
	assert.Equal(t, "v0.1.0\n", out.String())

	c = NewVersionCommand()
	c.SetArgs([]string{"--module", "runes"})
	assert.True(t, errors.Is(c.Execute(), errs.Unsupported))
}

func historyInjector(t *testing.T, attempt entity.Attempt) do.Injector {
	t.Helper()
	history := mocks.NewHistoryDataGateway(t)
	history.EXPECT().GetAttemptByID(mock.Anything, attempt.ID).Return(attempt, nil).Once()

	injector := do.New()
	var conf config.Config
	conf.History.Enabled = true
	do.ProvideValue(injector, conf)
	do.ProvideValue[datagateway.HistoryDataGateway](injector, history)
	return injector
}

func journaled(state orchestrator.State, txid string) entity.Attempt {
	return entity.Attempt{
		ID:                 "a1",
		Flow:               inscription.Flow,
		State:              state,
		InscriptionID:      "42",
		PaymentAddress:     "bc1qpaymentaddress0000000000000000000000",
		RequiredAmountSats: 5000,
		FeeRate:            "10",
		Txid:               txid,
	}
}

func TestResumePaidAttemptIsRefused(t *testing.T) {
	const txid = "4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b"
	tests := []struct {
		name    string
		attempt entity.Attempt
	}{
		{"confirmed", journaled(orchestrator.StateConfirmed, txid)},
		{"polling", journaled(orchestrator.StatePolling, txid)},
		{"paying", journaled(orchestrator.StatePaying, "")},
		{"awaiting payment with txid", journaled(orchestrator.StateAwaitingPayment, txid)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			injector := historyInjector(t, tt.attempt)

			// refused before the wallet is connected or the attempt is adopted
			_, err := resumeAttempt(context.Background(), injector, &attemptFlags{AttemptID: "a1"}, true)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errs.InvalidState))
			assert.Contains(t, errs.UserMessage(err, ""), "can't be paid again")
		})
	}
}

func TestResolveAttemptForStatus(t *testing.T) {
	attempt := journaled(orchestrator.StateConfirmed, "beef")
	injector := historyInjector(t, attempt)

	commit, feeRate, err := (&attemptFlags{AttemptID: "a1"}).resolve(context.Background(), injector, false)
	require.NoError(t, err)
	assert.Equal(t, "42", commit.InscriptionID.String())
	assert.Equal(t, attempt.PaymentAddress, commit.PaymentAddress)
	assert.EqualValues(t, 5000, commit.RequiredAmountInSats)
	assert.Equal(t, "10", feeRate)
}

func TestResolveAwaitingAttempt(t *testing.T) {
	injector := historyInjector(t, journaled(orchestrator.StateAwaitingPayment, ""))

	commit, _, err := (&attemptFlags{AttemptID: "a1"}).resolve(context.Background(), injector, true)
	require.NoError(t, err)
	assert.Equal(t, "42", commit.InscriptionID.String())
}

func TestResolveAttemptOfOtherFlow(t *testing.T) {
	attempt := journaled(orchestrator.StateAwaitingPayment, "")
	attempt.Flow = brc20.Flow
	injector := historyInjector(t, attempt)

	_, _, err := (&attemptFlags{AttemptID: "a1"}).resolve(context.Background(), injector, false)
	assert.True(t, errors.Is(err, errs.InvalidArgument))
}
