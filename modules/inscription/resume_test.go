package inscription_test

import (
	"context"
	"testing"
	"time"

	"github.com/gaze-network/inscriber/common/errs"
	"github.com/gaze-network/inscriber/core/orchestrator"
	"github.com/gaze-network/inscriber/core/types"
	"github.com/gaze-network/inscriber/modules/inscription"
	"github.com/gaze-network/inscriber/modules/inscription/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResume(t *testing.T) {
	f := newFixture(t, true, config.Config{PollInterval: 20 * time.Millisecond})

	attempt, err := f.inscriber.Resume(context.Background(), commit(), "7")
	require.NoError(t, err)
	assert.Equal(t, "7", attempt.FeeRate.String())

	snap := f.inscriber.Snapshot()
	assert.Equal(t, orchestrator.StateAwaitingPayment, snap.State)
	assert.Equal(t, "42", snap.Target.InscriptionID)
	assert.Equal(t, sender, snap.Target.SenderAddress)

	f.wallet.EXPECT().SendBitcoin(mock.Anything, payTo, int64(5000), mock.Anything).Return(txid, nil).Once()
	f.api.EXPECT().PaymentStatus(mock.Anything, mock.Anything).
		Return(types.PaymentStatus{IsPaid: true, Status: types.PaymentConfirmed}, nil).Once()
	_, err = f.inscriber.PayNow(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	snap, err = f.inscriber.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, orchestrator.StateConfirmed, snap.State)
}

func TestResumeValidation(t *testing.T) {
	f := newFixture(t, true, config.Config{})

	incomplete := commit()
	incomplete.PaymentAddress = ""
	_, err := f.inscriber.Resume(context.Background(), incomplete, "7")
	assert.Equal(t, inscription.MsgRequiredFields, errs.UserMessage(err, ""))

	_, err = f.inscriber.Resume(context.Background(), commit(), "0.9")
	assert.Equal(t, inscription.MsgInvalidFeeRate, errs.UserMessage(err, ""))

	f.session.Disconnect()
	_, err = f.inscriber.Resume(context.Background(), commit(), "7")
	assert.Equal(t, inscription.MsgWalletRequired, errs.UserMessage(err, ""))
	assert.Equal(t, orchestrator.StateIdle, f.inscriber.State())
}
