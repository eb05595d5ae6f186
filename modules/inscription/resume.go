package inscription

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscriber/common/errs"
	"github.com/gaze-network/inscriber/core/orchestrator"
	"github.com/gaze-network/inscriber/core/types"
	"github.com/gaze-network/inscriber/pkg/btcutils"
)

// Resume adopts a commit created by an earlier run, e.g. one read from the attempt history,
// so that it can be paid or checked again. It makes no network call.
func (i *Inscriber) Resume(ctx context.Context, commit types.CommitResponse, feeRate string) (types.InscriptionAttempt, error) {
	if commit.InscriptionID == "" || commit.PaymentAddress == "" || commit.RequiredAmountInSats <= 0 {
		return types.InscriptionAttempt{}, errs.NewValidationError(MsgRequiredFields)
	}
	sender, ok := i.wallet.Address()
	if !ok {
		return types.InscriptionAttempt{}, errs.NewValidationError(MsgWalletRequired)
	}
	rate, err := btcutils.ParseFeeRate(feeRate)
	if err != nil {
		return types.InscriptionAttempt{}, errs.NewValidationError(MsgInvalidFeeRate)
	}

	attempt, err := i.engine.Submit(ctx, func(context.Context) (types.InscriptionAttempt, orchestrator.Target, error) {
		return types.InscriptionAttempt{Commit: commit, FeeRate: rate}, orchestrator.Target{
			InscriptionID:      commit.InscriptionID.String(),
			PaymentAddress:     commit.PaymentAddress,
			RequiredAmountSats: commit.RequiredAmountInSats.Int64(),
			SenderAddress:      sender,
			FeeRate:            rate,
		}, nil
	}, MsgCreateCommitFailed)
	return attempt, errors.WithStack(err)
}

// Wait blocks until the active attempt is confirmed, failed or dropped.
func (i *Inscriber) Wait(ctx context.Context) (orchestrator.Snapshot[types.InscriptionAttempt], error) {
	snap, err := i.engine.Wait(ctx)
	return snap, errors.WithStack(err)
}
