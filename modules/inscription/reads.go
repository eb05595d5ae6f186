package inscription

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscriber/common/errs"
	"github.com/gaze-network/inscriber/core/types"
	"github.com/gaze-network/inscriber/pkg/logger"
	"github.com/gaze-network/inscriber/pkg/logger/slogx"
)

// GetInscriptionDetails fetches an inscription by id, or the active inscription when id is empty.
// It never changes the state of the active attempt.
func (i *Inscriber) GetInscriptionDetails(ctx context.Context, id string) (types.InscriptionDetails, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		id = i.engine.Snapshot().Target.InscriptionID
	}
	if id == "" {
		return types.InscriptionDetails{}, errs.NewValidationError(MsgDetailsIDRequired)
	}

	details, err := i.api.GetInscription(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "Can't get inscription details", slogx.String("inscription_id", id), slogx.Error(err))
		return types.InscriptionDetails{}, userError(err, MsgDetailsNotFound)
	}
	return details, nil
}

func (i *Inscriber) FetchStats(ctx context.Context) (types.InscriptionStats, error) {
	stats, err := i.api.GetStats(ctx)
	if err != nil {
		return types.InscriptionStats{}, userError(err, MsgStatsFailed)
	}
	return stats, nil
}

// FetchWalletInscriptions lists the inscriptions sent by the connected wallet.
func (i *Inscriber) FetchWalletInscriptions(ctx context.Context) ([]types.InscriptionDetails, error) {
	address, ok := i.wallet.Address()
	if !ok {
		return nil, errs.NewValidationError(MsgWalletRequired)
	}
	list, err := i.api.GetInscriptionsBySender(ctx, address)
	if err != nil {
		return nil, userError(err, MsgWalletListFailed)
	}
	return list, nil
}

func (i *Inscriber) CreateReveal(ctx context.Context, req types.RevealRequest) (types.RevealResponse, error) {
	if req.InscriptionID == "" {
		req.InscriptionID = i.engine.Snapshot().Target.InscriptionID
	}
	if req.InscriptionID == "" || req.CommitTxID == "" || req.Amount <= 0 {
		return types.RevealResponse{}, errs.NewValidationError(MsgRequiredFields)
	}
	resp, err := i.api.CreateReveal(ctx, req)
	if err != nil {
		return types.RevealResponse{}, userError(err, MsgRevealFailed)
	}
	return resp, nil
}

func (i *Inscriber) BroadcastReveal(ctx context.Context, req types.BroadcastRevealRequest) (types.BroadcastRevealResponse, error) {
	if strings.TrimSpace(req.RevealTxHex) == "" {
		return types.BroadcastRevealResponse{}, errs.NewValidationError(MsgRequiredFields)
	}
	resp, err := i.api.BroadcastReveal(ctx, req)
	if err != nil {
		return types.BroadcastRevealResponse{}, userError(err, MsgBroadcastFailed)
	}
	logger.InfoContext(ctx, "Reveal transaction broadcasted", slogx.String("txid", resp.Txid.String()))
	return resp, nil
}

func userError(err error, fallback string) error {
	err = serverMessage(err)
	return errs.WithUserMessage(errors.WithStack(err), errs.UserMessage(err, fallback))
}
