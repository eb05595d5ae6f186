// Package brc20 drives BRC-20 deploy and mint operations through the same
// submit, pay and poll lifecycle as plain inscriptions.
package brc20

import (
	"context"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscriber/common"
	"github.com/gaze-network/inscriber/common/errs"
	"github.com/gaze-network/inscriber/core/orchestrator"
	"github.com/gaze-network/inscriber/core/poller"
	"github.com/gaze-network/inscriber/core/types"
	"github.com/gaze-network/inscriber/modules/brc20/config"
	"github.com/gaze-network/inscriber/modules/brc20/datagateway"
	"github.com/gaze-network/inscriber/pkg/btcutils"
	"github.com/gaze-network/inscriber/pkg/inscriptionapi"
	"github.com/gaze-network/inscriber/pkg/logger"
	"github.com/gaze-network/inscriber/pkg/logger/slogx"
	"github.com/gaze-network/inscriber/pkg/wallet"
)

const (
	Flow    = "brc20"
	Version = "v0.1.0"
)

const (
	MsgRequiredFields     = "All required fields must be filled."
	MsgWalletRequired     = "Please connect your wallet."
	MsgInvalidFeeRate     = "Fee rate must be a number greater than or equal to 1."
	MsgInvalidTicker      = "Ticker must be 4 uppercase letters."
	MsgTickerRequired     = "Ticker is required."
	MsgInvalidDestination = "Invalid destination address."
	MsgNoPaymentDetails   = "BRC-20 response has no payment details."
	MsgDeployFailed       = "Error deploying BRC-20 token."
	MsgMintFailed         = "Error minting BRC-20 tokens."
	MsgCheckTickerFailed  = "Error checking ticker."
)

var messages = orchestrator.Messages{
	NoAttempt:           "Payment details are missing.",
	PayWalletRequired:   "Invalid wallet address. Please connect your wallet.",
	PayInvalidFeeRate:   "Invalid fee rate. Please use a fee rate >= 1.",
	CheckWalletRequired: MsgWalletRequired,
	StatusFailed:        "Error checking payment status.",
}

type BRC20 struct {
	config  config.Config
	network common.Network
	api     datagateway.BRC20DataGateway
	wallet  *wallet.Session
	engine  *orchestrator.Orchestrator[types.BRC20OperationAttempt]
}

// New creates a BRC20 orchestrator. recorder may be nil.
func New(conf config.Config, network common.Network, api datagateway.BRC20DataGateway, session *wallet.Session, recorder orchestrator.Recorder) *BRC20 {
	if session == nil {
		session = wallet.NewSession(nil)
	}
	engine := orchestrator.New[types.BRC20OperationAttempt](orchestrator.Config{
		Flow:         Flow,
		PollInterval: utils.Default(conf.PollInterval, poller.DefaultInterval),
		Wallet:       session,
		Status:       api,
		Recorder:     recorder,
		Messages:     messages,
	})
	return &BRC20{
		config:  conf,
		network: network,
		api:     api,
		wallet:  session,
		engine:  engine,
	}
}

// Deploy validates req and submits a deploy operation.
func (b *BRC20) Deploy(ctx context.Context, req types.DeployRequest) (types.BRC20OperationAttempt, error) {
	if req.Ticker == "" || req.MaxSupply == "" || req.AmountPerMint == "" || req.DestinationAddress == "" || req.FeeRate == "" {
		return types.BRC20OperationAttempt{}, errs.NewValidationError(MsgRequiredFields)
	}
	sender, feeRate, err := b.validate(req.FeeRate, req.Ticker)
	if err != nil {
		return types.BRC20OperationAttempt{}, errors.WithStack(err)
	}
	if !b.isAddress(req.DestinationAddress) {
		return types.BRC20OperationAttempt{}, errs.NewValidationError(MsgInvalidDestination)
	}

	return b.submit(ctx, types.BRC20Deploy, feeRate, sender, MsgDeployFailed, func(ctx context.Context) (types.BRC20OperationResponse, error) {
		resp, err := b.api.BRC20Deploy(ctx, inscriptionapi.BRC20DeployRequest{
			Ticker:             req.Ticker,
			MaxSupply:          req.MaxSupply,
			AmountPerMint:      req.AmountPerMint,
			DestinationAddress: req.DestinationAddress,
			SenderAddress:      sender,
			FeeRate:            feeRate.String(),
		})
		return resp, errors.WithStack(err)
	})
}

// Mint validates req and submits a mint operation.
func (b *BRC20) Mint(ctx context.Context, req types.MintRequest) (types.BRC20OperationAttempt, error) {
	if req.Ticker == "" || req.Amount == "" || req.NumberOfMints == "" || req.FeeRate == "" {
		return types.BRC20OperationAttempt{}, errs.NewValidationError(MsgRequiredFields)
	}
	sender, feeRate, err := b.validate(req.FeeRate, req.Ticker)
	if err != nil {
		return types.BRC20OperationAttempt{}, errors.WithStack(err)
	}

	return b.submit(ctx, types.BRC20Mint, feeRate, sender, MsgMintFailed, func(ctx context.Context) (types.BRC20OperationResponse, error) {
		resp, err := b.api.BRC20Mint(ctx, inscriptionapi.BRC20MintRequest{
			Ticker:        req.Ticker,
			Amount:        req.Amount,
			NumberOfMints: req.NumberOfMints,
			SenderAddress: sender,
			FeeRate:       feeRate.String(),
		})
		return resp, errors.WithStack(err)
	})
}

func (b *BRC20) submit(ctx context.Context, kind types.BRC20OperationKind, feeRate btcutils.FeeRate, sender, fallback string, call func(ctx context.Context) (types.BRC20OperationResponse, error)) (types.BRC20OperationAttempt, error) {
	attempt, err := b.engine.Submit(ctx, func(ctx context.Context) (types.BRC20OperationAttempt, orchestrator.Target, error) {
		resp, err := call(ctx)
		if err != nil {
			return types.BRC20OperationAttempt{}, orchestrator.Target{}, serverError(err)
		}
		commit, ok := resp.Commit()
		if !ok {
			return types.BRC20OperationAttempt{}, orchestrator.Target{}, errs.NewPublicErrorKind(errs.NotFound, MsgNoPaymentDetails)
		}
		return types.BRC20OperationAttempt{Kind: kind, Response: resp, FeeRate: feeRate}, orchestrator.Target{
			InscriptionID:      commit.InscriptionID.String(),
			PaymentAddress:     commit.PaymentAddress,
			RequiredAmountSats: commit.RequiredAmountInSats.Int64(),
			SenderAddress:      sender,
			FeeRate:            feeRate,
		}, nil
	}, fallback)
	if err != nil {
		return types.BRC20OperationAttempt{}, errors.WithStack(err)
	}

	logger.InfoContext(ctx, "BRC-20 operation created",
		slogx.String("kind", string(kind)),
		slogx.String("ticker", attempt.Response.InscriptionData.Ticker),
	)
	return attempt, nil
}

func (b *BRC20) validate(rawFeeRate, ticker string) (sender string, feeRate btcutils.FeeRate, err error) {
	sender, ok := b.wallet.Address()
	if !ok {
		return "", btcutils.FeeRate{}, errs.NewValidationError(MsgWalletRequired)
	}
	feeRate, err = btcutils.ParseFeeRate(rawFeeRate)
	if err != nil {
		return "", btcutils.FeeRate{}, errs.NewValidationError(MsgInvalidFeeRate)
	}
	if !btcutils.IsTicker(ticker) {
		return "", btcutils.FeeRate{}, errs.NewValidationError(MsgInvalidTicker)
	}
	return sender, feeRate, nil
}

func (b *BRC20) isAddress(address string) bool {
	if b.config.StrictAddress && b.network.IsSupported() {
		return btcutils.IsAddress(address, b.network.ChainParams())
	}
	return btcutils.IsPermissiveAddress(address)
}

// CheckTicker reports whether ticker is already deployed. It does not touch the active operation.
func (b *BRC20) CheckTicker(ctx context.Context, ticker string) (types.TickerInfo, error) {
	if ticker == "" {
		return types.TickerInfo{}, errs.NewValidationError(MsgTickerRequired)
	}
	if !btcutils.IsTicker(ticker) {
		return types.TickerInfo{}, errs.NewValidationError(MsgInvalidTicker)
	}
	info, err := b.api.BRC20CheckTicker(ctx, ticker)
	if err != nil {
		err = serverError(err)
		return types.TickerInfo{}, errs.WithUserMessage(errors.WithStack(err), errs.UserMessage(err, MsgCheckTickerFailed))
	}
	return info, nil
}

// PayNow pays the active operation's commit with the connected wallet and starts polling.
func (b *BRC20) PayNow(ctx context.Context) (string, error) {
	txid, err := b.engine.PayNow(ctx)
	return txid, errors.WithStack(err)
}

func (b *BRC20) CheckPaymentStatus(ctx context.Context) (types.PaymentStatus, error) {
	status, err := b.engine.CheckPaymentStatus(ctx)
	return status, errors.WithStack(err)
}

func (b *BRC20) Cancel(ctx context.Context) error {
	return errors.WithStack(b.engine.Cancel(ctx))
}

func (b *BRC20) Close(ctx context.Context) error {
	return errors.WithStack(b.engine.Close(ctx))
}

func (b *BRC20) Snapshot() orchestrator.Snapshot[types.BRC20OperationAttempt] {
	return b.engine.Snapshot()
}

func (b *BRC20) State() orchestrator.State {
	return b.engine.State()
}

func (b *BRC20) OnChange(fn func(orchestrator.Snapshot[types.BRC20OperationAttempt])) (unsubscribe func()) {
	return b.engine.OnChange(fn)
}

// serverError attaches the API's "error" field as the user message when there is one.
func serverError(err error) error {
	var rerr *inscriptionapi.ResponseError
	if errors.As(err, &rerr) {
		if msg := rerr.ServerMessage(true); msg != "" {
			return errs.WithUserMessage(err, msg)
		}
	}
	return err
}

func (b *BRC20) Wait(ctx context.Context) (orchestrator.Snapshot[types.BRC20OperationAttempt], error) {
	snap, err := b.engine.Wait(ctx)
	return snap, errors.WithStack(err)
}
