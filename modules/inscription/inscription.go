// Package inscription drives one inscription at a time: create the commit, pay it with
// the connected wallet and poll the payment until it is confirmed.
package inscription

import (
	"context"
	"strings"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscriber/common"
	"github.com/gaze-network/inscriber/common/errs"
	"github.com/gaze-network/inscriber/core/orchestrator"
	"github.com/gaze-network/inscriber/core/poller"
	"github.com/gaze-network/inscriber/core/types"
	"github.com/gaze-network/inscriber/modules/inscription/config"
	"github.com/gaze-network/inscriber/modules/inscription/datagateway"
	"github.com/gaze-network/inscriber/pkg/btcutils"
	"github.com/gaze-network/inscriber/pkg/inscriptionapi"
	"github.com/gaze-network/inscriber/pkg/logger"
	"github.com/gaze-network/inscriber/pkg/logger/slogx"
	"github.com/gaze-network/inscriber/pkg/wallet"
)

const (
	Flow    = "inscription"
	Version = "v0.1.0"
)

const (
	MsgRequiredFields     = "All required fields must be filled."
	MsgEmptyFile          = "Uploaded file is empty."
	MsgWalletRequired     = "Please connect your wallet."
	MsgInvalidFeeRate     = "Fee rate must be a number greater than or equal to 1."
	MsgInvalidRecipient   = "Invalid recipient address."
	MsgCreateCommitFailed = "Error creating inscription commit."
	MsgDetailsIDRequired  = "Enter an inscription ID or create an inscription first."
	MsgDetailsNotFound    = "Inscription not found."
	MsgStatsFailed        = "Error fetching stats."
	MsgWalletListFailed   = "Error fetching wallet inscriptions."
	MsgRevealFailed       = "Error creating reveal transaction."
	MsgBroadcastFailed    = "Error broadcasting reveal transaction."
)

var messages = orchestrator.Messages{
	NoAttempt:           "Create an inscription first.",
	PayWalletRequired:   "Invalid wallet address. Please connect your wallet.",
	PayInvalidFeeRate:   "Invalid fee rate. Please create a new inscription with a fee rate >= 1.",
	CheckWalletRequired: MsgWalletRequired,
	StatusFailed:        "Error checking payment status.",
}

type Inscriber struct {
	config  config.Config
	network common.Network
	api     datagateway.InscriptionDataGateway
	wallet  *wallet.Session
	engine  *orchestrator.Orchestrator[types.InscriptionAttempt]
}

// New creates an Inscriber. recorder may be nil.
func New(conf config.Config, network common.Network, api datagateway.InscriptionDataGateway, session *wallet.Session, recorder orchestrator.Recorder) *Inscriber {
	if session == nil {
		session = wallet.NewSession(nil)
	}
	engine := orchestrator.New[types.InscriptionAttempt](orchestrator.Config{
		Flow:         Flow,
		PollInterval: utils.Default(conf.PollInterval, poller.DefaultInterval),
		Wallet:       session,
		Status:       api,
		Recorder:     recorder,
		Messages:     messages,
	})
	return &Inscriber{
		config:  conf,
		network: network,
		api:     api,
		wallet:  session,
		engine:  engine,
	}
}

// Submit validates req and creates a commit for it. Validation errors leave the
// current attempt untouched and make no network call.
func (i *Inscriber) Submit(ctx context.Context, req types.InscriptionRequest) (types.InscriptionAttempt, error) {
	recipient, sender, feeRate, err := i.validate(req)
	if err != nil {
		return types.InscriptionAttempt{}, errors.WithStack(err)
	}

	attempt, err := i.engine.Submit(ctx, func(ctx context.Context) (types.InscriptionAttempt, orchestrator.Target, error) {
		commit, err := i.api.CreateCommit(ctx, inscriptionapi.CreateCommitRequest{
			File:             req.File,
			RecipientAddress: recipient,
			FeeRate:          feeRate.String(),
			SenderAddress:    sender,
		})
		if err != nil {
			return types.InscriptionAttempt{}, orchestrator.Target{}, serverMessage(err)
		}
		attempt := types.InscriptionAttempt{Commit: commit, FeeRate: feeRate}
		return attempt, orchestrator.Target{
			InscriptionID:      commit.InscriptionID.String(),
			PaymentAddress:     commit.PaymentAddress,
			RequiredAmountSats: commit.RequiredAmountInSats.Int64(),
			SenderAddress:      sender,
			FeeRate:            feeRate,
		}, nil
	}, MsgCreateCommitFailed)
	if err != nil {
		return types.InscriptionAttempt{}, errors.WithStack(err)
	}

	logger.InfoContext(ctx, "Inscription commit created",
		slogx.String("inscription_id", attempt.Commit.InscriptionID.String()),
		slogx.Sats("file_size_bytes", attempt.Commit.FileSizeInBytes.Int64()),
	)
	return attempt, nil
}

// validate returns the trimmed recipient, the connected sender and the parsed fee rate.
func (i *Inscriber) validate(req types.InscriptionRequest) (recipient, sender string, feeRate btcutils.FeeRate, err error) {
	recipient = strings.TrimSpace(req.RecipientAddress)
	if req.File.Data == nil || recipient == "" || req.FeeRate == "" {
		return "", "", btcutils.FeeRate{}, errs.NewValidationError(MsgRequiredFields)
	}
	if len(req.File.Data) == 0 {
		return "", "", btcutils.FeeRate{}, errs.NewValidationError(MsgEmptyFile)
	}
	sender, ok := i.wallet.Address()
	if !ok {
		return "", "", btcutils.FeeRate{}, errs.NewValidationError(MsgWalletRequired)
	}
	feeRate, err = btcutils.ParseFeeRate(req.FeeRate)
	if err != nil {
		return "", "", btcutils.FeeRate{}, errs.NewValidationError(MsgInvalidFeeRate)
	}
	if !i.isAddress(recipient) {
		return "", "", btcutils.FeeRate{}, errs.NewValidationError(MsgInvalidRecipient)
	}
	return recipient, sender, feeRate, nil
}

func (i *Inscriber) isAddress(address string) bool {
	if i.config.StrictAddress && i.network.IsSupported() {
		return btcutils.IsAddress(address, i.network.ChainParams())
	}
	return btcutils.IsPermissiveAddress(address)
}

// PayNow pays the active commit with the connected wallet and starts polling its payment status.
func (i *Inscriber) PayNow(ctx context.Context) (string, error) {
	txid, err := i.engine.PayNow(ctx)
	return txid, errors.WithStack(err)
}

// CheckPaymentStatus fetches the payment status of the active attempt once.
func (i *Inscriber) CheckPaymentStatus(ctx context.Context) (types.PaymentStatus, error) {
	status, err := i.engine.CheckPaymentStatus(ctx)
	return status, errors.WithStack(err)
}

func (i *Inscriber) Cancel(ctx context.Context) error {
	return errors.WithStack(i.engine.Cancel(ctx))
}

// Close stops polling. The Inscriber can't be used afterwards.
func (i *Inscriber) Close(ctx context.Context) error {
	return errors.WithStack(i.engine.Close(ctx))
}

func (i *Inscriber) Snapshot() orchestrator.Snapshot[types.InscriptionAttempt] {
	return i.engine.Snapshot()
}

func (i *Inscriber) State() orchestrator.State {
	return i.engine.State()
}

func (i *Inscriber) OnChange(fn func(orchestrator.Snapshot[types.InscriptionAttempt])) (unsubscribe func()) {
	return i.engine.OnChange(fn)
}

// serverMessage attaches the API's "message" field as the user message when there is one.
func serverMessage(err error) error {
	var rerr *inscriptionapi.ResponseError
	if errors.As(err, &rerr) {
		if msg := rerr.ServerMessage(false); msg != "" {
			return errs.WithUserMessage(err, msg)
		}
	}
	return err
}
