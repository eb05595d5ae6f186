package cmd

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscriber/common/errs"
	"github.com/gaze-network/inscriber/core/orchestrator"
	"github.com/gaze-network/inscriber/core/types"
	"github.com/gaze-network/inscriber/internal/config"
	"github.com/gaze-network/inscriber/modules/inscription"
	"github.com/gaze-network/inscriber/modules/inscription/datagateway"
	"github.com/gaze-network/inscriber/pkg/logger"
	"github.com/gaze-network/inscriber/pkg/logger/slogx"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
)

const (
	msgWaitStopped     = "Stopped waiting for confirmation. Run `inscriber status` to check the payment later."
	msgHistoryDisabled = "Attempt history is disabled. Set history.enabled to true."
)

type inscribeCmdOptions struct {
	File        string
	ContentType string
	Recipient   string
	FeeRate     string
	Pay         bool
	Timeout     time.Duration
}

func NewInscribeCommand() *cobra.Command {
	opts := &inscribeCmdOptions{}

	cmd := &cobra.Command{
		Use:     "inscribe",
		Short:   "Create an inscription commit, and optionally pay it",
		Example: `inscriber inscribe --file ./image.png --recipient bc1p... --fee-rate 12 --pay`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return inscribeHandler(opts, cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.File, "file", "", "Path of the file to inscribe")
	flags.StringVar(&opts.ContentType, "content-type", "", "Content type of the file. Detected from the file when empty")
	flags.StringVar(&opts.Recipient, "recipient", "", "Address receiving the inscription")
	flags.StringVar(&opts.FeeRate, "fee-rate", "", "Fee rate in sats/vbyte, at least 1")
	flags.BoolVar(&opts.Pay, "pay", false, "Pay the commit with the connected wallet and wait for confirmation")
	flags.DurationVar(&opts.Timeout, "timeout", 0, "Stop waiting for confirmation after this duration. Zero waits until interrupted")

	return cmd
}

func inscribeHandler(opts *inscribeCmdOptions, cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	injector := newInjector(ctx, config.Load())
	defer shutdown(ctx, injector)

	file, err := readFile(opts.File, opts.ContentType)
	if err != nil {
		return errors.WithStack(err)
	}
	if _, err := connectWallet(ctx, injector); err != nil {
		return errors.WithStack(err)
	}
	inscriber, err := do.Invoke[*inscription.Inscriber](injector)
	if err != nil {
		return errors.WithStack(err)
	}
	defer inscriber.Close(ctx)
	defer inscriber.OnChange(progress[types.InscriptionAttempt](cmd.ErrOrStderr()))()

	attempt, err := inscriber.Submit(ctx, types.InscriptionRequest{
		File:             file,
		RecipientAddress: opts.Recipient,
		FeeRate:          opts.FeeRate,
	})
	if err != nil {
		return errors.WithStack(err)
	}
	out := cmd.OutOrStdout()
	printTarget(out, inscriber.Snapshot().Target)
	if !opts.Pay {
		fmt.Fprintf(out, "\nPay it with: inscriber pay --inscription-id %s --payment-address %s --amount %d --fee-rate %s\n",
			attempt.Commit.InscriptionID, attempt.Commit.PaymentAddress, attempt.Commit.RequiredAmountInSats.Int64(), attempt.FeeRate.String())
		return nil
	}
	return payAndWait[types.InscriptionAttempt](ctx, out, inscriber, opts.Timeout)
}

func readFile(path, contentType string) (types.File, error) {
	if path == "" {
		return types.File{}, errs.NewValidationError(inscription.MsgRequiredFields)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return types.File{}, errs.WithUserMessage(errors.Wrap(err, "can't read file"), fmt.Sprintf("Can't read file %q.", path))
	}
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(path))
	}
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	return types.File{Name: filepath.Base(path), ContentType: contentType, Data: data}, nil
}

type payer[T any] interface {
	PayNow(ctx context.Context) (string, error)
	Wait(ctx context.Context) (orchestrator.Snapshot[T], error)
}

// payAndWait pays the active attempt and blocks until it is confirmed or failed.
func payAndWait[T any](ctx context.Context, out io.Writer, p payer[T], timeout time.Duration) error {
	if _, err := p.PayNow(ctx); err != nil {
		return errors.WithStack(err)
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	snap, err := p.Wait(ctx)
	if err != nil {
		return errs.WithUserMessage(errors.Mark(err, errs.Timeout), msgWaitStopped)
	}
	if snap.State == orchestrator.StateError {
		failure := snap.Err
		if failure == nil {
			failure = errors.New(snap.ErrMessage)
		}
		return errs.WithUserMessage(failure, snap.ErrMessage)
	}
	if snap.Payment != nil {
		fmt.Fprintf(out, "Confirmed payment %s\n", snap.Payment.Txid)
	}
	return nil
}

// attemptFlags identify an attempt created by an earlier run.
type attemptFlags struct {
	AttemptID      string
	InscriptionID  string
	PaymentAddress string
	Amount         int64
	FeeRate        string
}

func (f *attemptFlags) register(flags *pflag.FlagSet) {
	flags.StringVar(&f.AttemptID, "attempt", "", "Attempt ID from `inscriber history`. Requires history to be enabled")
	flags.StringVar(&f.InscriptionID, "inscription-id", "", "Inscription ID returned by the commit")
	flags.StringVar(&f.PaymentAddress, "payment-address", "", "Payment address returned by the commit")
	flags.Int64Var(&f.Amount, "amount", 0, "Required amount in sats returned by the commit")
	flags.StringVar(&f.FeeRate, "fee-rate", "", "Fee rate in sats/vbyte used to create the commit")
}

// resolve returns the commit and fee rate of the attempt. With payable set, a journaled attempt
// must still be awaiting payment and have no payment txid.
func (f *attemptFlags) resolve(ctx context.Context, injector do.Injector, payable bool) (types.CommitResponse, string, error) {
	if f.AttemptID == "" {
		return types.CommitResponse{
			InscriptionID:        types.FlexString(f.InscriptionID),
			PaymentAddress:       f.PaymentAddress,
			RequiredAmountInSats: types.Sats(f.Amount),
		}, f.FeeRate, nil
	}
	if !do.MustInvoke[config.Config](injector).History.Enabled {
		return types.CommitResponse{}, "", errs.WithUserMessage(errors.Wrap(errs.InvalidState, "history is disabled"), msgHistoryDisabled)
	}
	history, err := do.Invoke[datagateway.HistoryDataGateway](injector)
	if err != nil {
		return types.CommitResponse{}, "", errs.WithUserMessage(errors.WithStack(err), "Attempt history is not available.")
	}
	attempt, err := history.GetAttemptByID(ctx, f.AttemptID)
	if err != nil {
		return types.CommitResponse{}, "", errs.WithUserMessage(errors.WithStack(err), fmt.Sprintf("Attempt %q not found.", f.AttemptID))
	}
	if attempt.Flow != inscription.Flow {
		return types.CommitResponse{}, "", errs.WithUserMessage(
			errors.Wrapf(errs.InvalidArgument, "attempt %s belongs to flow %q", attempt.ID, attempt.Flow),
			fmt.Sprintf("Attempt %q is not an inscription attempt.", f.AttemptID))
	}
	if payable && (attempt.State != orchestrator.StateAwaitingPayment || attempt.Txid != "") {
		return types.CommitResponse{}, "", errs.WithUserMessage(
			errors.Wrapf(errs.InvalidState, "attempt %s is %s, txid %q", attempt.ID, attempt.State, attempt.Txid),
			fmt.Sprintf("Attempt %q is %s and can't be paid again. Run `inscriber status --attempt %s` to check it.", f.AttemptID, attempt.State, f.AttemptID))
	}
	return types.CommitResponse{
		InscriptionID:        types.FlexString(attempt.InscriptionID),
		PaymentAddress:       attempt.PaymentAddress,
		RequiredAmountInSats: types.Sats(attempt.RequiredAmountSats),
	}, attempt.FeeRate, nil
}

// resumeAttempt connects the wallet and adopts the attempt named by flags. Set payable when
// the attempt is about to be paid.
func resumeAttempt(ctx context.Context, injector do.Injector, flags *attemptFlags, payable bool) (*inscription.Inscriber, error) {
	commit, feeRate, err := flags.resolve(ctx, injector, payable)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if _, err := connectWallet(ctx, injector); err != nil {
		return nil, errors.WithStack(err)
	}
	inscriber, err := do.Invoke[*inscription.Inscriber](injector)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if _, err := inscriber.Resume(ctx, commit, feeRate); err != nil {
		return nil, errors.WithStack(err)
	}
	return inscriber, nil
}

type payCmdOptions struct {
	attemptFlags
	Timeout time.Duration
}

func NewPayCommand() *cobra.Command {
	opts := &payCmdOptions{}

	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Pay an inscription commit with the connected wallet and wait for confirmation",
		RunE: func(cmd *cobra.Command, args []string) error {
			return payHandler(opts, cmd, args)
		},
	}

	flags := cmd.Flags()
	opts.register(flags)
	flags.DurationVar(&opts.Timeout, "timeout", 0, "Stop waiting for confirmation after this duration. Zero waits until interrupted")

	return cmd
}

func payHandler(opts *payCmdOptions, cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	injector := newInjector(ctx, config.Load())
	defer shutdown(ctx, injector)

	inscriber, err := resumeAttempt(ctx, injector, &opts.attemptFlags, true)
	if err != nil {
		return errors.WithStack(err)
	}
	defer inscriber.Close(ctx)
	defer inscriber.OnChange(progress[types.InscriptionAttempt](cmd.ErrOrStderr()))()

	printTarget(cmd.OutOrStdout(), inscriber.Snapshot().Target)
	return payAndWait[types.InscriptionAttempt](ctx, cmd.OutOrStdout(), inscriber, opts.Timeout)
}

type statusResult struct {
	Payment     types.PaymentStatus       `json:"payment"`
	Inscription *types.InscriptionDetails `json:"inscription,omitempty"`
}

func NewStatusCommand() *cobra.Command {
	opts := &attemptFlags{}

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check the payment status of an inscription once",
		RunE: func(cmd *cobra.Command, args []string) error {
			return statusHandler(opts, cmd, args)
		},
	}
	opts.register(cmd.Flags())

	return cmd
}

func statusHandler(opts *attemptFlags, cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	injector := newInjector(ctx, config.Load())
	defer shutdown(ctx, injector)

	if opts.FeeRate == "" && opts.AttemptID == "" {
		// the fee rate only matters for paying
		opts.FeeRate = "1"
	}
	inscriber, err := resumeAttempt(ctx, injector, opts, false)
	if err != nil {
		return errors.WithStack(err)
	}
	defer inscriber.Close(ctx)

	var result statusResult
	var g errgroup.Group
	g.Go(func() error {
		status, err := inscriber.CheckPaymentStatus(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		result.Payment = status
		return nil
	})
	g.Go(func() error {
		details, err := inscriber.GetInscriptionDetails(ctx, "")
		if err != nil {
			logger.DebugContext(ctx, "Can't get inscription details for status", slogx.Error(err))
			return nil
		}
		result.Inscription = &details
		return nil
	})
	if err := g.Wait(); err != nil {
		return errors.WithStack(err)
	}
	return printJSON(cmd.OutOrStdout(), result)
}
