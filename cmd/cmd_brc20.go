package cmd

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscriber/core/types"
	"github.com/gaze-network/inscriber/internal/config"
	"github.com/gaze-network/inscriber/modules/brc20"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

type brc20PayOptions struct {
	Pay     bool
	Timeout time.Duration
}

func NewBRC20Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "brc20",
		Short: "Deploy and mint BRC-20 tokens",
	}

	var (
		deployReq  types.DeployRequest
		deployOpts brc20PayOptions
	)
	deploy := &cobra.Command{
		Use:     "deploy",
		Short:   "Deploy a BRC-20 ticker",
		Args:    cobra.NoArgs,
		Example: `inscriber brc20 deploy --ticker ORDI --max-supply 21000000 --amount-per-mint 1000 --destination bc1p... --fee-rate 10`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return brc20Handler(cmd, deployOpts, func(b *brc20.BRC20) (types.BRC20OperationAttempt, error) {
				return b.Deploy(cmd.Context(), deployReq)
			})
		},
	}
	flags := deploy.Flags()
	flags.StringVar(&deployReq.Ticker, "ticker", "", "Four uppercase letters")
	flags.StringVar(&deployReq.MaxSupply, "max-supply", "", "Maximum supply of the token")
	flags.StringVar(&deployReq.AmountPerMint, "amount-per-mint", "", "Amount of tokens per mint")
	flags.StringVar(&deployReq.DestinationAddress, "destination", "", "Address receiving the deploy inscription")
	flags.StringVar(&deployReq.FeeRate, "fee-rate", "", "Fee rate in sats/vbyte, at least 1")
	deployOpts.register(deploy)

	var (
		mintReq  types.MintRequest
		mintOpts brc20PayOptions
	)
	mint := &cobra.Command{
		Use:   "mint",
		Short: "Mint a deployed BRC-20 ticker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return brc20Handler(cmd, mintOpts, func(b *brc20.BRC20) (types.BRC20OperationAttempt, error) {
				return b.Mint(cmd.Context(), mintReq)
			})
		},
	}
	flags = mint.Flags()
	flags.StringVar(&mintReq.Ticker, "ticker", "", "Four uppercase letters")
	flags.StringVar(&mintReq.Amount, "amount", "", "Amount of tokens per mint")
	flags.StringVar(&mintReq.NumberOfMints, "mints", "1", "Number of mints")
	flags.StringVar(&mintReq.FeeRate, "fee-rate", "", "Fee rate in sats/vbyte, at least 1")
	mintOpts.register(mint)

	checkTicker := &cobra.Command{
		Use:   "check-ticker <ticker>",
		Short: "Check whether a ticker is deployed",
		Args:  cobra.ExactArgs(1),
		RunE:  checkTickerHandler,
	}

	cmd.AddCommand(deploy, mint, checkTicker)
	return cmd
}

func (o *brc20PayOptions) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.Pay, "pay", false, "Pay the commit with the connected wallet and wait for confirmation")
	cmd.Flags().DurationVar(&o.Timeout, "timeout", 0, "Stop waiting for confirmation after this duration. Zero waits until interrupted")
}

func brc20Handler(cmd *cobra.Command, opts brc20PayOptions, submit func(*brc20.BRC20) (types.BRC20OperationAttempt, error)) error {
	ctx := cmd.Context()
	injector := newInjector(ctx, config.Load())
	defer shutdown(ctx, injector)

	if _, err := connectWallet(ctx, injector); err != nil {
		return errors.WithStack(err)
	}
	b, err := do.Invoke[*brc20.BRC20](injector)
	if err != nil {
		return errors.WithStack(err)
	}
	defer b.Close(ctx)
	defer b.OnChange(progress[types.BRC20OperationAttempt](cmd.ErrOrStderr()))()

	if _, err := submit(b); err != nil {
		return errors.WithStack(err)
	}
	out := cmd.OutOrStdout()
	printTarget(out, b.Snapshot().Target)
	if !opts.Pay {
		return nil
	}
	return payAndWait[types.BRC20OperationAttempt](ctx, out, b, opts.Timeout)
}

func checkTickerHandler(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	injector := newInjector(ctx, config.Load())
	defer shutdown(ctx, injector)

	b, err := do.Invoke[*brc20.BRC20](injector)
	if err != nil {
		return errors.WithStack(err)
	}
	info, err := b.CheckTicker(ctx, args[0])
	if err != nil {
		return errors.WithStack(err)
	}
	return printJSON(cmd.OutOrStdout(), info)
}
