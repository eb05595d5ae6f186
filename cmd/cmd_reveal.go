package cmd

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscriber/core/types"
	"github.com/gaze-network/inscriber/internal/config"
	"github.com/gaze-network/inscriber/modules/inscription"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

type revealCreateCmdOptions struct {
	InscriptionID string
	CommitTxID    string
	Vout          uint32
	Amount        int64
}

func NewRevealCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reveal",
		Short: "Build and broadcast reveal transactions",
	}

	createOpts := &revealCreateCmdOptions{}
	create := &cobra.Command{
		Use:   "create",
		Short: "Build the reveal transaction of a paid commit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return revealCreateHandler(createOpts, cmd, args)
		},
	}
	flags := create.Flags()
	flags.StringVar(&createOpts.InscriptionID, "inscription-id", "", "Inscription ID of the commit")
	flags.StringVar(&createOpts.CommitTxID, "commit-txid", "", "Transaction ID of the commit payment")
	flags.Uint32Var(&createOpts.Vout, "vout", 0, "Output index of the commit payment")
	flags.Int64Var(&createOpts.Amount, "amount", 0, "Amount of the commit output in sats")

	var txHex string
	broadcast := &cobra.Command{
		Use:   "broadcast",
		Short: "Broadcast a signed reveal transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return revealBroadcastHandler(txHex, cmd, args)
		},
	}
	broadcast.Flags().StringVar(&txHex, "tx-hex", "", "Reveal transaction in hex")

	cmd.AddCommand(create, broadcast)
	return cmd
}

func revealCreateHandler(opts *revealCreateCmdOptions, cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	injector := newInjector(ctx, config.Load())
	defer shutdown(ctx, injector)

	inscriber, err := do.Invoke[*inscription.Inscriber](injector)
	if err != nil {
		return errors.WithStack(err)
	}
	resp, err := inscriber.CreateReveal(ctx, types.RevealRequest{
		InscriptionID: opts.InscriptionID,
		CommitTxID:    opts.CommitTxID,
		Vout:          opts.Vout,
		Amount:        opts.Amount,
	})
	if err != nil {
		return errors.WithStack(err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), resp.RevealTxHex)
	return nil
}

func revealBroadcastHandler(txHex string, cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	injector := newInjector(ctx, config.Load())
	defer shutdown(ctx, injector)

	inscriber, err := do.Invoke[*inscription.Inscriber](injector)
	if err != nil {
		return errors.WithStack(err)
	}
	resp, err := inscriber.BroadcastReveal(ctx, types.BroadcastRevealRequest{RevealTxHex: txHex})
	if err != nil {
		return errors.WithStack(err)
	}
	return printJSON(cmd.OutOrStdout(), resp)
}
