package cmd

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscriber/internal/config"
	"github.com/gaze-network/inscriber/modules/inscription"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

func NewInscriptionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inscription",
		Short: "Read inscriptions from the inscription API",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "get <inscription-id>",
			Short: "Show one inscription",
			Args:  cobra.ExactArgs(1),
			RunE:  inscriptionGetHandler,
		},
		&cobra.Command{
			Use:   "list",
			Short: "List the inscriptions sent by the connected wallet",
			Args:  cobra.NoArgs,
			RunE:  inscriptionListHandler,
		},
		&cobra.Command{
			Use:   "stats",
			Short: "Show inscription totals",
			Args:  cobra.NoArgs,
			RunE:  inscriptionStatsHandler,
		},
	)
	return cmd
}

func inscriptionGetHandler(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	injector := newInjector(ctx, config.Load())
	defer shutdown(ctx, injector)

	inscriber, err := do.Invoke[*inscription.Inscriber](injector)
	if err != nil {
		return errors.WithStack(err)
	}
	details, err := inscriber.GetInscriptionDetails(ctx, args[0])
	if err != nil {
		return errors.WithStack(err)
	}
	return printJSON(cmd.OutOrStdout(), details)
}

func inscriptionListHandler(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	injector := newInjector(ctx, config.Load())
	defer shutdown(ctx, injector)

	if _, err := connectWallet(ctx, injector); err != nil {
		return errors.WithStack(err)
	}
	inscriber, err := do.Invoke[*inscription.Inscriber](injector)
	if err != nil {
		return errors.WithStack(err)
	}
	list, err := inscriber.FetchWalletInscriptions(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	return printJSON(cmd.OutOrStdout(), list)
}

func inscriptionStatsHandler(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	injector := newInjector(ctx, config.Load())
	defer shutdown(ctx, injector)

	inscriber, err := do.Invoke[*inscription.Inscriber](injector)
	if err != nil {
		return errors.WithStack(err)
	}
	stats, err := inscriber.FetchStats(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	return printJSON(cmd.OutOrStdout(), stats)
}
