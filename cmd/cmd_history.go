package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscriber/common/errs"
	"github.com/gaze-network/inscriber/internal/config"
	"github.com/gaze-network/inscriber/modules/brc20"
	"github.com/gaze-network/inscriber/modules/inscription"
	"github.com/gaze-network/inscriber/modules/inscription/datagateway"
	"github.com/samber/do/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type historyCmdOptions struct {
	Flow  string
	Limit int32
	JSON  bool
}

func NewHistoryCommand() *cobra.Command {
	opts := &historyCmdOptions{}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List the latest journaled attempts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return historyHandler(opts, cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Flow, "flow", "", fmt.Sprintf("Only show one flow, `%s` or `%s`", inscription.Flow, brc20.Flow))
	flags.Int32Var(&opts.Limit, "limit", 20, "Maximum number of attempts to show")
	flags.BoolVar(&opts.JSON, "json", false, "Print attempts as JSON")

	return cmd
}

func historyHandler(opts *historyCmdOptions, cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	conf := config.Load()
	if !conf.History.Enabled {
		return errs.WithUserMessage(errors.Wrap(errs.InvalidState, "history is disabled"), msgHistoryDisabled)
	}
	if opts.Flow != "" && !lo.Contains([]string{inscription.Flow, brc20.Flow}, opts.Flow) {
		return errs.NewValidationError(fmt.Sprintf("Unknown flow %q.", opts.Flow))
	}

	injector := newInjector(ctx, conf)
	defer shutdown(ctx, injector)

	history, err := do.Invoke[datagateway.HistoryDataGateway](injector)
	if err != nil {
		return errs.WithUserMessage(errors.WithStack(err), "Can't open the attempt history database.")
	}
	attempts, err := history.GetLatestAttempts(ctx, opts.Flow, opts.Limit)
	if err != nil {
		return errors.WithStack(err)
	}
	if opts.JSON {
		return printJSON(cmd.OutOrStdout(), attempts)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ATTEMPT\tFLOW\tSTATE\tINSCRIPTION\tAMOUNT\tTXID\tUPDATED")
	for _, a := range attempts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			a.ID, a.Flow, a.State, a.InscriptionID, a.RequiredAmountSats,
			lo.Ternary(a.Txid == "", "-", a.Txid), a.UpdatedAt.Format(time.DateTime))
	}
	return errors.WithStack(w.Flush())
}
