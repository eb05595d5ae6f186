package cmd

import (
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscriber/common/errs"
	"github.com/gaze-network/inscriber/internal/config"
	"github.com/gaze-network/inscriber/pkg/inscriptionapi"
	"github.com/gaze-network/inscriber/pkg/jwtutils"
	"github.com/gaze-network/inscriber/pkg/session"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

func NewWalletCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Manage the wallet that pays commits",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "connect",
		Short: "Connect the configured wallet and print its address",
		Args:  cobra.NoArgs,
		RunE:  walletConnectHandler,
	})
	return cmd
}

func walletConnectHandler(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	injector := newInjector(ctx, config.Load())
	defer shutdown(ctx, injector)

	w, err := connectWallet(ctx, injector)
	if err != nil {
		return errors.WithStack(err)
	}
	address, _ := w.Address()
	fmt.Fprintln(cmd.OutOrStdout(), address)
	return nil
}

func NewTokenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage the inscription API bearer token",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "refresh",
			Short: "Exchange the current token for a new one",
			Args:  cobra.NoArgs,
			RunE:  tokenRefreshHandler,
		},
		&cobra.Command{
			Use:   "show",
			Short: "Show when the current token expires",
			Args:  cobra.NoArgs,
			RunE:  tokenShowHandler,
		},
	)
	return cmd
}

func tokenRefreshHandler(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	conf := config.Load()
	injector := newInjector(ctx, conf)
	defer shutdown(ctx, injector)

	client, err := do.Invoke[*inscriptionapi.Client](injector)
	if err != nil {
		return errors.WithStack(err)
	}
	sess := do.MustInvoke[*session.Session](injector)

	token, err := client.RefreshToken(ctx)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return errs.WithUserMessage(err, "No new token returned.")
		}
		return errs.WithUserMessage(errors.WithStack(err), errs.UserMessage(err, "Failed to refresh token."))
	}
	if err := sess.SetToken(token); err != nil {
		return errors.Wrap(err, "can't store refreshed token")
	}
	if conf.Auth.TokenFile == "" {
		// nothing persists the token, hand it to the user
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Token refreshed and saved to %s\n", conf.Auth.TokenFile)
	return nil
}

func tokenShowHandler(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	injector := newInjector(ctx, config.Load())
	defer shutdown(ctx, injector)

	sess, err := do.Invoke[*session.Session](injector)
	if err != nil {
		return errors.WithStack(err)
	}
	out := cmd.OutOrStdout()
	token, ok := sess.Token()
	if !ok {
		fmt.Fprintln(out, "No token configured.")
		return nil
	}
	expiresAt, ok, err := jwtutils.ExpiresAt(token)
	switch {
	case err != nil:
		fmt.Fprintln(out, "Token can't be decoded and won't be sent.")
	case !ok:
		fmt.Fprintln(out, "Token never expires.")
	case !expiresAt.After(time.Now()):
		fmt.Fprintf(out, "Token expired at %s and won't be sent.\n", expiresAt.Format(time.RFC3339))
	default:
		fmt.Fprintf(out, "Token expires at %s.\n", expiresAt.Format(time.RFC3339))
	}
	return nil
}
