package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscriber/core/orchestrator"
	"github.com/gaze-network/inscriber/pkg/btcutils"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.WithStack(enc.Encode(v))
}

// printTarget shows what the wallet is about to pay.
func printTarget(w io.Writer, target orchestrator.Target) {
	fmt.Fprintf(w, "Inscription ID:   %s\n", target.InscriptionID)
	fmt.Fprintf(w, "Payment address:  %s\n", target.PaymentAddress)
	fmt.Fprintf(w, "Required amount:  %d sats (%s BTC)\n", target.RequiredAmountSats, btcutils.SatoshiToBitcoin(target.RequiredAmountSats).String())
	fmt.Fprintf(w, "Fee rate:         %s sats/vbyte\n", target.FeeRate.String())
}

// progress prints every state change until unsubscribed.
func progress[T any](w io.Writer) func(orchestrator.Snapshot[T]) {
	var (
		mu      sync.Mutex
		lastSeq uint64
		last    orchestrator.State
	)
	return func(snap orchestrator.Snapshot[T]) {
		mu.Lock()
		defer mu.Unlock()
		if snap.Seq <= lastSeq || snap.State == last {
			return
		}
		lastSeq, last = snap.Seq, snap.State
		switch {
		case snap.State == orchestrator.StatePolling && snap.Payment != nil:
			fmt.Fprintf(w, "Payment sent (txid %s), waiting for confirmation...\n", snap.Payment.Txid)
		case snap.State == orchestrator.StateConfirmed:
			fmt.Fprintln(w, "Payment confirmed.")
		case snap.State == orchestrator.StateError:
			fmt.Fprintf(w, "Failed: %s\n", snap.ErrMessage)
		default:
			fmt.Fprintf(w, "State: %s\n", snap.State)
		}
	}
}
