package orchestrator

import (
	"context"
	"time"

	"github.com/gaze-network/inscriber/pkg/logger"
	"github.com/gaze-network/inscriber/pkg/logger/slogx"
)

// Record is one journaled state change of an attempt. Seq and At come from the snapshot, so
// records delivered out of order can still be ordered.
type Record struct {
	AttemptID          string
	Flow               string
	Generation         uint64
	Seq                uint64
	State              State
	InscriptionID      string
	PaymentAddress     string
	RequiredAmountSats int64
	FeeRate            string
	SenderAddress      string
	Txid               string
	ErrMessage         string
	At                 time.Time
}

// Recorder journals attempt state changes. A failing recorder never affects the flow.
type Recorder interface {
	Record(ctx context.Context, rec Record) error
}

func (o *Orchestrator[T]) record(ctx context.Context, snap Snapshot[T]) {
	if o.cfg.Recorder == nil || snap.AttemptID == "" {
		return
	}
	rec := Record{
		AttemptID:          snap.AttemptID,
		Flow:               o.cfg.Flow,
		Generation:         snap.Generation,
		Seq:                snap.Seq,
		State:              snap.State,
		InscriptionID:      snap.Target.InscriptionID,
		PaymentAddress:     snap.Target.PaymentAddress,
		RequiredAmountSats: snap.Target.RequiredAmountSats,
		FeeRate:            snap.Target.FeeRate.String(),
		SenderAddress:      snap.Target.SenderAddress,
		ErrMessage:         snap.ErrMessage,
		At:                 snap.At,
	}
	if snap.Payment != nil {
		rec.Txid = snap.Payment.Txid
	}
	if err := o.cfg.Recorder.Record(ctx, rec); err != nil {
		logger.WarnContext(ctx, "Can't record attempt", slogx.String("flow", o.cfg.Flow), slogx.Error(err))
	}
}
