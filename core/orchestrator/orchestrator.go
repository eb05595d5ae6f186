// Package orchestrator is the state machine shared by the inscription and BRC-20 flows:
// submit an operation, pay its commit address with the wallet, then poll the payment
// status until it is confirmed.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscriber/common/errs"
	"github.com/gaze-network/inscriber/core/poller"
	"github.com/gaze-network/inscriber/core/types"
	"github.com/gaze-network/inscriber/pkg/btcutils"
	"github.com/gaze-network/inscriber/pkg/logger"
	"github.com/gaze-network/inscriber/pkg/logger/slogx"
	"github.com/gaze-network/inscriber/pkg/metrics"
	"github.com/gaze-network/inscriber/pkg/wallet"
	"github.com/google/uuid"
)

var (
	ErrBusy       = errs.NewPublicErrorKind(errs.Busy, "Operation already in progress.")
	ErrClosed     = errs.NewPublicErrorKind(errs.InvalidState, "Session is closed.")
	ErrSuperseded = errors.Wrap(errs.InvalidState, "attempt was superseded")
)

// StatusFetcher looks up the payment status of an attempt.
type StatusFetcher interface {
	PaymentStatus(ctx context.Context, req types.PaymentStatusRequest) (types.PaymentStatus, error)
}

// Target is what the wallet pays and what the poller asks about.
type Target struct {
	InscriptionID      string
	PaymentAddress     string
	RequiredAmountSats int64
	SenderAddress      string
	FeeRate            btcutils.FeeRate
}

// Messages are the user-facing texts of the shared steps.
type Messages struct {
	NoAttempt           string
	PayWalletRequired   string
	PayInvalidFeeRate   string
	CheckWalletRequired string
	StatusFailed        string
}

type Config struct {
	// Flow names the flow in logs and metrics.
	Flow         string
	PollInterval time.Duration
	Wallet       *wallet.Session
	Status       StatusFetcher
	Recorder     Recorder
	Messages     Messages
}

// Snapshot is a copy of the orchestrator state.
type Snapshot[T any] struct {
	Seq        uint64
	Generation uint64
	AttemptID  string
	State      State
	Attempt    T
	HasAttempt bool
	Target     Target
	Payment    *types.PaymentStatus
	Err        error
	ErrMessage string
	Busy       map[Operation]bool
	// At is when the snapshot was taken.
	At time.Time
}

type Orchestrator[T any] struct {
	cfg Config

	// ctx outlives single calls; the poller runs under it
	ctx    context.Context
	cancel context.CancelFunc

	mu         sync.Mutex
	closed     bool
	seq        uint64
	generation uint64
	attemptID  string
	state      State
	attempt    T
	hasAttempt bool
	target     Target
	payment    *types.PaymentStatus
	err        error
	errMessage string
	busy       map[Operation]bool
	poll       *poller.Handle

	listenersMu sync.RWMutex
	listeners   map[int]func(Snapshot[T])
	nextID      int
}

func New[T any](cfg Config) *Orchestrator[T] {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = poller.DefaultInterval
	}
	if cfg.Wallet == nil {
		cfg.Wallet = wallet.NewSession(nil)
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Orchestrator[T]{
		cfg:       cfg,
		ctx:       ctx,
		cancel:    cancel,
		state:     StateIdle,
		busy:      make(map[Operation]bool),
		listeners: make(map[int]func(Snapshot[T])),
	}
}

// OnChange registers fn to be called with a snapshot after every change.
// Snapshots may arrive out of order; compare Seq. The returned func unregisters fn.
func (o *Orchestrator[T]) OnChange(fn func(Snapshot[T])) (unsubscribe func()) {
	o.listenersMu.Lock()
	id := o.nextID
	o.nextID++
	o.listeners[id] = fn
	o.listenersMu.Unlock()
	return func() {
		o.listenersMu.Lock()
		delete(o.listeners, id)
		o.listenersMu.Unlock()
	}
}

func (o *Orchestrator[T]) Snapshot() Snapshot[T] {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.snapshotLocked()
}

func (o *Orchestrator[T]) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Submit starts a new attempt. create runs without the lock held; its error becomes
// the attempt error, shown with fallback when it carries no user message.
// A previous attempt is superseded and its poller stopped.
func (o *Orchestrator[T]) Submit(ctx context.Context, create func(ctx context.Context) (T, Target, error), fallback string) (T, error) {
	var zero T

	o.mu.Lock()
	if err := o.beginLocked(OpSubmit); err != nil {
		o.mu.Unlock()
		return zero, errors.WithStack(err)
	}
	if o.state == StatePaying {
		o.busy[OpSubmit] = false
		o.mu.Unlock()
		return zero, errs.NewPublicErrorKind(errs.InvalidState, "A payment is in progress.")
	}
	o.stopPollLocked()
	o.generation++
	gen := o.generation
	o.resetLocked()
	o.attemptID = uuid.NewString()
	o.setStateLocked(StateSubmitting)
	snap := o.snapshotLocked()
	o.mu.Unlock()
	o.emit(ctx, snap)

	result, target, err := create(ctx)

	o.mu.Lock()
	o.busy[OpSubmit] = false
	if gen != o.generation {
		o.mu.Unlock()
		return zero, errors.WithStack(ErrSuperseded)
	}
	if err != nil {
		o.failLocked(err, errs.UserMessage(err, fallback))
		snap = o.snapshotLocked()
		o.mu.Unlock()
		logger.WarnContext(ctx, "Submit failed", slogx.String("flow", o.cfg.Flow), slogx.Error(err))
		o.emit(ctx, snap)
		return zero, errs.WithUserMessage(err, snap.ErrMessage)
	}
	o.attempt = result
	o.hasAttempt = true
	o.target = target
	o.setStateLocked(StateAwaitingPayment)
	snap = o.snapshotLocked()
	o.mu.Unlock()

	logger.InfoContext(ctx, "Awaiting payment",
		slogx.String("flow", o.cfg.Flow),
		slogx.String("inscription_id", target.InscriptionID),
		slogx.String("payment_address", target.PaymentAddress),
		slogx.Sats("required_amount_sats", target.RequiredAmountSats),
		slogx.Stringer("fee_rate", target.FeeRate),
	)
	o.emit(ctx, snap)
	return result, nil
}

// PayNow pays the active attempt with the connected wallet and starts polling.
func (o *Orchestrator[T]) PayNow(ctx context.Context) (string, error) {
	o.mu.Lock()
	if err := o.beginLocked(OpPay); err != nil {
		o.mu.Unlock()
		return "", errors.WithStack(err)
	}
	release := func() { o.busy[OpPay] = false }
	if o.state != StateAwaitingPayment || !o.hasAttempt {
		release()
		o.mu.Unlock()
		return "", errs.NewPublicErrorKind(errs.InvalidState, o.cfg.Messages.NoAttempt)
	}
	sender, ok := o.cfg.Wallet.Address()
	if !ok {
		release()
		o.mu.Unlock()
		return "", errs.NewValidationError(o.cfg.Messages.PayWalletRequired)
	}
	if !o.target.FeeRate.Valid() {
		release()
		o.mu.Unlock()
		return "", errs.NewValidationError(o.cfg.Messages.PayInvalidFeeRate)
	}
	if o.target.SenderAddress == "" {
		o.target.SenderAddress = sender
	}
	target := o.target
	gen := o.generation
	o.setStateLocked(StatePaying)
	snap := o.snapshotLocked()
	o.mu.Unlock()
	o.emit(ctx, snap)

	txid, err := o.cfg.Wallet.Wallet().SendBitcoin(ctx, target.PaymentAddress, target.RequiredAmountSats, wallet.SendOptions{
		FeeRate: target.FeeRate.Decimal(),
	})

	o.mu.Lock()
	release()
	if gen != o.generation {
		o.mu.Unlock()
		logger.WarnContext(ctx, "Payment finished after the attempt was closed", slogx.String("txid", txid), slogx.Error(err))
		return txid, errors.WithStack(ErrSuperseded)
	}
	if err != nil {
		msg := fmt.Sprintf("Failed to send payment with fee rate %s sats/vbyte: %s. The fee rate may be too low for current network conditions. Try a higher fee rate.",
			target.FeeRate.Decimal().String(), errs.UserMessage(err, err.Error()))
		o.failLocked(err, msg)
		snap = o.snapshotLocked()
		o.mu.Unlock()
		logger.ErrorContext(ctx, "Payment failed",
			slogx.String("flow", o.cfg.Flow),
			slogx.Stringer("fee_rate", target.FeeRate),
			slogx.Error(err),
		)
		o.emit(ctx, snap)
		return "", errs.WithUserMessage(err, msg)
	}
	o.payment = &types.PaymentStatus{Txid: txid, IsPaid: false}
	o.setStateLocked(StatePolling)
	o.poll = poller.Start(logger.NewContext(o.ctx, logger.FromContext(ctx)), o.cfg.PollInterval, o.tick(gen))
	snap = o.snapshotLocked()
	o.mu.Unlock()

	logger.InfoContext(ctx, "Payment sent",
		slogx.String("flow", o.cfg.Flow),
		slogx.String("txid", txid),
		slogx.Stringer("fee_rate", target.FeeRate),
	)
	o.emit(ctx, snap)
	o.describeTransaction(ctx, txid)
	return txid, nil
}

// describeTransaction logs wallet details of txid. Failures are logged only.
func (o *Orchestrator[T]) describeTransaction(ctx context.Context, txid string) {
	getter, ok := o.cfg.Wallet.Wallet().(wallet.TransactionGetter)
	if !ok {
		return
	}
	details, err := getter.GetTransaction(ctx, txid)
	if err != nil {
		logger.WarnContext(ctx, "Could not fetch transaction details", slogx.String("txid", txid), slogx.Error(err))
		return
	}
	logger.DebugContext(ctx, "Transaction details", slogx.String("txid", txid), slogx.Any("details", details))
}

// tick returns the poll function of generation gen.
func (o *Orchestrator[T]) tick(gen uint64) poller.TickFunc {
	return func(ctx context.Context) bool {
		o.mu.Lock()
		if gen != o.generation || o.state != StatePolling {
			o.mu.Unlock()
			return true
		}
		req := o.statusRequestLocked(o.target.SenderAddress)
		o.mu.Unlock()

		status, err := o.cfg.Status.PaymentStatus(ctx, req)

		o.mu.Lock()
		if gen != o.generation || o.state != StatePolling {
			o.mu.Unlock()
			return true
		}
		if err != nil {
			if ctx.Err() != nil {
				o.mu.Unlock()
				return true
			}
			o.poll = nil
			o.failLocked(err, errs.UserMessage(err, o.cfg.Messages.StatusFailed))
			snap := o.snapshotLocked()
			o.mu.Unlock()
			metrics.PollTicks.WithLabelValues(o.cfg.Flow, "error").Inc()
			logger.ErrorContext(ctx, "Payment status polling failed, polling stopped", slogx.String("flow", o.cfg.Flow), slogx.Error(err))
			o.emit(ctx, snap)
			return true
		}
		done := o.applyStatusLocked(status)
		if done {
			o.poll = nil
		}
		snap := o.snapshotLocked()
		o.mu.Unlock()

		result := "pending"
		if done {
			result = "confirmed"
			logger.InfoContext(ctx, "Payment confirmed", slogx.String("flow", o.cfg.Flow), slogx.String("inscription_id", req.ID))
		}
		metrics.PollTicks.WithLabelValues(o.cfg.Flow, result).Inc()
		o.emit(ctx, snap)
		return done
	}
}

// CheckPaymentStatus fetches the payment status once, without touching the poll timer.
// Errors are returned and leave the state unchanged.
func (o *Orchestrator[T]) CheckPaymentStatus(ctx context.Context) (types.PaymentStatus, error) {
	o.mu.Lock()
	if err := o.beginLocked(OpCheck); err != nil {
		o.mu.Unlock()
		return types.PaymentStatus{}, errors.WithStack(err)
	}
	release := func() { o.busy[OpCheck] = false }
	if !o.hasAttempt || (o.state != StateAwaitingPayment && o.state != StatePolling) {
		release()
		o.mu.Unlock()
		return types.PaymentStatus{}, errs.NewPublicErrorKind(errs.InvalidState, o.cfg.Messages.NoAttempt)
	}
	sender, ok := o.cfg.Wallet.Address()
	if !ok {
		release()
		o.mu.Unlock()
		return types.PaymentStatus{}, errs.NewValidationError(o.cfg.Messages.CheckWalletRequired)
	}
	req := o.statusRequestLocked(sender)
	gen := o.generation
	o.mu.Unlock()

	status, err := o.cfg.Status.PaymentStatus(ctx, req)

	o.mu.Lock()
	release()
	if err != nil {
		o.mu.Unlock()
		logger.WarnContext(ctx, "Payment status check failed", slogx.String("flow", o.cfg.Flow), slogx.Error(err))
		return types.PaymentStatus{}, errs.WithUserMessage(err, errs.UserMessage(err, o.cfg.Messages.StatusFailed))
	}
	if gen != o.generation || (o.state != StateAwaitingPayment && o.state != StatePolling) {
		o.mu.Unlock()
		return status, nil
	}
	if o.applyStatusLocked(status) {
		o.stopPollLocked()
	}
	snap := o.snapshotLocked()
	o.mu.Unlock()
	o.emit(ctx, snap)
	return status, nil
}

// Cancel abandons the active attempt and returns to idle. It is refused while a payment is in flight.
func (o *Orchestrator[T]) Cancel(ctx context.Context) error {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return errors.WithStack(ErrClosed)
	}
	if o.state == StatePaying {
		o.mu.Unlock()
		return errs.NewPublicErrorKind(errs.InvalidState, "A payment is in progress.")
	}
	o.stopPollLocked()
	o.generation++
	o.resetLocked()
	o.setStateLocked(StateIdle)
	snap := o.snapshotLocked()
	o.mu.Unlock()

	logger.InfoContext(ctx, "Attempt cancelled", slogx.String("flow", o.cfg.Flow))
	o.emit(ctx, snap)
	return nil
}

// Close stops polling and waits for the poller to exit. The orchestrator can't be used afterwards.
func (o *Orchestrator[T]) Close(ctx context.Context) error {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return nil
	}
	o.closed = true
	h := o.poll
	o.stopPollLocked()
	o.generation++
	o.cancel()
	o.mu.Unlock()

	return errors.WithStack(h.Wait(ctx))
}

func (o *Orchestrator[T]) beginLocked(op Operation) error {
	if o.closed {
		return ErrClosed
	}
	if o.busy[op] {
		return ErrBusy
	}
	o.busy[op] = true
	return nil
}

func (o *Orchestrator[T]) statusRequestLocked(sender string) types.PaymentStatusRequest {
	return types.PaymentStatusRequest{
		PaymentAddress:       o.target.PaymentAddress,
		RequiredAmountInSats: o.target.RequiredAmountSats,
		SenderAddress:        sender,
		ID:                   o.target.InscriptionID,
	}
}

// applyStatusLocked stores status and reports whether it is terminal.
func (o *Orchestrator[T]) applyStatusLocked(status types.PaymentStatus) bool {
	if status.Txid == "" && o.payment != nil {
		status.Txid = o.payment.Txid
	}
	o.payment = &status
	if status.IsConfirmed() {
		o.setStateLocked(StateConfirmed)
		return true
	}
	o.seq++
	return false
}

func (o *Orchestrator[T]) stopPollLocked() {
	if o.poll != nil {
		o.poll.Stop()
		o.poll = nil
	}
}

func (o *Orchestrator[T]) resetLocked() {
	var zero T
	o.attempt = zero
	o.attemptID = ""
	o.hasAttempt = false
	o.target = Target{}
	o.payment = nil
	o.err = nil
	o.errMessage = ""
}

func (o *Orchestrator[T]) failLocked(err error, message string) {
	o.err = err
	o.errMessage = message
	o.setStateLocked(StateError)
}

func (o *Orchestrator[T]) setStateLocked(to State) {
	if o.state != to && !o.state.CanTransition(to) {
		logger.Warn("Unexpected state transition",
			slog.String("flow", o.cfg.Flow),
			slog.String("from", o.state.String()),
			slog.String("to", to.String()),
		)
	}
	o.state = to
	o.seq++
	metrics.StateTransitions.WithLabelValues(o.cfg.Flow, to.String()).Inc()
}

func (o *Orchestrator[T]) snapshotLocked() Snapshot[T] {
	snap := Snapshot[T]{
		Seq:        o.seq,
		Generation: o.generation,
		AttemptID:  o.attemptID,
		State:      o.state,
		Attempt:    o.attempt,
		HasAttempt: o.hasAttempt,
		Target:     o.target,
		Err:        o.err,
		ErrMessage: o.errMessage,
		Busy:       make(map[Operation]bool, len(o.busy)),
		At:         time.Now(),
	}
	if o.payment != nil {
		p := *o.payment
		snap.Payment = &p
	}
	for op, busy := range o.busy {
		if busy {
			snap.Busy[op] = true
		}
	}
	return snap
}

func (o *Orchestrator[T]) emit(ctx context.Context, snap Snapshot[T]) {
	o.listenersMu.RLock()
	listeners := make([]func(Snapshot[T]), 0, len(o.listeners))
	for _, fn := range o.listeners {
		listeners = append(listeners, fn)
	}
	o.listenersMu.RUnlock()

	for _, fn := range listeners {
		fn(snap)
	}
	o.record(ctx, snap)
}

// Wait blocks until the attempt is confirmed, failed or dropped, or until ctx is done.
func (o *Orchestrator[T]) Wait(ctx context.Context) (Snapshot[T], error) {
	changed := make(chan struct{}, 1)
	unsubscribe := o.OnChange(func(Snapshot[T]) {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	for {
		snap := o.Snapshot()
		if snap.State.IsTerminal() || snap.State == StateIdle {
			return snap, nil
		}
		select {
		case <-ctx.Done():
			return snap, errors.WithStack(ctx.Err())
		case <-o.ctx.Done():
			return o.Snapshot(), nil
		case <-changed:
		}
	}
}
