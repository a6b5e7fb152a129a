// Package intake implements the guided order intake workflow. The workflow
// walks one operator session through the field-collection sequence, runs each
// raw input through the validation library, and finalizes the completed draft
// through the order registration command.
package intake

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"receipts/internal/core/application/usecases/commands"
	"receipts/internal/core/domain/model/intake"
	"receipts/internal/core/domain/model/kernel"
	"receipts/internal/core/ports"
	"receipts/internal/pkg/errs"
	"receipts/internal/pkg/validate"
)

// Field length caps applied before storage. Length guards only; injection
// safety is the store's parameterized-query contract.
const (
	MaxNameLength          = 200
	MaxProductLength       = 300
	MaxTransactionIDLength = 100
)

var (
	// ErrAccessDenied is returned when a configured operator restriction is in
	// place and another actor attempts a workflow action.
	ErrAccessDenied = errors.New("access denied: actor is not the configured operator")
)

// Outcome classifies the result of one workflow interaction.
type Outcome string

const (
	// OutcomeAdvance means the input was accepted and the session moved to the
	// next step.
	OutcomeAdvance Outcome = "advance"

	// OutcomeReprompt means the input was rejected; the session did not move.
	OutcomeReprompt Outcome = "reprompt"

	// OutcomeFinalized means the draft was stored and the session destroyed.
	OutcomeFinalized Outcome = "finalized"

	// OutcomeFinalizeFailed means the store write failed; the session stays at
	// the date step so the operator can retry without re-entering fields.
	OutcomeFinalizeFailed Outcome = "finalize_failed"

	// OutcomeCancelled means the session was discarded without persisting
	// anything.
	OutcomeCancelled Outcome = "cancelled"
)

// StepResult describes the workflow's reaction to one operator input.
// Prompt is set for advance and reprompt outcomes, Reason for reprompt and
// finalize_failed, OrderID for finalized.
type StepResult struct {
	Outcome Outcome
	Prompt  string
	Reason  string
	OrderID string
}

// Workflow drives intake sessions. Actions for one actor are serialized
// internally, so concurrent requests never mutate the same session at once;
// independent actors proceed in parallel.
type Workflow struct {
	sessions   ports.SessionStore
	orders     ports.OrderRepository
	register   commands.RegisterOrderCommandHandler
	operatorID string
	logger     *slog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewWorkflow creates the intake workflow service. An empty operatorID
// disables the access restriction.
func NewWorkflow(
	sessions ports.SessionStore,
	orders ports.OrderRepository,
	register commands.RegisterOrderCommandHandler,
	operatorID string,
	logger *slog.Logger,
) *Workflow {
	return &Workflow{
		sessions:   sessions,
		orders:     orders,
		register:   register,
		operatorID: operatorID,
		logger:     logger,
		locks:      make(map[string]*sync.Mutex),
	}
}

// Begin starts a fresh intake session for the actor and returns the first
// prompt. An in-progress session for the same actor is replaced; the
// abandoned step is logged so the discard is visible.
func (w *Workflow) Begin(_ context.Context, actorID string) (string, error) {
	if err := w.authorize(actorID); err != nil {
		return "", err
	}

	lock := w.actorLock(actorID)
	lock.Lock()
	defer lock.Unlock()

	if existing, ok := w.sessions.Get(actorID); ok {
		w.logger.Warn("replacing in-progress intake session",
			"actorId", actorID,
			"abandonedStep", existing.CurrentStep().String())
	}

	session, err := intake.NewSession(actorID, time.Now())
	if err != nil {
		return "", err
	}

	w.sessions.Put(session)
	return session.CurrentStep().Prompt(), nil
}

// Submit feeds one raw operator input to the actor's session. Validation
// rejections come back as reprompt results, never as errors; errors are
// reserved for access denial, a missing session, and store failures outside
// finalization.
func (w *Workflow) Submit(ctx context.Context, actorID, rawText string) (StepResult, error) {
	if err := w.authorize(actorID); err != nil {
		return StepResult{}, err
	}

	lock := w.actorLock(actorID)
	lock.Lock()
	defer lock.Unlock()

	session, ok := w.sessions.Get(actorID)
	if !ok {
		return StepResult{}, errs.NewObjectNotFoundError("session", actorID)
	}

	text := strings.TrimSpace(rawText)
	now := time.Now()

	switch session.CurrentStep() {
	case intake.AwaitingID:
		return w.submitID(ctx, session, text, now)
	case intake.AwaitingTaxID:
		return w.submitTaxID(session, text, now)
	case intake.AwaitingName:
		return w.submitName(session, text, now)
	case intake.AwaitingProduct:
		return w.submitProduct(session, text, now)
	case intake.AwaitingGrossValue:
		return w.submitGrossValue(session, text, now)
	case intake.AwaitingDiscount:
		return w.submitDiscount(session, text, now)
	case intake.AwaitingTransactionID:
		return w.submitTransactionID(session, text, now)
	case intake.AwaitingDate:
		return w.submitDate(ctx, session, text, now)
	default:
		return StepResult{}, errs.NewValueIsInvalidError("currentStep")
	}
}

// Cancel discards the actor's session without persisting anything. Cancelling
// an actor with no session fails with errs.ErrObjectNotFound.
func (w *Workflow) Cancel(_ context.Context, actorID string) (StepResult, error) {
	if err := w.authorize(actorID); err != nil {
		return StepResult{}, err
	}

	lock := w.actorLock(actorID)
	lock.Lock()
	defer lock.Unlock()

	if _, ok := w.sessions.Get(actorID); !ok {
		return StepResult{}, errs.NewObjectNotFoundError("session", actorID)
	}

	w.sessions.Delete(actorID)
	w.logger.Info("intake session cancelled", "actorId", actorID)
	return StepResult{Outcome: OutcomeCancelled}, nil
}

func (w *Workflow) authorize(actorID string) error {
	if w.operatorID != "" && actorID != w.operatorID {
		return ErrAccessDenied
	}
	return nil
}

// actorLock returns the mutex serializing workflow actions for one actor.
// The lock is held across the whole action: the session pointer handed out by
// the store is shared, so the read-mutate-put sequence must not interleave.
func (w *Workflow) actorLock(actorID string) *sync.Mutex {
	w.mu.Lock()
	defer w.mu.Unlock()

	lock, ok := w.locks[actorID]
	if !ok {
		lock = &sync.Mutex{}
		w.locks[actorID] = lock
	}
	return lock
}

func (w *Workflow) submitID(
	ctx context.Context, session *intake.Session, text string, now time.Time,
) (StepResult, error) {
	var id kernel.OrderID
	if isKeyword(text, "generate", "gerar") {
		id = kernel.GenerateOrderID()
	} else {
		parsed, err := kernel.NewOrderID(text)
		if err != nil {
			return w.reprompt(session, "the order ID cannot be empty or longer than 64 characters"), nil
		}
		id = parsed
	}

	exists, err := w.orders.Exists(ctx, id)
	if err != nil {
		return StepResult{}, err
	}
	if exists {
		return w.reprompt(session, "an order with this ID already exists, choose another"), nil
	}

	return w.accept(session, session.AcceptID(id, now))
}

func (w *Workflow) submitTaxID(session *intake.Session, text string, now time.Time) (StepResult, error) {
	taxID := ""
	if !isKeyword(text, "skip", "pular") {
		taxID = validate.DigitsOnly(text)
		if len(taxID) != validate.TaxIDLength {
			return w.reprompt(session, "the tax ID must contain exactly 11 digits"), nil
		}
	}

	return w.accept(session, session.AcceptTaxID(taxID, now))
}

func (w *Workflow) submitName(session *intake.Session, text string, now time.Time) (StepResult, error) {
	name := validate.Sanitize(text, MaxNameLength)
	if len([]rune(name)) < 3 {
		return w.reprompt(session, "the name must be at least 3 characters long"), nil
	}

	return w.accept(session, session.AcceptCustomerName(name, now))
}

func (w *Workflow) submitProduct(session *intake.Session, text string, now time.Time) (StepResult, error) {
	product := validate.Sanitize(text, MaxProductLength)
	if len([]rune(product)) < 3 {
		return w.reprompt(session, "the product description must be at least 3 characters long"), nil
	}

	return w.accept(session, session.AcceptProductDescription(product, now))
}

func (w *Workflow) submitGrossValue(session *intake.Session, text string, now time.Time) (StepResult, error) {
	amount, ok := validate.ParseAmount(text)
	if !ok {
		return w.reprompt(session, "could not read the value, use formats like 89.90 or 89,90"), nil
	}

	grossValue, err := kernel.NewMoney(amount)
	if err != nil {
		return w.reprompt(session, "the value cannot be negative"), nil
	}

	return w.accept(session, session.AcceptGrossValue(grossValue, now))
}

func (w *Workflow) submitDiscount(session *intake.Session, text string, now time.Time) (StepResult, error) {
	amount, ok := validate.ParseAmount(text)
	if !ok {
		return w.reprompt(session, "could not read the value, use formats like 8.99 or 8,99"), nil
	}

	discount, err := kernel.NewMoney(amount)
	if err != nil {
		return w.reprompt(session, "the discount cannot be negative"), nil
	}

	if err = session.AcceptDiscount(discount, now); err != nil {
		if errors.Is(err, errs.ErrValueIsOutOfRange) {
			return w.reprompt(session, "the discount cannot exceed the gross value"), nil
		}
		return StepResult{}, err
	}

	w.sessions.Put(session)
	return w.advanced(session), nil
}

func (w *Workflow) submitTransactionID(session *intake.Session, text string, now time.Time) (StepResult, error) {
	transactionID := ""
	if !isKeyword(text, "skip", "pular") {
		transactionID = validate.Sanitize(text, MaxTransactionIDLength)
	}

	return w.accept(session, session.AcceptTransactionID(transactionID, now))
}

func (w *Workflow) submitDate(
	ctx context.Context, session *intake.Session, text string, now time.Time,
) (StepResult, error) {
	createdAt, ok := validate.ParseDate(text)
	if !ok {
		return w.reprompt(session, `could not read the date, use DD/MM/YYYY HH:MM:SS or "now"`), nil
	}

	if err := session.AcceptDate(createdAt, now); err != nil {
		return StepResult{}, err
	}
	w.sessions.Put(session)

	return w.finalize(ctx, session)
}

// finalize writes the completed draft through the registration command. The
// session is destroyed only on confirmed success; on failure it stays at the
// date step so the operator resubmits the date instead of starting over.
func (w *Workflow) finalize(ctx context.Context, session *intake.Session) (StepResult, error) {
	draft := session.Draft()

	cmd, err := commands.NewRegisterOrderCommand(
		draft.ID,
		draft.TaxID,
		draft.CustomerName,
		draft.ProductDescription,
		draft.GrossValue,
		draft.Discount,
		draft.TransactionID,
		draft.CreatedAt,
	)
	if err != nil {
		return StepResult{}, err
	}

	if err = w.register.Handle(ctx, cmd); err != nil {
		reason := "could not store the order, send the date again to retry"
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			reason = "an order with this ID was stored in the meantime, cancel and start over"
		}

		w.logger.Error("order finalization failed",
			"actorId", session.ActorID(),
			"orderId", draft.ID.String(),
			"error", err)

		return StepResult{Outcome: OutcomeFinalizeFailed, Reason: reason}, nil
	}

	w.sessions.Delete(session.ActorID())
	w.logger.Info("order registered",
		"actorId", session.ActorID(),
		"orderId", draft.ID.String())

	return StepResult{Outcome: OutcomeFinalized, OrderID: draft.ID.String()}, nil
}

func (w *Workflow) accept(session *intake.Session, err error) (StepResult, error) {
	if err != nil {
		return StepResult{}, err
	}

	w.sessions.Put(session)
	return w.advanced(session), nil
}

func (w *Workflow) advanced(session *intake.Session) StepResult {
	return StepResult{
		Outcome: OutcomeAdvance,
		Prompt:  session.CurrentStep().Prompt(),
	}
}

func (w *Workflow) reprompt(session *intake.Session, reason string) StepResult {
	return StepResult{
		Outcome: OutcomeReprompt,
		Prompt:  session.CurrentStep().Prompt(),
		Reason:  reason,
	}
}

func isKeyword(text string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.EqualFold(text, kw) {
			return true
		}
	}
	return false
}
