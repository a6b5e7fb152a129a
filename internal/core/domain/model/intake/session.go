package intake

import (
	"errors"
	"fmt"
	"time"

	"receipts/internal/core/domain/model/kernel"
	"receipts/internal/pkg/errs"
)

var (
	// ErrSessionIsNotConstructed is returned when a Session was not created via NewSession.
	ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession constructor")
)

// Draft holds the order fields collected so far. Fields are filled in step
// order; a field is only meaningful once its step has been accepted.
type Draft struct {
	ID                 kernel.OrderID
	TaxID              string
	CustomerName       string
	ProductDescription string
	GrossValue         kernel.Money
	Discount           kernel.Money
	TransactionID      string
	CreatedAt          time.Time
}

// Session tracks one operator's progress through the intake sequence.
// Each Accept method validates that the session is at the matching step,
// records the already-validated value, and advances. Values reaching a
// Session have been through the validation library; the session enforces
// ordering and the cross-field discount invariant.
type Session struct {
	actorID     string
	currentStep Step
	draft       Draft
	updatedAt   time.Time

	isConstructed bool
}

// NewSession creates a session for the given actor, positioned at AwaitingID.
func NewSession(actorID string, now time.Time) (*Session, error) {
	if actorID == "" {
		return nil, errs.NewValueIsRequiredError("actorId")
	}

	return &Session{
		actorID:       actorID,
		currentStep:   AwaitingID,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// Validate ensures the Session was created via NewSession.
func (s *Session) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSessionIsNotConstructed
	}
	return nil
}

// ActorID returns the operator this session belongs to.
func (s *Session) ActorID() string {
	return s.actorID
}

// CurrentStep returns the step the session is waiting on.
func (s *Session) CurrentStep() Step {
	return s.currentStep
}

// Draft returns a copy of the fields collected so far.
func (s *Session) Draft() Draft {
	return s.draft
}

// UpdatedAt returns the time of the last accepted input. Used by the idle
// session sweeper.
func (s *Session) UpdatedAt() time.Time {
	return s.updatedAt
}

// AcceptID records the order identifier and advances to AwaitingTaxID.
func (s *Session) AcceptID(id kernel.OrderID, now time.Time) error {
	if err := s.expectStep(AwaitingID); err != nil {
		return err
	}
	if err := id.Validate(); err != nil {
		return err
	}

	s.draft.ID = id
	return s.advance(now)
}

// AcceptTaxID records the normalized tax id (or the empty string when skipped)
// and advances to AwaitingName.
func (s *Session) AcceptTaxID(taxID string, now time.Time) error {
	if err := s.expectStep(AwaitingTaxID); err != nil {
		return err
	}

	s.draft.TaxID = taxID
	return s.advance(now)
}

// AcceptCustomerName records the customer name and advances to AwaitingProduct.
func (s *Session) AcceptCustomerName(name string, now time.Time) error {
	if err := s.expectStep(AwaitingName); err != nil {
		return err
	}

	s.draft.CustomerName = name
	return s.advance(now)
}

// AcceptProductDescription records the product description and advances to
// AwaitingGrossValue.
func (s *Session) AcceptProductDescription(product string, now time.Time) error {
	if err := s.expectStep(AwaitingProduct); err != nil {
		return err
	}

	s.draft.ProductDescription = product
	return s.advance(now)
}

// AcceptGrossValue records the gross value and advances to AwaitingDiscount.
func (s *Session) AcceptGrossValue(grossValue kernel.Money, now time.Time) error {
	if err := s.expectStep(AwaitingGrossValue); err != nil {
		return err
	}
	if err := grossValue.Validate(); err != nil {
		return err
	}

	s.draft.GrossValue = grossValue
	return s.advance(now)
}

// AcceptDiscount records the discount and advances to AwaitingTransactionID.
// A discount exceeding the gross value is rejected and the session state,
// including the already-accepted gross value, is left untouched.
func (s *Session) AcceptDiscount(discount kernel.Money, now time.Time) error {
	if err := s.expectStep(AwaitingDiscount); err != nil {
		return err
	}
	if err := discount.Validate(); err != nil {
		return err
	}
	if discount.GreaterThan(s.draft.GrossValue) {
		return errs.NewValueIsOutOfRangeError("discount",
			discount.String(), "0.00", s.draft.GrossValue.String())
	}

	s.draft.Discount = discount
	return s.advance(now)
}

// AcceptTransactionID records the payment reference (or the empty string when
// skipped) and advances to AwaitingDate.
func (s *Session) AcceptTransactionID(transactionID string, now time.Time) error {
	if err := s.expectStep(AwaitingTransactionID); err != nil {
		return err
	}

	s.draft.TransactionID = transactionID
	return s.advance(now)
}

// AcceptDate records the registration timestamp, completing the draft.
// The session stays positioned at AwaitingDate: finalization is the
// application layer's responsibility and may fail, in which case the operator
// resubmits the date instead of re-entering every field.
func (s *Session) AcceptDate(createdAt time.Time, now time.Time) error {
	if err := s.expectStep(AwaitingDate); err != nil {
		return err
	}
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}

	s.draft.CreatedAt = createdAt
	s.updatedAt = now
	return nil
}

func (s *Session) expectStep(expected Step) error {
	if s.currentStep != expected {
		return errs.NewValueIsInvalidErrorWithCause("step",
			fmt.Errorf("session is at %s, not %s", s.currentStep, expected))
	}
	return nil
}

func (s *Session) advance(now time.Time) error {
	next, ok := s.currentStep.Next()
	if !ok {
		return errs.NewValueIsInvalidErrorWithCause("step",
			fmt.Errorf("%s has no next step", s.currentStep))
	}

	s.currentStep = next
	s.updatedAt = now
	return nil
}
