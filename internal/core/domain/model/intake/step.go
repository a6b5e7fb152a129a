package intake

import (
	"fmt"

	"receipts/internal/pkg/errs"
)

// Step identifies one state of the guided intake sequence. Each step pairs an
// operator-facing prompt with a validation rule applied by the workflow.
type Step int

const (
	// StepUnknown is the invalid zero value.
	StepUnknown Step = iota

	// AwaitingID collects the order identifier, or "generate" for a fresh one.
	AwaitingID

	// AwaitingTaxID collects the optional 11-digit tax id, or "skip".
	AwaitingTaxID

	// AwaitingName collects the customer's full name.
	AwaitingName

	// AwaitingProduct collects the product name or description.
	AwaitingProduct

	// AwaitingGrossValue collects the gross monetary value.
	AwaitingGrossValue

	// AwaitingDiscount collects the discount, bounded by the gross value.
	AwaitingDiscount

	// AwaitingTransactionID collects the optional payment reference, or "skip".
	AwaitingTransactionID

	// AwaitingDate collects the registration timestamp and triggers finalization.
	AwaitingDate
)

func stepStrings() map[Step]string {
	return map[Step]string{
		AwaitingID:            "AwaitingID",
		AwaitingTaxID:         "AwaitingTaxID",
		AwaitingName:          "AwaitingName",
		AwaitingProduct:       "AwaitingProduct",
		AwaitingGrossValue:    "AwaitingGrossValue",
		AwaitingDiscount:      "AwaitingDiscount",
		AwaitingTransactionID: "AwaitingTransactionID",
		AwaitingDate:          "AwaitingDate",
	}
}

func stepPrompts() map[Step]string {
	return map[Step]string{
		AwaitingID:            `Enter the order ID, or send "generate" for an automatic one:`,
		AwaitingTaxID:         `Enter the customer's tax ID (11 digits), or "skip" to leave it blank:`,
		AwaitingName:          `Enter the customer's full name:`,
		AwaitingProduct:       `Enter the product name or description:`,
		AwaitingGrossValue:    `Enter the gross value (e.g. 89.90 or 89,90):`,
		AwaitingDiscount:      `Enter the discount value (0 if none, e.g. 8.99):`,
		AwaitingTransactionID: `Enter the transaction ID, or "skip" if there is none:`,
		AwaitingDate:          `Enter the date/time as DD/MM/YYYY HH:MM:SS, or send "now" for the current time:`,
	}
}

// Validate checks that the Step is one of the defined intake states.
func (s Step) Validate() error {
	if _, ok := stepStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("step",
			fmt.Errorf("%d is not a valid intake step", int(s)))
	}
	return nil
}

// String returns the step's name, or "Unknown" for invalid values.
func (s Step) String() string {
	if str, ok := stepStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Prompt returns the operator-facing prompt for this step.
func (s Step) Prompt() string {
	return stepPrompts()[s]
}

// Next returns the step that follows s. ok is false for AwaitingDate, whose
// acceptance finalizes the draft instead of advancing, and for invalid steps.
func (s Step) Next() (Step, bool) {
	if s < AwaitingID || s >= AwaitingDate {
		return StepUnknown, false
	}
	return s + 1, true
}
