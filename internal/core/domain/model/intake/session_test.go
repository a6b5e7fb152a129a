package intake_test

import (
	"testing"
	"time"

	"receipts/internal/core/domain/model/intake"
	"receipts/internal/core/domain/model/kernel"
	"receipts/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, raw string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(decimal.RequireFromString(raw))
	require.NoError(t, err)
	return m
}

func TestNewSession(t *testing.T) {
	t.Run("starts at AwaitingID", func(t *testing.T) {
		now := time.Now()
		s, err := intake.NewSession("operator-1", now)
		require.NoError(t, err)

		assert.Equal(t, "operator-1", s.ActorID())
		assert.Equal(t, intake.AwaitingID, s.CurrentStep())
		assert.Equal(t, now, s.UpdatedAt())
		require.NoError(t, s.Validate())
	})

	t.Run("rejects empty actor id", func(t *testing.T) {
		_, err := intake.NewSession("", time.Now())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestSession_Validate(t *testing.T) {
	var s *intake.Session
	assert.ErrorIs(t, s.Validate(), intake.ErrSessionIsNotConstructed)
	assert.ErrorIs(t, (&intake.Session{}).Validate(), intake.ErrSessionIsNotConstructed)
}

func TestSession_FullSequence(t *testing.T) {
	now := time.Now()
	s, err := intake.NewSession("operator-1", now)
	require.NoError(t, err)

	id, _ := kernel.NewOrderID("ORD1")
	createdAt := time.Date(2024, time.December, 25, 18, 30, 0, 0, time.Local)

	require.NoError(t, s.AcceptID(id, now))
	assert.Equal(t, intake.AwaitingTaxID, s.CurrentStep())

	require.NoError(t, s.AcceptTaxID("12345678901", now))
	assert.Equal(t, intake.AwaitingName, s.CurrentStep())

	require.NoError(t, s.AcceptCustomerName("Maria Silva", now))
	assert.Equal(t, intake.AwaitingProduct, s.CurrentStep())

	require.NoError(t, s.AcceptProductDescription("Wireless Mouse", now))
	assert.Equal(t, intake.AwaitingGrossValue, s.CurrentStep())

	require.NoError(t, s.AcceptGrossValue(money(t, "150.00"), now))
	assert.Equal(t, intake.AwaitingDiscount, s.CurrentStep())

	require.NoError(t, s.AcceptDiscount(money(t, "10.00"), now))
	assert.Equal(t, intake.AwaitingTransactionID, s.CurrentStep())

	require.NoError(t, s.AcceptTransactionID("", now))
	assert.Equal(t, intake.AwaitingDate, s.CurrentStep())

	require.NoError(t, s.AcceptDate(createdAt, now))
	// date acceptance completes the draft without advancing past AwaitingDate,
	// so a failed finalization can be retried from here
	assert.Equal(t, intake.AwaitingDate, s.CurrentStep())

	draft := s.Draft()
	assert.Equal(t, "ORD1", draft.ID.String())
	assert.Equal(t, "12345678901", draft.TaxID)
	assert.Equal(t, "Maria Silva", draft.CustomerName)
	assert.Equal(t, "Wireless Mouse", draft.ProductDescription)
	assert.Equal(t, "150.00", draft.GrossValue.String())
	assert.Equal(t, "10.00", draft.Discount.String())
	assert.Empty(t, draft.TransactionID)
	assert.Equal(t, createdAt, draft.CreatedAt)
}

func TestSession_RejectsOutOfOrderInput(t *testing.T) {
	now := time.Now()
	s, err := intake.NewSession("operator-1", now)
	require.NoError(t, err)

	// session is at AwaitingID; everything else must be rejected
	require.Error(t, s.AcceptTaxID("12345678901", now))
	require.Error(t, s.AcceptCustomerName("Maria Silva", now))
	require.Error(t, s.AcceptGrossValue(money(t, "10.00"), now))
	require.Error(t, s.AcceptDate(time.Now(), now))
	assert.Equal(t, intake.AwaitingID, s.CurrentStep())
}

func TestSession_AcceptDiscount(t *testing.T) {
	setup := func(t *testing.T) *intake.Session {
		t.Helper()
		now := time.Now()
		s, err := intake.NewSession("operator-1", now)
		require.NoError(t, err)

		id, _ := kernel.NewOrderID("ORD1")
		require.NoError(t, s.AcceptID(id, now))
		require.NoError(t, s.AcceptTaxID("", now))
		require.NoError(t, s.AcceptCustomerName("Maria Silva", now))
		require.NoError(t, s.AcceptProductDescription("Wireless Mouse", now))
		require.NoError(t, s.AcceptGrossValue(money(t, "100.00"), now))
		return s
	}

	t.Run("discount above gross value leaves session unchanged", func(t *testing.T) {
		s := setup(t)

		err := s.AcceptDiscount(money(t, "100.01"), time.Now())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, intake.AwaitingDiscount, s.CurrentStep())
		assert.Equal(t, "100.00", s.Draft().GrossValue.String())
	})

	t.Run("discount equal to gross value is accepted", func(t *testing.T) {
		s := setup(t)
		require.NoError(t, s.AcceptDiscount(money(t, "100.00"), time.Now()))
		assert.Equal(t, intake.AwaitingTransactionID, s.CurrentStep())
	})

	t.Run("unconstructed money is rejected", func(t *testing.T) {
		s := setup(t)
		require.Error(t, s.AcceptDiscount(kernel.Money{}, time.Now()))
	})
}

func TestSession_UpdatedAtTracksAcceptedInput(t *testing.T) {
	start := time.Now()
	s, err := intake.NewSession("operator-1", start)
	require.NoError(t, err)

	later := start.Add(5 * time.Minute)
	id, _ := kernel.NewOrderID("ORD1")
	require.NoError(t, s.AcceptID(id, later))
	assert.Equal(t, later, s.UpdatedAt())
}
