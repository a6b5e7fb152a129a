package commands

import (
	"context"

	"receipts/internal/core/domain/model/order"
)

// RegisterOrderCommandHandler persists finalized intake drafts as order
// records. The insert runs inside a unit-of-work transaction; a duplicate
// identifier surfaces as errs.ErrObjectAlreadyExists from the repository,
// which is the store-level closing of the pre-check race.
type RegisterOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewRegisterOrderCommandHandler creates a handler for order registration.
func NewRegisterOrderCommandHandler(uowFactory UoWFactory) RegisterOrderCommandHandler {
	return RegisterOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command. The new order starts in Pending
// status with savings mirroring the discount.
func (h *RegisterOrderCommandHandler) Handle(ctx context.Context, cmd RegisterOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.TaxID(),
		cmd.CustomerName(),
		cmd.ProductDescription(),
		cmd.GrossValue(),
		cmd.Discount(),
		cmd.TransactionID(),
		cmd.CreatedAt(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
