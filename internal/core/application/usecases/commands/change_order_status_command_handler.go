package commands

import (
	"context"
)

// ChangeOrderStatusCommandHandler updates the status of an existing order.
// A missing order surfaces as errs.ErrObjectNotFound from the repository so
// callers can distinguish it from infrastructure failures.
type ChangeOrderStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
func NewChangeOrderStatusCommandHandler(uowFactory UoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command. The read and the update run in
// the same transaction so the refreshed updatedAt matches the stored row.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	existing, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = existing.ChangeStatus(cmd.NewStatus(), cmd.ChangedAt()); err != nil {
		return err
	}

	if err = repo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
