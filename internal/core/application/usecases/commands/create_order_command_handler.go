package commands

import (
	"context"

	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Builds the order aggregate with all its recipients and persists it in one
// transaction.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Recipient sequence numbers follow the order of the submitted specs.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, command CreateOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	document, err := order.NewDocumentMeta(command.Title(), command.CaseNumber())
	if err != nil {
		return err
	}

	recipients := make([]*order.Recipient, 0, len(command.Recipients()))
	for i, spec := range command.Recipients() {
		recipient, err := buildRecipient(spec, i+1)
		if err != nil {
			return err
		}
		recipients = append(recipients, recipient)
	}

	aggregate, err := order.NewOrder(
		command.OrderID(), command.CustomerID(), command.TenantID(),
		command.Deadline(), document, recipients,
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

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func buildRecipient(spec RecipientSpec, sequence int) (*order.Recipient, error) {
	address, err := kernel.NewAddress(spec.Street, spec.City, spec.State, spec.Zip)
	if err != nil {
		return nil, err
	}

	mode, err := order.AssignmentModeFromString(spec.Mode)
	if err != nil {
		return nil, err
	}

	options := order.ServiceOptions{
		ProcessService: spec.ProcessService,
		CertifiedMail:  spec.CertifiedMail,
		RushService:    spec.RushService,
		RemoteLocation: spec.RemoteLocation,
	}

	return order.NewRecipient(
		spec.RecipientID, sequence, spec.Name, address,
		mode, options, spec.MaxAttempts, spec.DesignatedServerID,
	)
}
