package commands

import (
	"errors"
	"time"

	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrRecipientsAreRequired = errors.New("at least one recipient is required")
	ErrDeadlineIsRequired    = errors.New("deadline is required")
)

// RecipientSpec describes one delivery destination of a new order. Field
// values are carried as received at the boundary; the domain constructors
// validate them when the order is built.
type RecipientSpec struct {
	RecipientID        kernel.UUID
	Name               string
	Street             string
	City               string
	State              string
	Zip                string
	Mode               string
	ProcessService     bool
	CertifiedMail      bool
	RushService        bool
	RemoteLocation     bool
	MaxAttempts        int
	DesignatedServerID *kernel.UUID
}

// CreateOrderCommand represents a request to create a service-of-process
// order with its full set of recipients.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, customerID, tenantID, deadline,
//	    "Summons and Complaint", "2026-CV-01482", recipients)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	tenantID   kernel.UUID
	deadline   time.Time
	title      string
	caseNumber string
	recipients []RecipientSpec

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates identifiers, the deadline and that at least one recipient is
// present; per-recipient fields are validated by the domain model.
func NewCreateOrderCommand(
	orderID, customerID, tenantID kernel.UUID,
	deadline time.Time,
	title, caseNumber string,
	recipients []RecipientSpec,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCustomerID(customerID),
		command.setTenantID(tenantID),
		command.setDeadline(deadline),
		command.setRecipients(recipients),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	command.title = title
	command.caseNumber = caseNumber
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// TenantID returns the tenant the order belongs to.
func (c CreateOrderCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// Deadline returns the service deadline.
func (c CreateOrderCommand) Deadline() time.Time {
	return c.deadline
}

// Title returns the document title.
func (c CreateOrderCommand) Title() string {
	return c.title
}

// CaseNumber returns the court case number, possibly empty.
func (c CreateOrderCommand) CaseNumber() string {
	return c.caseNumber
}

// Recipients returns the delivery destinations.
func (c CreateOrderCommand) Recipients() []RecipientSpec {
	return c.recipients
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	c.tenantID = tenantID
	return nil
}

func (c *CreateOrderCommand) setDeadline(deadline time.Time) error {
	if deadline.IsZero() {
		return ErrDeadlineIsRequired
	}

	c.deadline = deadline
	return nil
}

func (c *CreateOrderCommand) setRecipients(recipients []RecipientSpec) error {
	if len(recipients) == 0 {
		return ErrRecipientsAreRequired
	}

	c.recipients = recipients
	return nil
}
