package commands

import (
	"errors"

	"procserve/internal/pkg/guard"
)

var ErrExpireStaleBidsCommandIsNotConstructed = errors.New(
	"ExpireStaleBidsCommand must be created via NewExpireStaleBidsCommand constructor",
)

// ExpireStaleBidsCommand triggers rejection of pending bids whose
// negotiation has been idle past the configured TTL. This batch operation
// is run periodically so abandoned negotiations do not stay PENDING forever.
//
// Example:
//
//	cmd := NewExpireStaleBidsCommand()
//	handler := NewExpireStaleBidsCommandHandler(uowFactory, 72*time.Hour)
//
//	ticker := time.NewTicker(time.Hour)
//	for range ticker.C {
//	    if err := handler.Handle(ctx, cmd); err != nil {
//	        log.Printf("Bid expiry sweep failed: %v", err)
//	    }
//	}
type ExpireStaleBidsCommand struct {
	guard guard.ConstructorGuard
}

// NewExpireStaleBidsCommand creates a command to trigger a bid expiry sweep.
// This is a parameterless command that processes all active orders.
func NewExpireStaleBidsCommand() ExpireStaleBidsCommand {
	return ExpireStaleBidsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *ExpireStaleBidsCommand) Validate() error {
	return c.guard.Validate(ErrExpireStaleBidsCommandIsNotConstructed)
}
