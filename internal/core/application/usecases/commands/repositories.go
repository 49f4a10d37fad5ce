// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"procserve/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ContactRepoFactory provides access to the contact repository within a transaction.
	ContactRepoFactory interface {
		ContactRepository() ports.ContactRepository
	}

	// ServerProfileRepoFactory provides access to the server profile repository within a transaction.
	ServerProfileRepoFactory interface {
		ServerProfileRepository() ports.ServerProfileRepository
	}

	// OrderUoW manages transactions for order-only operations. The order
	// aggregate covers recipients, bids and delivery attempts, so every
	// negotiation and delivery command runs on this unit of work.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DirectoryUoW manages transactions for contact directory operations.
	// Contact commands read server profiles to resolve references, so both
	// repositories are exposed.
	DirectoryUoW interface {
		TxManager
		ContactRepoFactory
		ServerProfileRepoFactory
	}

	// DirectoryUoWFactory creates new directory unit of work instances.
	DirectoryUoWFactory interface {
		Create() DirectoryUoW
	}
)
