// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence; every accepted status transition
// is persisted together with its audit history row.
package commands

import (
	"context"

	"marketplace/internal/core/ports"
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

	// RequestRepoFactory provides access to the order request repository
	// within a transaction.
	RequestRepoFactory interface {
		OrderRequestRepository() ports.OrderRequestRepository
	}

	// StorageRepoFactory provides access to the vendor storage repository
	// within a transaction.
	StorageRepoFactory interface {
		StorageRepository() ports.StorageRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// RequestUoW manages transactions for request-only operations,
	// such as the discount loop and single-request cancellation.
	RequestUoW interface {
		TxManager
		RequestRepoFactory
	}

	// RequestUoWFactory creates new request unit of work instances.
	RequestUoWFactory interface {
		Create() RequestUoW
	}

	// UoW manages transactions across orders, requests and storages.
	// Used by matching, offers, confirmation, payment and cascade
	// cancellation, which coordinate changes between aggregate types.
	UoW interface {
		TxManager
		OrderRepoFactory
		RequestRepoFactory
		StorageRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
