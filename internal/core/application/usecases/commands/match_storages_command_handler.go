package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/orderrequest"
	"marketplace/internal/core/domain/model/storage"
	"marketplace/internal/core/ports"

	"golang.org/x/sync/errgroup"
)

const (
	// defaultStorageChunkSize bounds how many storages one page of the scan
	// loads into memory.
	defaultStorageChunkSize = 100

	// defaultStorageParallelism bounds how many storages are matched
	// concurrently within a chunk.
	defaultStorageParallelism = 8

	// defaultRouteTimeout bounds a single routing provider call.
	defaultRouteTimeout = 5 * time.Second
)

// MatchStoragesCommandHandler is the matching engine. For every activated
// storage it finds active orders inside the storage's direct-distance radius
// whose material is stocked there, obtains route metrics from the routing
// provider, and creates an order request plus its history row, one
// transaction per candidate. After a storage's candidates are processed the
// vendor is notified once, fire-and-forget.
//
// Failure isolation: a routing failure skips only the affected candidate; a
// persistence failure skips the candidate and is aggregated into the run's
// returned error. No single storage or candidate aborts the run.
type MatchStoragesCommandHandler struct {
	uowFactory  UoWFactory
	routeClient ports.RouteClient
	notifier    ports.VendorNotifier
	logger      *slog.Logger

	chunkSize    int
	parallelism  int
	routeTimeout time.Duration
}

// MatchStoragesOption tunes the handler's batch behavior.
type MatchStoragesOption func(*MatchStoragesCommandHandler)

// WithStorageChunkSize overrides how many storages are loaded per page.
func WithStorageChunkSize(size int) MatchStoragesOption {
	return func(h *MatchStoragesCommandHandler) {
		if size > 0 {
			h.chunkSize = size
		}
	}
}

// WithStorageParallelism overrides how many storages are matched concurrently.
func WithStorageParallelism(n int) MatchStoragesOption {
	return func(h *MatchStoragesCommandHandler) {
		if n > 0 {
			h.parallelism = n
		}
	}
}

// WithRouteTimeout overrides the per-call routing provider timeout.
func WithRouteTimeout(d time.Duration) MatchStoragesOption {
	return func(h *MatchStoragesCommandHandler) {
		if d > 0 {
			h.routeTimeout = d
		}
	}
}

// NewMatchStoragesCommandHandler creates the matching engine handler.
func NewMatchStoragesCommandHandler(
	uowFactory UoWFactory,
	routeClient ports.RouteClient,
	notifier ports.VendorNotifier,
	logger *slog.Logger,
	opts ...MatchStoragesOption,
) MatchStoragesCommandHandler {
	h := MatchStoragesCommandHandler{
		uowFactory:   uowFactory,
		routeClient:  routeClient,
		notifier:     notifier,
		logger:       logger.With("component", "matching_engine"),
		chunkSize:    defaultStorageChunkSize,
		parallelism:  defaultStorageParallelism,
		routeTimeout: defaultRouteTimeout,
	}
	for _, opt := range opts {
		opt(&h)
	}
	return h
}

// Handle runs one matching pass over the full population of activated
// storages, processed in chunks. Per-storage work runs concurrently; the
// per-candidate request-plus-history write stays a single transaction.
// The returned error aggregates isolated candidate failures.
func (h MatchStoragesCommandHandler) Handle(ctx context.Context, command MatchStoragesCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	var (
		mu     sync.Mutex
		failed []error
	)

	for offset := 0; ; {
		storages, err := h.uowFactory.Create().StorageRepository().GetActivatedChunk(ctx, offset, h.chunkSize)
		if err != nil {
			return fmt.Errorf("scan activated storages: %w", err)
		}
		if len(storages) == 0 {
			break
		}

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(h.parallelism)
		for _, st := range storages {
			g.Go(func() error {
				if err := h.matchStorage(gctx, st); err != nil {
					mu.Lock()
					failed = append(failed, fmt.Errorf("storage %s: %w", st.ID(), err))
					mu.Unlock()
				}
				return nil
			})
		}
		// Closures never return errors; Wait only propagates ctx cancellation.
		if err = g.Wait(); err != nil {
			return err
		}
		if err = ctx.Err(); err != nil {
			return err
		}

		offset += len(storages)
	}

	return errors.Join(failed...)
}

// matchStorage matches one storage against all candidate orders in range and
// notifies the vendor once when at least one request was created.
func (h MatchStoragesCommandHandler) matchStorage(ctx context.Context, st *storage.VendorStorage) error {
	if err := st.Validate(); err != nil {
		return err
	}

	materialIDs := st.AvailableMaterialIDs()
	if len(materialIDs) == 0 {
		return nil
	}

	candidates, err := h.uowFactory.Create().OrderRepository().FindMatchCandidates(
		ctx, st.ID(), st.Location(), st.MaxRadiusKm(), materialIDs)
	if err != nil {
		return fmt.Errorf("find candidates: %w", err)
	}
	if len(candidates) == 0 {
		return nil
	}

	var (
		distances = make(map[kernel.UUID]float64, len(candidates))
		failed    []error
	)

	for _, candidate := range candidates {
		routeCtx, cancel := context.WithTimeout(ctx, h.routeTimeout)
		route, routeErr := h.routeClient.GetRoute(routeCtx, st.Location(), candidate.DeliveryPoint())
		cancel()
		if routeErr != nil {
			// Routing is an upstream concern: skip the candidate, the next
			// run will retry it.
			h.logger.WarnContext(ctx, "Routing provider failed, candidate skipped",
				"order_id", candidate.ID().String(),
				"storage_id", st.ID().String(),
				"error", routeErr)
			continue
		}

		request, reqErr := orderrequest.NewOrderRequest(
			kernel.NewUUID(),
			candidate.ID(),
			st.VendorID(),
			st.ID(),
			route.DistanceKm,
			route.DurationMinutes,
		)
		if reqErr != nil {
			failed = append(failed, fmt.Errorf("order %s: %w", candidate.ID(), reqErr))
			continue
		}

		if persistErr := h.persistRequest(ctx, request); persistErr != nil {
			failed = append(failed, fmt.Errorf("order %s: %w", candidate.ID(), persistErr))
			continue
		}

		distances[candidate.ID()] = request.DistanceKm()
	}

	if len(distances) > 0 {
		h.notifier.NotifyVendor(ctx, st.VendorID(), st.ID(), distances)
	}

	return errors.Join(failed...)
}

// persistRequest writes one order request and its history row atomically.
func (h MatchStoragesCommandHandler) persistRequest(
	ctx context.Context,
	request *orderrequest.OrderRequest,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRequestRepository().Add(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
