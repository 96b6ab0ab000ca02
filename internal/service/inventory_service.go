package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/tkoide/supplywatch/internal/domain"
	"github.com/tkoide/supplywatch/internal/expiry"
	"github.com/tkoide/supplywatch/internal/tabular"
	"github.com/tkoide/supplywatch/internal/view"
)

// ErrNotConfigured is returned when no sheet URL has been set. Expected
// condition: the dashboard shows a warning and an empty item set.
var ErrNotConfigured = errors.New("sheet URL is not configured")

// sheetFetcher is the subset of fetch.Fetcher that InventoryService requires.
type sheetFetcher interface {
	Fetch(ctx context.Context) (string, error)
}

// InventoryService owns the current snapshot and runs the refresh pipeline:
// fetch, parse, classify, swap. Snapshots are replaced wholesale and never
// mutated, so readers can hold one across a concurrent refresh.
type InventoryService struct {
	fetcher sheetFetcher
	logger  *slog.Logger
	now     func() time.Time

	// group coalesces overlapping refresh requests so at most one fetch is
	// in flight; a late duplicate can never overwrite a newer snapshot.
	group singleflight.Group

	mu       sync.RWMutex
	snapshot *domain.Snapshot
}

// NewInventoryService builds the service. A nil fetcher means the sheet URL
// was never configured; Refresh then reports ErrNotConfigured.
func NewInventoryService(fetcher sheetFetcher, logger *slog.Logger) *InventoryService {
	return &InventoryService{
		fetcher: fetcher,
		logger:  logger,
		now:     time.Now,
	}
}

// Configured reports whether a sheet URL was set at startup.
func (s *InventoryService) Configured() bool { return s.fetcher != nil }

// Refresh fetches the export and replaces the current snapshot. On fetch
// failure the previous snapshot is left in place so the dashboard keeps
// showing the last known items. Concurrent calls share a single fetch.
func (s *InventoryService) Refresh(ctx context.Context) (*domain.Snapshot, error) {
	if s.fetcher == nil {
		return nil, ErrNotConfigured
	}

	v, err, shared := s.group.Do("refresh", func() (any, error) {
		raw, err := s.fetcher.Fetch(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetch sheet: %w", err)
		}
		snap := s.classify(raw)

		s.mu.Lock()
		s.snapshot = snap
		s.mu.Unlock()

		s.logger.Info("inventory refreshed",
			"items", len(snap.Items),
			"malformed_dates", snap.MalformedDates,
		)
		return snap, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.logger.Debug("refresh coalesced with in-flight fetch")
	}
	return v.(*domain.Snapshot), nil
}

// classify runs parse and per-record classification over the raw export.
func (s *InventoryService) classify(raw string) *domain.Snapshot {
	records := tabular.Parse(raw)
	today := s.now()

	items := make([]domain.Item, 0, len(records))
	malformed := 0
	for _, rec := range records {
		info, bad := expiry.Classify(rec.ExpiryDate(), today)
		if bad {
			malformed++
			s.logger.Debug("unparseable expiry date, treating as no expiry",
				"item", rec.Name(), "value", rec.ExpiryDate())
		}
		items = append(items, domain.Item{Record: rec, Expiry: info})
	}

	return &domain.Snapshot{
		Items:          items,
		FetchedAt:      today,
		MalformedDates: malformed,
	}
}

// Snapshot returns the current snapshot, or nil before the first successful
// refresh.
func (s *InventoryService) Snapshot() *domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// View builds the view model for the current snapshot and UI selection.
func (s *InventoryService) View(filter string, mode view.SortMode) view.ViewModel {
	var items []domain.Item
	if snap := s.Snapshot(); snap != nil {
		items = snap.Items
	}
	return view.Build(items, filter, mode)
}
