package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/dnovakovic099/ai-pricing/pkg/console"
)

//go:generate moq -out mocks/loader.go -pkg mocks -skip-ensure -fmt goimports . Loader
//go:generate moq -out mocks/pruner.go -pkg mocks -skip-ensure -fmt goimports . Pruner

// Scheduler keeps the console snapshot fresh for pages and feeds nobody is looking at,
// and trims the command journal
type Scheduler struct {
	loader          Loader
	pruner          Pruner
	refreshInterval time.Duration
	pruneInterval   time.Duration
	journalKeep     int
	wg              sync.WaitGroup
	cancel          context.CancelFunc
}

// Loader reloads the console snapshot
type Loader interface {
	Load(ctx context.Context) (console.Snapshot, error)
}

// Pruner drops old journal entries
type Pruner interface {
	Prune(ctx context.Context, keep int) (int64, error)
}

// Config holds scheduler configuration
type Config struct {
	RefreshInterval time.Duration
	PruneInterval   time.Duration
	JournalKeep     int
}

// NewScheduler creates a new scheduler instance. pruner may be nil.
func NewScheduler(loader Loader, pruner Pruner, cfg Config) *Scheduler {
	if cfg.RefreshInterval == 0 {
		cfg.RefreshInterval = 5 * time.Minute
	}
	if cfg.PruneInterval == 0 {
		cfg.PruneInterval = 24 * time.Hour
	}
	if cfg.JournalKeep == 0 {
		cfg.JournalKeep = 1000
	}

	return &Scheduler{
		loader:          loader,
		pruner:          pruner,
		refreshInterval: cfg.RefreshInterval,
		pruneInterval:   cfg.PruneInterval,
		journalKeep:     cfg.JournalKeep,
	}
}

// Start begins the background workers
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.refreshWorker(ctx)

	if s.pruner != nil {
		s.wg.Add(1)
		go s.pruneWorker(ctx)
	}

	lgr.Printf("[INFO] scheduler started with refresh interval %v, prune interval %v", s.refreshInterval, s.pruneInterval)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// RefreshNow reloads the console snapshot immediately
func (s *Scheduler) RefreshNow(ctx context.Context) {
	snap, err := s.loader.Load(ctx)
	if err != nil {
		lgr.Printf("[WARN] scheduled console refresh failed: %v", err)
		return
	}
	lgr.Printf("[DEBUG] console refreshed, %d pending errors, %d listings with issues", len(snap.Pending), len(snap.Issues))
}

// PruneNow trims the journal immediately
func (s *Scheduler) PruneNow(ctx context.Context) {
	if s.pruner == nil {
		return
	}
	pruned, err := s.pruner.Prune(ctx, s.journalKeep)
	if err != nil {
		lgr.Printf("[WARN] failed to prune command journal: %v", err)
		return
	}
	if pruned > 0 {
		lgr.Printf("[DEBUG] pruned %d journal entries", pruned)
	}
}

// refreshWorker reloads the snapshot on every tick. The first load happens on startup,
// before the server runs, so the worker waits for the first tick.
func (s *Scheduler) refreshWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RefreshNow(ctx)
		}
	}
}

// pruneWorker trims the journal on start and then on every tick
func (s *Scheduler) pruneWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.pruneInterval)
	defer ticker.Stop()

	s.PruneNow(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.PruneNow(ctx)
		}
	}
}
