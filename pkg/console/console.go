// Package console implements the error-remediation console: it loads the error and
// completeness state from the pricing backend and turns operator intent into backend
// commands, re-deriving its state from a full reload after each successful command.
package console

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/dnovakovic099/ai-pricing/pkg/api"
	"github.com/dnovakovic099/ai-pricing/pkg/domain"
)

//go:generate moq -out mocks/backend.go -pkg mocks -skip-ensure -fmt goimports . Backend
//go:generate moq -out mocks/journal.go -pkg mocks -skip-ensure -fmt goimports . Journal

// default operator notes used when a command is issued without one
const (
	DefaultResolveNote = "Manually resolved from dashboard"
	DefaultIgnoreNote  = "Ignored from dashboard"
)

var (
	// ErrCommandInFlight is returned when a command for the same target is still running
	ErrCommandInFlight = errors.New("command already in flight")
	// ErrBulkInProgress is returned when a bulk job trigger is still running
	ErrBulkInProgress = errors.New("bulk action already in progress")
)

// Backend is the part of the pricing backend API the console works with
type Backend interface {
	GetErrorSummary(ctx context.Context) (domain.ErrorSummary, error)
	GetPendingErrors(ctx context.Context) ([]domain.TrackedError, error)
	GetListingsWithIssues(ctx context.Context) ([]domain.ListingIssue, error)
	GetIncompleteListings(ctx context.Context) ([]domain.IncompleteListing, error)
	ResolveError(ctx context.Context, errorID, notes string) (domain.CommandResult, error)
	IgnoreError(ctx context.Context, errorID, notes string) (domain.CommandResult, error)
	RetryError(ctx context.Context, errorID string) (domain.CommandResult, error)
	RetryAllListingErrors(ctx context.Context, listingID string) (domain.CommandResult, error)
	ValidateListing(ctx context.Context, listingID string) (domain.ListingCompleteness, error)
	FixIncompleteCalendars(ctx context.Context, listingIDs []string) (domain.JobAck, error)
	TriggerNightlyCollection(ctx context.Context) (domain.JobAck, error)
}

// Journal records operator commands with their outcome
type Journal interface {
	Record(ctx context.Context, entry domain.CommandEntry) error
}

// Opts configures a Console
type Opts struct {
	ResolveNote string  // note sent with resolve when the operator gave none
	IgnoreNote  string  // note sent with ignore when the operator gave none
	Journal     Journal // optional command journal
}

// Snapshot is the console state derived from one full reload
type Snapshot struct {
	Summary    domain.ErrorSummary        `json:"summary"`
	Pending    []domain.TrackedError      `json:"pending"`
	Issues     []domain.ListingIssue      `json:"issues"`
	Incomplete []domain.IncompleteListing `json:"incomplete"`
	LoadedAt   time.Time                  `json:"loadedAt"`
}

// Console keeps the last loaded snapshot and dispatches operator commands.
// It is safe for concurrent use.
type Console struct {
	backend     Backend
	journal     Journal
	resolveNote string
	ignoreNote  string

	inFlight   *InFlight
	bulk       atomic.Bool
	generation atomic.Uint64

	mu       sync.RWMutex
	snapshot Snapshot
	applied  uint64
	closed   map[string]domain.ErrorStatus // errors closed by this console
}

// New makes a console on top of the backend
func New(backend Backend, opts Opts) *Console {
	if opts.ResolveNote == "" {
		opts.ResolveNote = DefaultResolveNote
	}
	if opts.IgnoreNote == "" {
		opts.IgnoreNote = DefaultIgnoreNote
	}
	return &Console{
		backend:     backend,
		journal:     opts.Journal,
		resolveNote: opts.ResolveNote,
		ignoreNote:  opts.IgnoreNote,
		inFlight:    NewInFlight(),
		closed:      map[string]domain.ErrorStatus{},
	}
}

// Snapshot returns the last applied state
func (c *Console) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot
}

// IsInFlight reports whether a command for the error or listing id is running
func (c *Console) IsInFlight(id string) bool {
	return c.inFlight.Contains(id)
}

// IsListingInFlight reports whether a listing-wide command for the listing is running
func (c *Console) IsListingInFlight(listingID string) bool {
	return c.inFlight.Contains(listingKey(listingID))
}

// BulkInProgress reports whether a bulk job trigger is running
func (c *Console) BulkInProgress() bool {
	return c.bulk.Load()
}

// Load fetches summary, pending errors, listings with issues and incomplete listings
// concurrently and replaces the snapshot. On failure the previous snapshot is kept.
// A load finishing after a newer one was applied is dropped.
func (c *Console) Load(ctx context.Context) (Snapshot, error) {
	gen := c.generation.Add(1)

	var res Snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		if res.Summary, err = c.backend.GetErrorSummary(gctx); err != nil {
			return fmt.Errorf("get error summary: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if res.Pending, err = c.backend.GetPendingErrors(gctx); err != nil {
			return fmt.Errorf("get pending errors: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if res.Issues, err = c.backend.GetListingsWithIssues(gctx); err != nil {
			return fmt.Errorf("get listings with issues: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if res.Incomplete, err = c.backend.GetIncompleteListings(gctx); err != nil {
			return fmt.Errorf("get incomplete listings: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		lgr.Printf("[WARN] console reload failed, keeping previous state: %v", err)
		return c.Snapshot(), err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen <= c.applied {
		lgr.Printf("[DEBUG] dropping stale console reload %d, %d already applied", gen, c.applied)
		return c.snapshot, nil
	}

	res.Pending = c.pendingOnly(res.Pending)
	for i := range res.Issues {
		res.Issues[i].Normalize()
	}
	res.LoadedAt = time.Now()
	c.snapshot = res
	c.applied = gen
	return res, nil
}

// pendingOnly drops terminal errors, including ones this console closed and the backend
// still lists. Must be called under lock.
func (c *Console) pendingOnly(errs []domain.TrackedError) []domain.TrackedError {
	res := domain.Pending(errs)
	if len(c.closed) == 0 {
		return res
	}
	kept := res[:0]
	for _, e := range res {
		if _, closed := c.closed[e.ID]; !closed {
			kept = append(kept, e)
		}
	}
	return kept
}

// Resolve closes the error as fixed. An empty note is replaced by the default one.
func (c *Console) Resolve(ctx context.Context, errorID, note string) error {
	if note == "" {
		note = c.resolveNote
	}
	return c.closeError(ctx, domain.ActionResolve, domain.StatusResolved, errorID, note, c.backend.ResolveError)
}

// Ignore suppresses the error from pending views without claiming it was fixed.
// An empty note is replaced by the default one.
func (c *Console) Ignore(ctx context.Context, errorID, note string) error {
	if note == "" {
		note = c.ignoreNote
	}
	return c.closeError(ctx, domain.ActionIgnore, domain.StatusIgnored, errorID, note, c.backend.IgnoreError)
}

type closeFunc func(ctx context.Context, errorID, notes string) (domain.CommandResult, error)

// closeError moves the error to a terminal status. Repeating the same close is a no-op,
// closing it the other way is rejected without a backend call.
func (c *Console) closeError(ctx context.Context, action domain.CommandAction, status domain.ErrorStatus,
	errorID, note string, fn closeFunc) error {
	c.mu.RLock()
	prev, closed := c.closed[errorID]
	c.mu.RUnlock()
	if closed {
		if prev == status {
			lgr.Printf("[DEBUG] error %s is already %s", errorID, status)
			return nil
		}
		return fmt.Errorf("%s error %s: %w", action, errorID, domain.ValidateTransition(prev, status))
	}

	if !c.inFlight.Add(errorID) {
		return ErrCommandInFlight
	}
	defer c.inFlight.Remove(errorID)

	res, err := fn(ctx, errorID, note)
	c.record(ctx, action, errorID, note, res.Message, err)
	if err != nil {
		lgr.Printf("[WARN] %s error %s failed: %v", action, errorID, err)
		return fmt.Errorf("%s error %s: %w", action, errorID, err)
	}

	c.mu.Lock()
	c.closed[errorID] = status
	c.mu.Unlock()
	lgr.Printf("[INFO] error %s marked %s", errorID, status)

	c.reload(ctx)
	return nil
}

// Retry re-enqueues the failed attempt immediately, regardless of its next retry time
func (c *Console) Retry(ctx context.Context, errorID string) error {
	c.mu.RLock()
	prev, closed := c.closed[errorID]
	c.mu.RUnlock()
	if closed {
		return fmt.Errorf("retry error %s: %w", errorID, domain.ValidateTransition(prev, domain.StatusRetrying))
	}

	if !c.inFlight.Add(errorID) {
		return ErrCommandInFlight
	}
	defer c.inFlight.Remove(errorID)

	res, err := c.backend.RetryError(ctx, errorID)
	c.record(ctx, domain.ActionRetry, errorID, "", res.Message, err)
	if err != nil {
		lgr.Printf("[WARN] retry error %s failed: %v", errorID, err)
		return fmt.Errorf("retry error %s: %w", errorID, err)
	}
	lgr.Printf("[INFO] error %s re-enqueued", errorID)

	c.reload(ctx)
	return nil
}

// RetryAllForListing re-enqueues every open error of a listing
func (c *Console) RetryAllForListing(ctx context.Context, listingID string) (domain.CommandResult, error) {
	if !c.inFlight.Add(listingKey(listingID)) {
		return domain.CommandResult{}, ErrCommandInFlight
	}
	defer c.inFlight.Remove(listingKey(listingID))

	res, err := c.backend.RetryAllListingErrors(ctx, listingID)
	c.record(ctx, domain.ActionRetryAll, listingID, "", res.Message, err)
	if err != nil {
		lgr.Printf("[WARN] retry all errors of listing %s failed: %v", listingID, err)
		return domain.CommandResult{}, fmt.Errorf("retry all errors of listing %s: %w", listingID, err)
	}
	lgr.Printf("[INFO] %d errors of listing %s re-enqueued", res.Retried, listingID)

	c.reload(ctx)
	return res, nil
}

// ValidateListing asks the backend to recompute the listing completeness
func (c *Console) ValidateListing(ctx context.Context, listingID string) (domain.ListingCompleteness, error) {
	if !c.inFlight.Add(listingKey(listingID)) {
		return domain.ListingCompleteness{}, ErrCommandInFlight
	}
	defer c.inFlight.Remove(listingKey(listingID))

	res, err := c.backend.ValidateListing(ctx, listingID)
	c.record(ctx, domain.ActionValidate, listingID, "", "", err)
	if err != nil {
		lgr.Printf("[WARN] validate listing %s failed: %v", listingID, err)
		return domain.ListingCompleteness{}, fmt.Errorf("validate listing %s: %w", listingID, err)
	}
	res.Normalize()

	c.reload(ctx)
	return res, nil
}

// FixAllCalendars starts calendar backfill jobs for every incomplete listing. It returns
// as soon as the backend acknowledges the jobs and reloads the state whatever the outcome.
func (c *Console) FixAllCalendars(ctx context.Context) (domain.JobAck, error) {
	return c.bulkJob(ctx, domain.ActionFixCalendars, func(ctx context.Context) (domain.JobAck, error) {
		return c.backend.FixIncompleteCalendars(ctx, []string{})
	})
}

// TriggerCollection starts the nightly collection without waiting for it
func (c *Console) TriggerCollection(ctx context.Context) (domain.JobAck, error) {
	return c.bulkJob(ctx, domain.ActionCollectNightly, c.backend.TriggerNightlyCollection)
}

func (c *Console) bulkJob(ctx context.Context, action domain.CommandAction, fn func(ctx context.Context) (domain.JobAck, error)) (domain.JobAck, error) {
	if !c.bulk.CompareAndSwap(false, true) {
		return domain.JobAck{}, ErrBulkInProgress
	}
	defer c.bulk.Store(false)
	defer c.reload(ctx)

	ack, err := fn(ctx)
	c.record(ctx, action, "", "", ack.Message, err)
	if err != nil {
		lgr.Printf("[WARN] %s failed: %v", action, err)
		return domain.JobAck{}, fmt.Errorf("%s: %w", action, err)
	}
	lgr.Printf("[INFO] %s started %d jobs: %s", action, ack.JobsStarted, ack.Message)
	return ack, nil
}

// reload refreshes the snapshot after a command. A failed reload keeps the previous state.
func (c *Console) reload(ctx context.Context) {
	if _, err := c.Load(ctx); err != nil {
		lgr.Printf("[WARN] reload after command: %v", err)
	}
}

// record writes the command outcome to the journal, if any
func (c *Console) record(ctx context.Context, action domain.CommandAction, target, note, message string, cmdErr error) {
	if c.journal == nil {
		return
	}
	entry := domain.CommandEntry{
		Action:    action,
		TargetID:  target,
		Note:      note,
		Success:   cmdErr == nil,
		Message:   message,
		CreatedAt: time.Now(),
	}
	if cmdErr != nil {
		entry.Message = api.Message(cmdErr)
	}
	if err := c.journal.Record(ctx, entry); err != nil {
		lgr.Printf("[WARN] can't record %s command: %v", action, err)
	}
}

func listingKey(id string) string {
	return "listing:" + id
}
