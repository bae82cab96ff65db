package console

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnovakovic099/ai-pricing/pkg/api"
	"github.com/dnovakovic099/ai-pricing/pkg/console/mocks"
	"github.com/dnovakovic099/ai-pricing/pkg/domain"
)

// newBackend returns a backend mock serving a fixed console state
func newBackend() *mocks.BackendMock {
	return &mocks.BackendMock{
		GetErrorSummaryFunc: func(ctx context.Context) (domain.ErrorSummary, error) {
			return domain.ErrorSummary{Pending: 2, Retrying: 1, Failed: 0, Resolved: 5,
				ByType: map[domain.ErrorKind]int{domain.KindCalendarFetch: 2, "UNKNOWN_KIND": 1}}, nil
		},
		GetPendingErrorsFunc: func(ctx context.Context) ([]domain.TrackedError, error) {
			return []domain.TrackedError{
				{ID: "e1", ListingID: "l1", Kind: domain.KindCalendarFetch, Status: domain.StatusPending, MaxRetries: 3},
				{ID: "e2", ListingID: "l2", Kind: "UNKNOWN_KIND", Status: domain.StatusRetrying, RetryCount: 1, MaxRetries: 3},
			}, nil
		},
		GetListingsWithIssuesFunc: func(ctx context.Context) ([]domain.ListingIssue, error) {
			return []domain.ListingIssue{{
				Listing:      domain.Listing{ID: "l1", Title: "Loft"},
				Completeness: domain.Completeness{Calendar: 120, Market: 40, AI: -5},
				MissingData:  domain.MissingData{Prices: 3, Market: -1},
			}}, nil
		},
		GetIncompleteListingsFunc: func(ctx context.Context) ([]domain.IncompleteListing, error) {
			return []domain.IncompleteListing{{ID: "l3", Title: "Cabin", AnalysisCount: 4}}, nil
		},
	}
}

type journalRecorder struct {
	mu      sync.Mutex
	entries []domain.CommandEntry
}

func (j *journalRecorder) mock() *mocks.JournalMock {
	return &mocks.JournalMock{RecordFunc: func(ctx context.Context, entry domain.CommandEntry) error {
		j.mu.Lock()
		defer j.mu.Unlock()
		j.entries = append(j.entries, entry)
		return nil
	}}
}

func (j *journalRecorder) all() []domain.CommandEntry {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]domain.CommandEntry(nil), j.entries...)
}

func TestInFlight(t *testing.T) {
	f := NewInFlight()
	assert.True(t, f.Add("e1"))
	assert.False(t, f.Add("e1"), "second add of the same id")
	assert.True(t, f.Add("e2"))
	assert.True(t, f.Contains("e1"))
	assert.Equal(t, 2, f.Len())

	f.Remove("e1")
	assert.False(t, f.Contains("e1"))
	assert.True(t, f.Add("e1"), "id can be added again once removed")
	f.Remove("missing")
	assert.Equal(t, 2, f.Len())
}

func TestConsole_Load(t *testing.T) {
	c := New(newBackend(), Opts{})

	snap, err := c.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, snap, c.Snapshot())
	assert.False(t, snap.LoadedAt.IsZero())

	assert.Equal(t, "Pending Errors (2)", snap.TabLabel(TabPending))
	assert.Equal(t, "Listings with Issues (1)", snap.TabLabel(TabIssues))
	assert.Equal(t, "Missing Calendars (1)", snap.TabLabel(TabIncomplete))

	cards := snap.SummaryCards()
	require.Len(t, cards, 4)
	counts := []int{cards[0].Count, cards[1].Count, cards[2].Count, cards[3].Count}
	assert.Equal(t, []int{2, 1, 0, 5}, counts)
	assert.Equal(t, []string{"Pending", "Retrying", "Failed", "Resolved"},
		[]string{cards[0].Label, cards[1].Label, cards[2].Label, cards[3].Label})

	require.Len(t, snap.Issues, 1)
	assert.InDelta(t, 100.0, snap.Issues[0].Completeness.Calendar, 0.001)
	assert.InDelta(t, 0.0, snap.Issues[0].Completeness.AI, 0.001)
	assert.Equal(t, 0, snap.Issues[0].MissingData.Market)
}

func TestConsole_LoadDropsTerminalErrors(t *testing.T) {
	backend := newBackend()
	backend.GetPendingErrorsFunc = func(ctx context.Context) ([]domain.TrackedError, error) {
		return []domain.TrackedError{
			{ID: "e1", Status: domain.StatusPending},
			{ID: "e2", Status: domain.StatusResolved},
			{ID: "e3", Status: domain.StatusIgnored},
			{ID: "e4", Status: domain.StatusRetrying, RetryCount: 4, MaxRetries: 3},
		}, nil
	}
	c := New(backend, Opts{})

	snap, err := c.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Pending, 2)
	assert.Equal(t, "e1", snap.Pending[0].ID)
	assert.Equal(t, "e4", snap.Pending[1].ID)
	assert.Equal(t, domain.StatusFailed, snap.Pending[1].Status, "over budget retrying shown as failed")
}

func TestConsole_LoadFailureKeepsSnapshot(t *testing.T) {
	backend := newBackend()
	c := New(backend, Opts{})
	before, err := c.Load(context.Background())
	require.NoError(t, err)

	backend.GetIncompleteListingsFunc = func(ctx context.Context) ([]domain.IncompleteListing, error) {
		return nil, errors.New("connection reset")
	}
	snap, err := c.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get incomplete listings")
	assert.Equal(t, before, snap)
	assert.Equal(t, before, c.Snapshot())
}

func TestConsole_StaleLoadDropped(t *testing.T) {
	backend := newBackend()
	started, release := make(chan struct{}), make(chan struct{})
	var calls atomic.Int32
	backend.GetErrorSummaryFunc = func(ctx context.Context) (domain.ErrorSummary, error) {
		if calls.Add(1) == 1 {
			close(started)
			<-release
			return domain.ErrorSummary{Pending: 1}, nil
		}
		return domain.ErrorSummary{Pending: 9}, nil
	}
	c := New(backend, Opts{})

	staleDone := make(chan Snapshot)
	go func() {
		snap, err := c.Load(context.Background())
		assert.NoError(t, err)
		staleDone <- snap
	}()
	<-started

	fresh, err := c.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 9, fresh.Summary.Pending)

	close(release)
	stale := <-staleDone
	assert.Equal(t, 9, stale.Summary.Pending, "stale load returns the newer state")
	assert.Equal(t, 9, c.Snapshot().Summary.Pending)
}

func TestConsole_Resolve(t *testing.T) {
	backend := newBackend()
	backend.ResolveErrorFunc = func(ctx context.Context, errorID, notes string) (domain.CommandResult, error) {
		return domain.CommandResult{Success: true, Message: "Error resolved"}, nil
	}
	journal := &journalRecorder{}
	c := New(backend, Opts{Journal: journal.mock()})

	require.NoError(t, c.Resolve(context.Background(), "e1", ""))
	require.Len(t, backend.ResolveErrorCalls(), 1)
	assert.Equal(t, "e1", backend.ResolveErrorCalls()[0].ErrorID)
	assert.Equal(t, DefaultResolveNote, backend.ResolveErrorCalls()[0].Notes)
	assert.Len(t, backend.GetErrorSummaryCalls(), 1, "reloaded after success")
	assert.False(t, c.IsInFlight("e1"))

	// resolved error is not listed even if the backend still returns it
	for _, e := range c.Snapshot().Pending {
		assert.NotEqual(t, "e1", e.ID)
	}

	entries := journal.all()
	require.Len(t, entries, 1)
	assert.Equal(t, domain.ActionResolve, entries[0].Action)
	assert.Equal(t, "e1", entries[0].TargetID)
	assert.True(t, entries[0].Success)
	assert.Equal(t, "Error resolved", entries[0].Message)
	assert.Equal(t, DefaultResolveNote, entries[0].Note)
}

func TestConsole_CustomNotes(t *testing.T) {
	backend := newBackend()
	backend.IgnoreErrorFunc = func(ctx context.Context, errorID, notes string) (domain.CommandResult, error) {
		return domain.CommandResult{Success: true}, nil
	}
	backend.ResolveErrorFunc = func(ctx context.Context, errorID, notes string) (domain.CommandResult, error) {
		return domain.CommandResult{Success: true}, nil
	}
	c := New(backend, Opts{IgnoreNote: "ignored by ops", ResolveNote: "fixed by ops"})

	require.NoError(t, c.Ignore(context.Background(), "e1", ""))
	require.NoError(t, c.Resolve(context.Background(), "e2", "calendar re-synced"))
	assert.Equal(t, "ignored by ops", backend.IgnoreErrorCalls()[0].Notes)
	assert.Equal(t, "calendar re-synced", backend.ResolveErrorCalls()[0].Notes)
}

func TestConsole_CommandFailureKeepsState(t *testing.T) {
	backend := newBackend()
	backend.ResolveErrorFunc = func(ctx context.Context, errorID, notes string) (domain.CommandResult, error) {
		return domain.CommandResult{}, &api.Error{StatusCode: 404, Message: "Error not found"}
	}
	backend.RetryErrorFunc = func(ctx context.Context, errorID string) (domain.CommandResult, error) {
		return domain.CommandResult{}, errors.New("timeout")
	}
	journal := &journalRecorder{}
	c := New(backend, Opts{Journal: journal.mock()})
	before, err := c.Load(context.Background())
	require.NoError(t, err)

	err = c.Resolve(context.Background(), "e1", "note")
	require.Error(t, err)
	assert.Equal(t, 404, api.StatusCode(err))
	err = c.Retry(context.Background(), "e1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")

	assert.Len(t, backend.GetErrorSummaryCalls(), 1, "no reload after failures")
	assert.Equal(t, before, c.Snapshot())
	assert.False(t, c.IsInFlight("e1"), "marker cleared so the operator can try again")

	entries := journal.all()
	require.Len(t, entries, 2)
	assert.False(t, entries[0].Success)
	assert.Equal(t, "Error not found", entries[0].Message)
	assert.Equal(t, domain.ActionRetry, entries[1].Action)

	// not remembered as closed, a later resolve reaches the backend again
	_ = c.Resolve(context.Background(), "e1", "note")
	assert.Len(t, backend.ResolveErrorCalls(), 2)
}

func TestConsole_InFlightGuard(t *testing.T) {
	backend := newBackend()
	started, release := make(chan struct{}), make(chan struct{})
	backend.IgnoreErrorFunc = func(ctx context.Context, errorID, notes string) (domain.CommandResult, error) {
		if errorID == "e1" {
			close(started)
			<-release
		}
		return domain.CommandResult{Success: true}, nil
	}
	c := New(backend, Opts{})

	done := make(chan error)
	go func() { done <- c.Ignore(context.Background(), "e1", "") }()
	<-started

	assert.True(t, c.IsInFlight("e1"))
	assert.ErrorIs(t, c.Ignore(context.Background(), "e1", ""), ErrCommandInFlight)
	assert.ErrorIs(t, c.Retry(context.Background(), "e1"), ErrCommandInFlight)
	assert.NoError(t, c.Ignore(context.Background(), "e2", ""), "other ids are not serialized")

	close(release)
	require.NoError(t, <-done)
	assert.False(t, c.IsInFlight("e1"))
	assert.Len(t, backend.IgnoreErrorCalls(), 2)
}

func TestConsole_TerminalIdempotence(t *testing.T) {
	backend := newBackend()
	backend.IgnoreErrorFunc = func(ctx context.Context, errorID, notes string) (domain.CommandResult, error) {
		return domain.CommandResult{Success: true}, nil
	}
	backend.ResolveErrorFunc = func(ctx context.Context, errorID, notes string) (domain.CommandResult, error) {
		return domain.CommandResult{Success: true}, nil
	}
	c := New(backend, Opts{})
	ctx := context.Background()

	require.NoError(t, c.Ignore(ctx, "e1", ""))
	require.NoError(t, c.Ignore(ctx, "e1", ""), "ignoring twice is not an error")
	assert.Len(t, backend.IgnoreErrorCalls(), 1, "no duplicate backend call")
	assert.Len(t, backend.GetErrorSummaryCalls(), 1, "no reload for the repeated ignore")

	err := c.Resolve(ctx, "e1", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminal status")
	assert.Empty(t, backend.ResolveErrorCalls())

	err = c.Retry(ctx, "e1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminal status")

	require.Len(t, c.Snapshot().Pending, 1)
	assert.Equal(t, "e2", c.Snapshot().Pending[0].ID)
}

func TestConsole_Retry(t *testing.T) {
	backend := newBackend()
	backend.RetryErrorFunc = func(ctx context.Context, errorID string) (domain.CommandResult, error) {
		return domain.CommandResult{Success: true, Message: "Retry scheduled"}, nil
	}
	c := New(backend, Opts{})

	require.NoError(t, c.Retry(context.Background(), "e2"))
	require.Len(t, backend.RetryErrorCalls(), 1)
	assert.Equal(t, "e2", backend.RetryErrorCalls()[0].ErrorID)
	assert.Len(t, backend.GetPendingErrorsCalls(), 1)

	// retry does not close the error
	require.NoError(t, c.Retry(context.Background(), "e2"))
	assert.Len(t, backend.RetryErrorCalls(), 2)
}

func TestConsole_ListingCommands(t *testing.T) {
	backend := newBackend()
	backend.RetryAllListingErrorsFunc = func(ctx context.Context, listingID string) (domain.CommandResult, error) {
		return domain.CommandResult{Success: true, Retried: 3}, nil
	}
	backend.ValidateListingFunc = func(ctx context.Context, listingID string) (domain.ListingCompleteness, error) {
		if listingID == "bad" {
			return domain.ListingCompleteness{}, errors.New("listing not found")
		}
		return domain.ListingCompleteness{ListingID: listingID,
			Completeness: domain.Completeness{Calendar: 101, Market: 50, AI: 20}}, nil
	}
	c := New(backend, Opts{})
	ctx := context.Background()

	res, err := c.RetryAllForListing(ctx, "l1")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Retried)
	assert.Len(t, backend.GetErrorSummaryCalls(), 1)

	comp, err := c.ValidateListing(ctx, "l1")
	require.NoError(t, err)
	assert.InDelta(t, 100.0, comp.Completeness.Calendar, 0.001)
	assert.Len(t, backend.GetErrorSummaryCalls(), 2)

	_, err = c.ValidateListing(ctx, "bad")
	require.Error(t, err)
	assert.Len(t, backend.GetErrorSummaryCalls(), 2, "no reload after a failed validation")
	assert.False(t, c.IsInFlight(listingKey("bad")))
	assert.False(t, c.IsListingInFlight("bad"))
}

func TestConsole_IsListingInFlight(t *testing.T) {
	backend := newBackend()
	started, release := make(chan struct{}), make(chan struct{})
	backend.RetryAllListingErrorsFunc = func(ctx context.Context, listingID string) (domain.CommandResult, error) {
		close(started)
		<-release
		return domain.CommandResult{Success: true}, nil
	}
	c := New(backend, Opts{})

	done := make(chan error, 1)
	go func() {
		_, err := c.RetryAllForListing(context.Background(), "l1")
		done <- err
	}()
	<-started

	assert.True(t, c.IsListingInFlight("l1"))
	assert.False(t, c.IsInFlight("l1"), "listing and error ids do not collide")
	_, err := c.RetryAllForListing(context.Background(), "l1")
	require.ErrorIs(t, err, ErrCommandInFlight)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, c.IsListingInFlight("l1"))
}

func TestConsole_FixAllCalendars(t *testing.T) {
	t.Run("acknowledged", func(t *testing.T) {
		backend := newBackend()
		backend.FixIncompleteCalendarsFunc = func(ctx context.Context, listingIDs []string) (domain.JobAck, error) {
			return domain.JobAck{Message: "Started calendar fetch for 1 listings", JobsStarted: 1, ListingIDs: []string{"l3"}}, nil
		}
		journal := &journalRecorder{}
		c := New(backend, Opts{Journal: journal.mock()})

		ack, err := c.FixAllCalendars(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, ack.JobsStarted)

		require.Len(t, backend.FixIncompleteCalendarsCalls(), 1)
		ids := backend.FixIncompleteCalendarsCalls()[0].ListingIDs
		assert.NotNil(t, ids, "empty set, not nil")
		assert.Empty(t, ids)
		assert.Len(t, backend.GetErrorSummaryCalls(), 1, "state reloaded afterwards")
		assert.False(t, c.BulkInProgress())

		entries := journal.all()
		require.Len(t, entries, 1)
		assert.Equal(t, domain.ActionFixCalendars, entries[0].Action)
		assert.Empty(t, entries[0].TargetID)
	})

	t.Run("failure still reloads", func(t *testing.T) {
		backend := newBackend()
		backend.FixIncompleteCalendarsFunc = func(ctx context.Context, listingIDs []string) (domain.JobAck, error) {
			return domain.JobAck{}, &api.Error{StatusCode: 500, Message: "queue unavailable"}
		}
		c := New(backend, Opts{})

		_, err := c.FixAllCalendars(context.Background())
		require.Error(t, err)
		assert.Equal(t, "queue unavailable", api.Message(err))
		assert.Len(t, backend.GetErrorSummaryCalls(), 1)
		assert.False(t, c.BulkInProgress())
	})

	t.Run("one bulk action at a time", func(t *testing.T) {
		backend := newBackend()
		started, release := make(chan struct{}), make(chan struct{})
		backend.FixIncompleteCalendarsFunc = func(ctx context.Context, listingIDs []string) (domain.JobAck, error) {
			close(started)
			<-release
			return domain.JobAck{JobsStarted: 2}, nil
		}
		backend.TriggerNightlyCollectionFunc = func(ctx context.Context) (domain.JobAck, error) {
			return domain.JobAck{Message: "started"}, nil
		}
		backend.RetryErrorFunc = func(ctx context.Context, errorID string) (domain.CommandResult, error) {
			return domain.CommandResult{Success: true}, nil
		}
		c := New(backend, Opts{})

		done := make(chan error)
		go func() {
			_, err := c.FixAllCalendars(context.Background())
			done <- err
		}()
		<-started

		assert.True(t, c.BulkInProgress())
		_, err := c.FixAllCalendars(context.Background())
		assert.ErrorIs(t, err, ErrBulkInProgress)
		_, err = c.TriggerCollection(context.Background())
		assert.ErrorIs(t, err, ErrBulkInProgress)

		// per-error commands are not gated by the bulk flag
		assert.NoError(t, c.Retry(context.Background(), "e1"))

		close(release)
		require.NoError(t, <-done)
		assert.Len(t, backend.FixIncompleteCalendarsCalls(), 1)
		assert.Empty(t, backend.TriggerNightlyCollectionCalls())
	})
}

func TestConsole_TriggerCollection(t *testing.T) {
	backend := newBackend()
	backend.TriggerNightlyCollectionFunc = func(ctx context.Context) (domain.JobAck, error) {
		return domain.JobAck{Message: "Nightly collection started"}, nil
	}
	c := New(backend, Opts{})

	ack, err := c.TriggerCollection(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Nightly collection started", ack.Message)
	assert.Len(t, backend.GetErrorSummaryCalls(), 1)
}

func TestConsole_JournalFailureIgnored(t *testing.T) {
	backend := newBackend()
	backend.RetryErrorFunc = func(ctx context.Context, errorID string) (domain.CommandResult, error) {
		return domain.CommandResult{Success: true}, nil
	}
	journal := &mocks.JournalMock{RecordFunc: func(ctx context.Context, entry domain.CommandEntry) error {
		return errors.New("disk full")
	}}
	c := New(backend, Opts{Journal: journal})

	require.NoError(t, c.Retry(context.Background(), "e1"))
	assert.Len(t, journal.RecordCalls(), 1)
	assert.WithinDuration(t, time.Now(), journal.RecordCalls()[0].Entry.CreatedAt, time.Minute)
}
