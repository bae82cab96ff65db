package domain

import (
	"fmt"
	"slices"
	"time"
)

// ErrorKind identifies which backend fetch or validation step failed
type ErrorKind string

const (
	KindCalendarFetch   ErrorKind = "CALENDAR_FETCH"
	KindCompetitorFetch ErrorKind = "COMPETITOR_FETCH"
	KindPriceFetch      ErrorKind = "PRICE_FETCH"
	KindListingData     ErrorKind = "LISTING_DATA"
	KindMarketData      ErrorKind = "MARKET_DATA"
	KindAISuggestion    ErrorKind = "AI_SUGGESTION"
	KindValidation      ErrorKind = "VALIDATION"
)

// Kinds lists all error kinds known to the dashboard, in display order
var Kinds = []ErrorKind{
	KindCalendarFetch,
	KindCompetitorFetch,
	KindPriceFetch,
	KindListingData,
	KindMarketData,
	KindAISuggestion,
	KindValidation,
}

// Known reports whether the kind is one the dashboard knows how to label
func (k ErrorKind) Known() bool {
	return slices.Contains(Kinds, k)
}

// ErrorStatus is the lifecycle state of a tracked error
type ErrorStatus string

const (
	StatusPending  ErrorStatus = "PENDING"
	StatusRetrying ErrorStatus = "RETRYING"
	StatusFailed   ErrorStatus = "FAILED"
	StatusResolved ErrorStatus = "RESOLVED"
	StatusIgnored  ErrorStatus = "IGNORED"
)

var terminalStatuses = map[ErrorStatus]bool{
	StatusResolved: true,
	StatusIgnored:  true,
}

// backend-driven retries move pending <-> retrying -> failed, operators close from any
// non-terminal state. an operator retry re-enqueues a failed error.
var validErrorTransitions = map[ErrorStatus]map[ErrorStatus]bool{
	StatusPending: {
		StatusRetrying: true,
		StatusResolved: true,
		StatusIgnored:  true,
	},
	StatusRetrying: {
		StatusPending:  true,
		StatusFailed:   true,
		StatusResolved: true,
		StatusIgnored:  true,
	},
	StatusFailed: {
		StatusRetrying: true,
		StatusResolved: true,
		StatusIgnored:  true,
	},
}

// Known reports whether the status is part of the lifecycle
func (s ErrorStatus) Known() bool {
	_, ok := validErrorTransitions[s]
	return ok || terminalStatuses[s]
}

// IsTerminal returns true for statuses that are never left again
func IsTerminal(s ErrorStatus) bool {
	return terminalStatuses[s]
}

// ValidateTransition checks a status change against the error lifecycle
func ValidateTransition(from, to ErrorStatus) error {
	if IsTerminal(from) {
		return fmt.Errorf("cannot transition from terminal status %q", from)
	}
	allowed, ok := validErrorTransitions[from]
	if !ok {
		return fmt.Errorf("unknown status %q", from)
	}
	if !allowed[to] {
		return fmt.Errorf("invalid error transition: %q → %q", from, to)
	}
	return nil
}

// TrackedError is one failed data-fetch or validation attempt recorded by the backend
type TrackedError struct {
	ID           string      `json:"id"`
	ListingID    string      `json:"listingId"`
	ListingTitle string      `json:"listingTitle"`
	Kind         ErrorKind   `json:"errorType"`
	Message      string      `json:"message"`
	Date         *time.Time  `json:"date,omitempty"`
	Status       ErrorStatus `json:"status"`
	RetryCount   int         `json:"retryCount"`
	MaxRetries   int         `json:"maxRetries"`
	NextRetryAt  *time.Time  `json:"nextRetryAt,omitempty"`
	Notes        string      `json:"notes,omitempty"`
	CreatedAt    *time.Time  `json:"createdAt,omitempty"`
	ResolvedAt   *time.Time  `json:"resolvedAt,omitempty"`
}

// RecordRetryAttempt counts one more retry. The error stays RETRYING while the budget
// allows it, otherwise it becomes FAILED.
func (e *TrackedError) RecordRetryAttempt() error {
	if IsTerminal(e.Status) {
		return fmt.Errorf("cannot retry error %s in terminal status %q", e.ID, e.Status)
	}
	e.RetryCount++
	e.Status = StatusRetrying
	if e.RetryCount > e.MaxRetries {
		e.Status = StatusFailed
	}
	return nil
}

// Normalize repairs records that break the retry budget invariant
func (e *TrackedError) Normalize() {
	if e.RetryCount < 0 {
		e.RetryCount = 0
	}
	if e.MaxRetries < 0 {
		e.MaxRetries = 0
	}
	if e.Status == StatusRetrying && e.RetryCount > e.MaxRetries {
		e.Status = StatusFailed
	}
}

// Pending returns the errors that can still be acted upon, normalized.
// resolved and ignored records are dropped.
func Pending(errs []TrackedError) []TrackedError {
	res := make([]TrackedError, 0, len(errs))
	for _, e := range errs {
		if IsTerminal(e.Status) {
			continue
		}
		e.Normalize()
		res = append(res, e)
	}
	return res
}

// ErrorSummary aggregates tracked errors by status and kind
type ErrorSummary struct {
	Pending  int               `json:"pending"`
	Retrying int               `json:"retrying"`
	Failed   int               `json:"failed"`
	Resolved int               `json:"resolved"`
	Ignored  int               `json:"ignored"`
	ByType   map[ErrorKind]int `json:"byType,omitempty"`
}

// SortedKinds returns the kinds present in ByType, known kinds first in display
// order, unknown ones after them alphabetically
func (s ErrorSummary) SortedKinds() []ErrorKind {
	res := make([]ErrorKind, 0, len(s.ByType))
	for _, k := range Kinds {
		if _, ok := s.ByType[k]; ok {
			res = append(res, k)
		}
	}
	var unknown []ErrorKind
	for k := range s.ByType {
		if !k.Known() {
			unknown = append(unknown, k)
		}
	}
	slices.Sort(unknown)
	return append(res, unknown...)
}
