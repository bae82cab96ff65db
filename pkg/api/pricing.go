package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dnovakovic099/ai-pricing/pkg/domain"
)

// GetAudit returns the aggregate data audit over all listings
func (c *Client) GetAudit(ctx context.Context) (domain.Audit, error) {
	var resp struct {
		Audit domain.Audit `json:"audit"`
	}
	err := c.do(ctx, http.MethodGet, "/pricing/audit", nil, nil, &resp)
	return resp.Audit, err
}

// GetListingAudit returns the data audit of one listing, optionally scoped to a collection date
func (c *Client) GetListingAudit(ctx context.Context, listingID, date string) (domain.ListingAudit, error) {
	var resp domain.ListingAudit
	err := c.do(ctx, http.MethodGet, "/pricing/audit/"+url.PathEscape(listingID), dateQuery(date), nil, &resp)
	return resp, err
}

// GetListings returns all tracked listings
func (c *Client) GetListings(ctx context.Context) ([]domain.Listing, error) {
	var resp struct {
		Listings []domain.Listing `json:"listings"`
	}
	err := c.do(ctx, http.MethodGet, "/pricing/listings", nil, nil, &resp)
	return resp.Listings, err
}

// GetListingCalendar returns the calendar collected for a listing
func (c *Client) GetListingCalendar(ctx context.Context, listingID string) ([]domain.CalendarDay, error) {
	var resp struct {
		Calendar []domain.CalendarDay `json:"calendar"`
	}
	err := c.do(ctx, http.MethodGet, "/pricing/listings/"+url.PathEscape(listingID)+"/calendar", nil, nil, &resp)
	return resp.Calendar, err
}

// GetMarketAnalysis returns the market-analysis report, optionally scoped to a collection date
func (c *Client) GetMarketAnalysis(ctx context.Context, date string) (domain.MarketAnalysis, error) {
	var resp domain.MarketAnalysis
	err := c.do(ctx, http.MethodGet, "/pricing/market-analysis", dateQuery(date), nil, &resp)
	return resp, err
}

// GetTrainingDataStats returns the backend's training data statistics as is
func (c *Client) GetTrainingDataStats(ctx context.Context) (map[string]any, error) {
	resp := map[string]any{}
	err := c.do(ctx, http.MethodGet, "/pricing/training-data-stats", nil, nil, &resp)
	return resp, err
}

// TriggerNightlyCollection starts the nightly collection job without waiting for it
func (c *Client) TriggerNightlyCollection(ctx context.Context) (domain.JobAck, error) {
	var resp domain.JobAck
	err := c.do(ctx, http.MethodPost, "/pricing/trigger-nightly-collection", nil, nil, &resp)
	return resp, err
}

// GetErrorSummary returns error counters by status and by kind
func (c *Client) GetErrorSummary(ctx context.Context) (domain.ErrorSummary, error) {
	var resp domain.ErrorSummary
	err := c.do(ctx, http.MethodGet, "/pricing/errors", nil, nil, &resp)
	return resp, err
}

// GetPendingErrors returns errors awaiting remediation
func (c *Client) GetPendingErrors(ctx context.Context) ([]domain.TrackedError, error) {
	var resp struct {
		Errors []domain.TrackedError `json:"errors"`
	}
	err := c.do(ctx, http.MethodGet, "/pricing/errors/pending", nil, nil, &resp)
	return resp.Errors, err
}

// GetListingErrors returns errors of a listing, resolved and ignored ones only if asked for
func (c *Client) GetListingErrors(ctx context.Context, listingID string, includeResolved bool) ([]domain.TrackedError, error) {
	var resp struct {
		Errors []domain.TrackedError `json:"errors"`
	}
	query := url.Values{"includeResolved": {strconv.FormatBool(includeResolved)}}
	err := c.do(ctx, http.MethodGet, "/pricing/errors/listing/"+url.PathEscape(listingID), query, nil, &resp)
	return resp.Errors, err
}

// GetCompleteness returns the completeness snapshot of a listing
func (c *Client) GetCompleteness(ctx context.Context, listingID string) (domain.ListingCompleteness, error) {
	var resp domain.ListingCompleteness
	err := c.do(ctx, http.MethodGet, "/pricing/completeness/"+url.PathEscape(listingID), nil, nil, &resp)
	return resp, err
}

// GetListingsWithIssues returns listings with incomplete data
func (c *Client) GetListingsWithIssues(ctx context.Context) ([]domain.ListingIssue, error) {
	var resp struct {
		Listings []domain.ListingIssue `json:"listings"`
	}
	err := c.do(ctx, http.MethodGet, "/pricing/issues", nil, nil, &resp)
	return resp.Listings, err
}

// ValidateListing asks the backend to recompute the completeness of a listing
func (c *Client) ValidateListing(ctx context.Context, listingID string) (domain.ListingCompleteness, error) {
	var resp domain.ListingCompleteness
	err := c.do(ctx, http.MethodPost, "/pricing/validate/"+url.PathEscape(listingID), nil, nil, &resp)
	return resp, err
}

// ResolveError closes an error as fixed
func (c *Client) ResolveError(ctx context.Context, errorID, notes string) (domain.CommandResult, error) {
	var resp domain.CommandResult
	err := c.do(ctx, http.MethodPost, "/pricing/errors/"+url.PathEscape(errorID)+"/resolve", nil, notesBody{Notes: notes}, &resp)
	return resp, err
}

// IgnoreError suppresses an error without claiming it was fixed
func (c *Client) IgnoreError(ctx context.Context, errorID, notes string) (domain.CommandResult, error) {
	var resp domain.CommandResult
	err := c.do(ctx, http.MethodPost, "/pricing/errors/"+url.PathEscape(errorID)+"/ignore", nil, notesBody{Notes: notes}, &resp)
	return resp, err
}

// RetryError re-enqueues the failed attempt immediately
func (c *Client) RetryError(ctx context.Context, errorID string) (domain.CommandResult, error) {
	var resp domain.CommandResult
	err := c.do(ctx, http.MethodPost, "/pricing/errors/"+url.PathEscape(errorID)+"/retry", nil, nil, &resp)
	return resp, err
}

// RetryAllListingErrors re-enqueues every open error of a listing
func (c *Client) RetryAllListingErrors(ctx context.Context, listingID string) (domain.CommandResult, error) {
	var resp domain.CommandResult
	err := c.do(ctx, http.MethodPost, "/pricing/listings/"+url.PathEscape(listingID)+"/retry-all", nil, nil, &resp)
	return resp, err
}

// GetIncompleteListings returns listings with competitor data but no calendar data
func (c *Client) GetIncompleteListings(ctx context.Context) ([]domain.IncompleteListing, error) {
	var resp struct {
		Listings []domain.IncompleteListing `json:"listings"`
	}
	err := c.do(ctx, http.MethodGet, "/pricing/incomplete-listings", nil, nil, &resp)
	return resp.Listings, err
}

// FixIncompleteCalendars starts calendar backfill jobs. An empty set means all incomplete
// listings. The call returns once the jobs are started.
func (c *Client) FixIncompleteCalendars(ctx context.Context, listingIDs []string) (domain.JobAck, error) {
	if listingIDs == nil {
		listingIDs = []string{}
	}
	body := struct {
		ListingIDs []string `json:"listingIds"`
	}{ListingIDs: listingIDs}

	var resp domain.JobAck
	err := c.do(ctx, http.MethodPost, "/pricing/fix-calendars", nil, body, &resp)
	return resp, err
}

type notesBody struct {
	Notes string `json:"notes"`
}

func dateQuery(date string) url.Values {
	if date == "" {
		return nil
	}
	return url.Values{"date": {date}}
}
