package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dnovakovic099/ai-pricing/pkg/api"
	"github.com/dnovakovic099/ai-pricing/pkg/console"
	"github.com/dnovakovic099/ai-pricing/pkg/domain"
)

// listing page tabs
const (
	listingTabChunks      = "chunks"
	listingTabSuggestions = "suggestions"
	listingTabSnapshots   = "snapshots"
	listingTabCalendar    = "calendar"
	listingTabErrors      = "errors"
)

var listingTabs = []listingTab{
	{Key: listingTabChunks, Label: "Price Chunks"},
	{Key: listingTabSnapshots, Label: "Market Snapshots"},
	{Key: listingTabSuggestions, Label: "AI Suggestions"},
	{Key: listingTabCalendar, Label: "Calendar"},
	{Key: listingTabErrors, Label: "Errors"},
}

type listingTab struct {
	Key   string
	Label string
}

// alert is a banner shown above page content. Blocking alerts carry role="alert".
type alert struct {
	Kind     string // success, info or error
	Message  string
	Blocking bool
}

func successAlert(msg string) *alert { return &alert{Kind: "success", Message: msg} }
func infoAlert(msg string) *alert { return &alert{Kind: "info", Message: msg} }
func errorAlert(msg string) *alert { return &alert{Kind: "error", Message: msg, Blocking: true} }

// pageMeta holds fields every full page needs
type pageMeta struct {
	Title   string
	Nav     string
	Version string
	Error   string // load failure shown instead of the page body
}

type overviewPage struct {
	pageMeta
	Audit   domain.Audit
	Summary domain.ErrorSummary
	Syncing bool
}

type listingPage struct {
	pageMeta
	ListingID     string
	Audit         domain.ListingAudit
	Errors        []domain.TrackedError
	Completeness  *domain.ListingCompleteness
	Journal       []domain.CommandEntry
	Tab           string
	Tabs          []listingTab
	Date          string
	ShowResolved  bool
	ListingActive bool // a listing-wide command is running
}

type analysisPage struct {
	pageMeta
	Report domain.MarketAnalysis
	Date   string
}

// overviewHandler displays the listings overview with the aggregate audit
func (s *Server) overviewHandler(w http.ResponseWriter, r *http.Request) {
	data := overviewPage{
		pageMeta: s.meta("Your Listings", "overview"),
		Summary:  s.console.Snapshot().Summary,
		Syncing:  s.console.BulkInProgress(),
	}

	audit, err := s.pricing.GetAudit(r.Context())
	if err != nil {
		log.Printf("[WARN] failed to load audit: %v", err)
		data.Error = api.Message(err)
	}
	data.Audit = audit

	if err := s.renderPage(w, pageOverview, data); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to render page", err)
	}
}

// listingHandler displays one listing with its chunks, snapshots, suggestions, calendar and errors
func (s *Server) listingHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	listingID := r.PathValue("id")
	query := r.URL.Query()

	data := listingPage{
		pageMeta:      s.meta("Listing", "overview"),
		ListingID:     listingID,
		Tab:           parseListingTab(query.Get("tab")),
		Tabs:          listingTabs,
		Date:          query.Get("date"),
		ShowResolved:  query.Get("resolved") == "true",
		ListingActive: s.console.IsListingInFlight(listingID),
	}

	// errors and completeness are secondary, the page renders without them
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		if data.Audit, err = s.pricing.GetListingAudit(gctx, listingID, data.Date); err != nil {
			return fmt.Errorf("get listing audit: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		errs, err := s.pricing.GetListingErrors(gctx, listingID, data.ShowResolved)
		if err != nil {
			log.Printf("[WARN] failed to load errors of listing %s: %v", listingID, err)
			return nil
		}
		for i := range errs {
			errs[i].Normalize()
		}
		data.Errors = errs
		return nil
	})
	g.Go(func() error {
		comp, err := s.pricing.GetCompleteness(gctx, listingID)
		if err != nil {
			log.Printf("[WARN] failed to load completeness of listing %s: %v", listingID, err)
			return nil
		}
		comp.Normalize()
		data.Completeness = &comp
		return nil
	})
	if err := g.Wait(); err != nil {
		log.Printf("[WARN] failed to load listing %s: %v", listingID, err)
		data.Error = api.Message(err)
		if api.StatusCode(err) == http.StatusNotFound {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusNotFound)
		}
	}
	if data.Audit.Listing.Title != "" {
		data.Title = data.Audit.Listing.Title
	}

	if entries, err := s.journal.ForTarget(ctx, listingID, s.config.GetConsoleConfig().JournalLimit); err != nil {
		log.Printf("[WARN] failed to read journal of listing %s: %v", listingID, err)
	} else {
		data.Journal = entries
	}

	if err := s.renderPage(w, pageListing, data); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to render page", err)
	}
}

// analysisHandler displays the market analysis report for the selected collection date
func (s *Server) analysisHandler(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	data := analysisPage{pageMeta: s.meta("Market Analysis", "analysis"), Date: date}

	report, err := s.pricing.GetMarketAnalysis(r.Context(), date)
	if err != nil {
		log.Printf("[WARN] failed to load market analysis: %v", err)
		data.Error = api.Message(err)
	}
	data.Report = report
	if data.Date == "" {
		data.Date = report.SelectedDate
	}

	if err := s.renderPage(w, pageAnalysis, data); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to render page", err)
	}
}

// analysisListingHandler returns the chunk table of one listing of the market report
func (s *Server) analysisListingHandler(w http.ResponseWriter, r *http.Request) {
	listingID := r.PathValue("id")
	report, err := s.pricing.GetMarketAnalysis(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		log.Printf("[WARN] failed to load market analysis for %s: %v", listingID, err)
		s.renderFragment(w, "alert", errorAlert("Failed to load chunks: "+api.Message(err)))
		return
	}

	listing, ok := report.FindListing(listingID)
	if !ok {
		http.Error(w, "Listing not found", http.StatusNotFound)
		return
	}
	s.renderFragment(w, "analysis-chunks", listing)
}

// syncHandler starts the nightly market data collection
func (s *Server) syncHandler(w http.ResponseWriter, r *http.Request) {
	ack, err := s.console.TriggerCollection(r.Context())
	switch {
	case errors.Is(err, console.ErrBulkInProgress):
		s.renderFragment(w, "alert", infoAlert("A background job is already starting, try again in a moment."))
	case err != nil:
		s.renderFragment(w, "alert", errorAlert("Failed: "+api.Message(err)))
	default:
		log.Printf("[INFO] nightly collection triggered: %s", ack.Message)
		s.renderFragment(w, "alert", successAlert("Data collection started! This may take 10-15 minutes. Refresh the page to see updates."))
	}
}

// validateListingHandler recomputes the listing completeness and returns the updated panel
func (s *Server) validateListingHandler(w http.ResponseWriter, r *http.Request) {
	listingID := r.PathValue("id")
	comp, err := s.console.ValidateListing(r.Context(), listingID)
	switch {
	case errors.Is(err, console.ErrCommandInFlight):
		s.renderFragment(w, "alert", infoAlert("A command for this listing is still running."))
	case err != nil:
		s.renderFragment(w, "alert", errorAlert("Validation failed: "+api.Message(err)))
	default:
		s.renderFragment(w, "completeness", &comp)
	}
}

// retryAllHandler re-enqueues all open errors of a listing
func (s *Server) retryAllHandler(w http.ResponseWriter, r *http.Request) {
	listingID := r.PathValue("id")
	res, err := s.console.RetryAllForListing(r.Context(), listingID)
	switch {
	case errors.Is(err, console.ErrCommandInFlight):
		s.renderFragment(w, "alert", infoAlert("A command for this listing is still running."))
	case err != nil:
		s.renderFragment(w, "alert", errorAlert("Retry failed: "+api.Message(err)))
	case res.Message != "":
		s.renderFragment(w, "alert", successAlert(res.Message))
	default:
		s.renderFragment(w, "alert", successAlert(fmt.Sprintf("%d errors re-enqueued", res.Retried)))
	}
}

func (s *Server) meta(title, nav string) pageMeta {
	return pageMeta{Title: title, Nav: nav, Version: s.version}
}

// parseListingTab maps a query value to a listing tab, anything unknown opens the chunks
func parseListingTab(tab string) string {
	for _, t := range listingTabs {
		if t.Key == tab {
			return tab
		}
	}
	return listingTabChunks
}

// formatTime renders optional backend timestamps
func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "—"
	}
	return t.Local().Format("Jan 2, 15:04")
}
