package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/url"

	"github.com/dnovakovic099/ai-pricing/pkg/api"
	"github.com/dnovakovic099/ai-pricing/pkg/console"
	"github.com/dnovakovic099/ai-pricing/pkg/domain"
)

// consoleView is the data of the error console body, rendered for the full page and
// for every htmx command answer
type consoleView struct {
	Snapshot console.Snapshot
	Tab      console.Tab
	Tabs     []console.Tab
	Journal  []domain.CommandEntry
	Bulk     bool
	Alert    *alert
}

type errorsPage struct {
	pageMeta
	Console consoleView
}

// errorsHandler displays the error console, always with freshly loaded state
func (s *Server) errorsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	data := errorsPage{pageMeta: s.meta("Data Quality & Errors", "errors")}

	if _, err := s.console.Load(ctx); err != nil {
		log.Printf("[WARN] console load failed: %v", err)
		if s.console.Snapshot().LoadedAt.IsZero() {
			data.Error = api.Message(err)
		}
		data.Console = s.consoleView(ctx, r.URL.Query().Get("tab"), errorAlert("Failed to refresh: "+api.Message(err)))
	} else {
		data.Console = s.consoleView(ctx, r.URL.Query().Get("tab"), nil)
	}

	if err := s.renderPage(w, pageErrors, data); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to render page", err)
	}
}

// refreshErrorsHandler reloads the console and returns the refreshed body
func (s *Server) refreshErrorsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var banner *alert
	if _, err := s.console.Load(ctx); err != nil {
		log.Printf("[WARN] console refresh failed: %v", err)
		banner = errorAlert("Failed to refresh: " + api.Message(err))
	}
	s.renderConsole(w, r, s.consoleView(ctx, r.FormValue("tab"), banner))
}

// errorActionHandler runs resolve, ignore or retry for one error and returns the console body
func (s *Server) errorActionHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	errorID := r.PathValue("id")
	action := domain.CommandAction(r.PathValue("action"))
	if err := r.ParseForm(); err != nil {
		renderError(w, r, errors.New("invalid form data"), http.StatusBadRequest)
		return
	}
	note := s.sanitizeNote(r.FormValue("note"))

	var err error
	switch action {
	case domain.ActionResolve:
		err = s.console.Resolve(ctx, errorID, note)
	case domain.ActionIgnore:
		err = s.console.Ignore(ctx, errorID, note)
	case domain.ActionRetry:
		err = s.console.Retry(ctx, errorID)
	default:
		renderError(w, r, errors.New("invalid action"), http.StatusBadRequest)
		return
	}

	// a failed command shows up in the journal only, the list stays as it was
	var banner *alert
	switch {
	case errors.Is(err, console.ErrCommandInFlight):
		banner = infoAlert("A command for this error is still running.")
	case err != nil:
		log.Printf("[DEBUG] %s error %s: %v", action, errorID, err)
	}
	s.renderConsole(w, r, s.consoleView(ctx, r.FormValue("tab"), banner))
}

// fixCalendarsHandler starts calendar backfill jobs for all incomplete listings
func (s *Server) fixCalendarsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ack, err := s.console.FixAllCalendars(ctx)

	var banner *alert
	switch {
	case errors.Is(err, console.ErrBulkInProgress):
		banner = infoAlert("Calendar fix jobs are already starting.")
	case err != nil:
		banner = errorAlert("Failed to start fix jobs: " + api.Message(err))
	default:
		log.Printf("[INFO] calendar fix started %d jobs", ack.JobsStarted)
		banner = successAlert("Started background jobs to fix missing calendars. Check back in a few minutes.")
	}
	s.renderConsole(w, r, s.consoleView(ctx, string(console.TabIncomplete), banner))
}

// consoleView collects the console body data from the current snapshot
func (s *Server) consoleView(ctx context.Context, tab string, banner *alert) consoleView {
	view := consoleView{
		Snapshot: s.console.Snapshot(),
		Tab:      console.ParseTab(tab),
		Tabs:     console.Tabs,
		Bulk:     s.console.BulkInProgress(),
		Alert:    banner,
	}
	entries, err := s.journal.Recent(ctx, s.config.GetConsoleConfig().JournalLimit)
	if err != nil {
		log.Printf("[WARN] failed to read command journal: %v", err)
	}
	view.Journal = entries
	return view
}

// renderConsole answers htmx with the console body, plain form posts are redirected
// back to the console page
func (s *Server) renderConsole(w http.ResponseWriter, r *http.Request, view consoleView) {
	if !isHTMX(r) {
		http.Redirect(w, r, "/errors?tab="+url.QueryEscape(string(view.Tab)), http.StatusSeeOther)
		return
	}
	s.renderFragment(w, "console-body", view)
}
