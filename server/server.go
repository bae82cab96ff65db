package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"github.com/microcosm-cc/bluemonday"

	"github.com/dnovakovic099/ai-pricing/pkg/config"
	"github.com/dnovakovic099/ai-pricing/pkg/console"
	"github.com/dnovakovic099/ai-pricing/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/console.go -pkg mocks -skip-ensure -fmt goimports . Console
//go:generate moq -out mocks/pricing.go -pkg mocks -skip-ensure -fmt goimports . Pricing
//go:generate moq -out mocks/journal.go -pkg mocks -skip-ensure -fmt goimports . JournalReader

//go:embed templates static
var webFS embed.FS

// page template names
const (
	pageOverview = "overview.html"
	pageListing  = "listing.html"
	pageAnalysis = "analysis.html"
	pageErrors   = "errors.html"
)

// Server represents HTTP server instance
type Server struct {
	config  ConfigProvider
	console Console
	pricing Pricing
	journal JournalReader
	version string
	debug   bool

	templates     *template.Template            // components for htmx fragments
	pageTemplates map[string]*template.Template // full pages, each parsed with the base layout
	notePolicy    *bluemonday.Policy
	proxy         http.Handler

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Console is the error console the pages and commands work with
type Console interface {
	Snapshot() console.Snapshot
	Load(ctx context.Context) (console.Snapshot, error)
	IsInFlight(id string) bool
	IsListingInFlight(listingID string) bool
	BulkInProgress() bool
	Resolve(ctx context.Context, errorID, note string) error
	Ignore(ctx context.Context, errorID, note string) error
	Retry(ctx context.Context, errorID string) error
	RetryAllForListing(ctx context.Context, listingID string) (domain.CommandResult, error)
	ValidateListing(ctx context.Context, listingID string) (domain.ListingCompleteness, error)
	FixAllCalendars(ctx context.Context) (domain.JobAck, error)
	TriggerCollection(ctx context.Context) (domain.JobAck, error)
}

// Pricing is the read side of the pricing backend used by the report pages
type Pricing interface {
	GetAudit(ctx context.Context) (domain.Audit, error)
	GetListingAudit(ctx context.Context, listingID, date string) (domain.ListingAudit, error)
	GetMarketAnalysis(ctx context.Context, date string) (domain.MarketAnalysis, error)
	GetListingErrors(ctx context.Context, listingID string, includeResolved bool) ([]domain.TrackedError, error)
	GetCompleteness(ctx context.Context, listingID string) (domain.ListingCompleteness, error)
}

// JournalReader reads the operator command journal
type JournalReader interface {
	Recent(ctx context.Context, limit int) ([]domain.CommandEntry, error)
	ForTarget(ctx context.Context, targetID string, limit int) ([]domain.CommandEntry, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetBackendConfig() config.BackendConfig
	GetConsoleConfig() config.ConsoleConfig
	GetFullConfig() *config.Config
}

// New initializes a new server instance
func New(cfg ConfigProvider, cons Console, pricing Pricing, journal JournalReader, version string, debug bool) *Server {
	s := &Server{
		config:     cfg,
		console:    cons,
		pricing:    pricing,
		journal:    journal,
		version:    version,
		debug:      debug,
		notePolicy: bluemonday.StrictPolicy(),
		router:     routegroup.New(http.NewServeMux()),
	}

	s.templates = template.Must(template.New("").Funcs(s.templateFuncs()).ParseFS(webFS, "templates/components/*.html"))
	s.pageTemplates = make(map[string]*template.Template)
	for _, page := range []string{pageOverview, pageListing, pageAnalysis, pageErrors} {
		s.pageTemplates[page] = template.Must(template.New("").Funcs(s.templateFuncs()).
			ParseFS(webFS, "templates/base.html", "templates/components/*.html", "templates/"+page))
	}

	if backend := cfg.GetBackendConfig(); backend.Proxy {
		proxy, err := newBackendProxy(backend.URL)
		if err != nil {
			log.Printf("[WARN] backend proxy disabled: %v", err)
		} else {
			s.proxy = proxy
		}
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("pricing-dashboard", "dnovakovic099", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	// pages
	s.router.HandleFunc("GET /{$}", s.overviewHandler)
	s.router.HandleFunc("GET /listing/{id}", s.listingHandler)
	s.router.HandleFunc("GET /analysis", s.analysisHandler)
	s.router.HandleFunc("GET /errors", s.errorsHandler)

	// htmx fragments and commands
	s.router.HandleFunc("GET /analysis/listing/{id}", s.analysisListingHandler)
	s.router.HandleFunc("POST /errors/refresh", s.refreshErrorsHandler)
	s.router.HandleFunc("POST /errors/fix-calendars", s.fixCalendarsHandler)
	s.router.HandleFunc("POST /errors/{id}/{action}", s.errorActionHandler)
	s.router.HandleFunc("POST /listing/{id}/validate", s.validateListingHandler)
	s.router.HandleFunc("POST /listing/{id}/retry-all", s.retryAllHandler)
	s.router.HandleFunc("POST /sync", s.syncHandler)

	// API routes
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /console", s.consoleJSONHandler)
		r.HandleFunc("GET /journal", s.journalJSONHandler)
	})

	// RSS routes
	s.router.HandleFunc("GET /rss/errors", s.rssErrorsHandler)

	s.router.Handle("GET /static/", http.FileServerFS(webFS))

	// everything else under /api/ goes to the pricing backend
	if s.proxy != nil {
		s.router.Handle("/api/", http.StripPrefix("/api", s.proxy))
	}
}

// renderPage renders a pre-parsed page template
func (s *Server) renderPage(w http.ResponseWriter, templateName string, data any) error {
	tmpl, ok := s.pageTemplates[templateName]
	if !ok {
		return fmt.Errorf("template %s not found", templateName)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return tmpl.ExecuteTemplate(w, "base.html", data)
}

// renderFragment renders a component for htmx swaps
func (s *Server) renderFragment(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("[ERROR] failed to render %s: %v", name, err)
		http.Error(w, "Failed to render "+name, http.StatusInternalServerError)
	}
}

// respondWithError logs the error and answers with a plain text message
func (s *Server) respondWithError(w http.ResponseWriter, code int, message string, err error) {
	log.Printf("[ERROR] %s: %v", message, err)
	http.Error(w, message, code)
}

// sanitizeNote strips markup from an operator note
func (s *Server) sanitizeNote(note string) string {
	return s.notePolicy.Sanitize(note)
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
