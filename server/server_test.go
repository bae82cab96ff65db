package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnovakovic099/ai-pricing/pkg/config"
	"github.com/dnovakovic099/ai-pricing/pkg/console"
	"github.com/dnovakovic099/ai-pricing/pkg/domain"
	"github.com/dnovakovic099/ai-pricing/server/mocks"
)

var testTime = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func testConfig(backendURL string, proxy bool) *mocks.ConfigProviderMock {
	cfg := &config.Config{
		Server:  config.ServerConfig{Listen: ":3000", Timeout: 30 * time.Second, BaseURL: "http://dash.example.com"},
		Backend: config.BackendConfig{URL: backendURL, Proxy: proxy},
		Console: config.ConsoleConfig{JournalLimit: 20, JournalKeep: 1000},
	}
	return &mocks.ConfigProviderMock{
		GetServerConfigFunc:  func() (string, time.Duration) { return cfg.Server.Listen, cfg.Server.Timeout },
		GetBackendConfigFunc: func() config.BackendConfig { return cfg.Backend },
		GetConsoleConfigFunc: func() config.ConsoleConfig { return cfg.Console },
		GetFullConfigFunc:    func() *config.Config { return cfg },
	}
}

func testSnapshot() console.Snapshot {
	created := testTime
	return console.Snapshot{
		Summary: domain.ErrorSummary{Pending: 2, Retrying: 1, Failed: 1, Resolved: 4,
			ByType: map[domain.ErrorKind]int{domain.KindCalendarFetch: 1, "ODD_KIND": 1}},
		Pending: []domain.TrackedError{
			{ID: "e1", ListingID: "l1", ListingTitle: "Beach Loft", Kind: domain.KindCalendarFetch,
				Message: "calendar timeout", Status: domain.StatusPending, MaxRetries: 3, CreatedAt: &created},
			{ID: "e2", ListingID: "l2", ListingTitle: "Mountain Cabin", Kind: "ODD_KIND",
				Message: "unexpected payload", Status: domain.StatusRetrying, RetryCount: 1, MaxRetries: 3, CreatedAt: &created},
		},
		Issues: []domain.ListingIssue{{
			Listing:      domain.Listing{ID: "l1", Title: "Beach Loft", Location: "Miami"},
			Completeness: domain.Completeness{Calendar: 80, Market: 40, AI: 10},
			MissingData:  domain.MissingData{Prices: 3},
		}},
		Incomplete: []domain.IncompleteListing{
			{ID: "l3", Title: "Lake House", AirbnbURL: "https://airbnb.example.com/rooms/3", AnalysisCount: 4},
		},
		LoadedAt: testTime,
	}
}

func testConsole(snap console.Snapshot) *mocks.ConsoleMock {
	return &mocks.ConsoleMock{
		SnapshotFunc:          func() console.Snapshot { return snap },
		LoadFunc:              func(ctx context.Context) (console.Snapshot, error) { return snap, nil },
		IsInFlightFunc:        func(id string) bool { return false },
		IsListingInFlightFunc: func(listingID string) bool { return false },
		BulkInProgressFunc:    func() bool { return false },
	}
}

func testJournal(entries ...domain.CommandEntry) *mocks.JournalReaderMock {
	return &mocks.JournalReaderMock{
		RecentFunc: func(ctx context.Context, limit int) ([]domain.CommandEntry, error) {
			return entries, nil
		},
		ForTargetFunc: func(ctx context.Context, targetID string, limit int) ([]domain.CommandEntry, error) {
			var res []domain.CommandEntry
			for _, e := range entries {
				if e.TargetID == targetID {
					res = append(res, e)
				}
			}
			return res, nil
		},
	}
}

// testServer creates a server instance using the actual New function
func testServer(t *testing.T, cfg ConfigProvider, cons Console, pricing Pricing, journal JournalReader) *Server {
	t.Helper()
	return New(cfg, cons, pricing, journal, "test", false)
}

// serve runs the request through the full router with middleware
func serve(srv *Server, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	return w
}

func TestServer_New(t *testing.T) {
	srv := New(testConfig("http://backend.example.com", false), testConsole(testSnapshot()),
		&mocks.PricingMock{}, testJournal(), "1.0.0", true)
	require.NotNil(t, srv)
	assert.Equal(t, "1.0.0", srv.version)
	assert.True(t, srv.debug)
	assert.Nil(t, srv.proxy, "proxy is off unless configured")
	assert.Len(t, srv.pageTemplates, 4)
	for _, name := range []string{"console-body", "alert", "completeness", "chunk-table", "analysis-chunks", "journal"} {
		assert.NotNil(t, srv.templates.Lookup(name), name)
	}
}

func TestServer_Run(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	cfg := testConfig("http://backend.example.com", false)
	cfg.GetServerConfigFunc = func() (string, time.Duration) {
		return fmt.Sprintf("127.0.0.1:%d", port), 30 * time.Second
	}
	srv := testServer(t, cfg, testConsole(testSnapshot()), &mocks.PricingMock{}, testJournal())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port))
		return err == nil
	}, 2*time.Second, 20*time.Millisecond)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_statusHandler(t *testing.T) {
	cons := testConsole(testSnapshot())
	cons.BulkInProgressFunc = func() bool { return true }
	srv := testServer(t, testConfig("http://backend.example.com", false), cons, &mocks.PricingMock{}, testJournal())

	w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/status", http.NoBody))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp struct {
		Status  string `json:"status"`
		Version string `json:"version"`
		Proxy   bool   `json:"proxy"`
		Console struct {
			LoadedAt   time.Time `json:"loaded_at"`
			Pending    int       `json:"pending"`
			Issues     int       `json:"issues"`
			Incomplete int       `json:"incomplete"`
			Bulk       bool      `json:"bulk_in_progress"`
		} `json:"console"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "test", resp.Version)
	assert.False(t, resp.Proxy)
	assert.True(t, resp.Console.LoadedAt.Equal(testTime))
	assert.Equal(t, 2, resp.Console.Pending)
	assert.Equal(t, 1, resp.Console.Issues)
	assert.Equal(t, 1, resp.Console.Incomplete)
	assert.True(t, resp.Console.Bulk)
}

func TestServer_StaticFiles(t *testing.T) {
	srv := testServer(t, testConfig("http://backend.example.com", false), testConsole(testSnapshot()),
		&mocks.PricingMock{}, testJournal())

	w := serve(srv, httptest.NewRequest(http.MethodGet, "/static/style.css", http.NoBody))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/css")
	assert.Contains(t, w.Body.String(), ".error-card")

	w = serve(srv, httptest.NewRequest(http.MethodGet, "/static/missing.css", http.NoBody))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_Proxy(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"path":   r.URL.Path,
			"query":  r.URL.RawQuery,
			"method": r.Method,
			"auth":   r.Header.Get("Authorization"),
		})
	}))
	defer backend.Close()

	srv := testServer(t, testConfig(backend.URL, true), testConsole(testSnapshot()), &mocks.PricingMock{}, testJournal())
	require.NotNil(t, srv.proxy)

	t.Run("prefix stripped", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/pricing/errors/e1/resolve?x=1", http.NoBody)
		req.Header.Set("Authorization", "Bearer abc")
		w := serve(srv, req)
		require.Equal(t, http.StatusOK, w.Code)

		var got map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "/pricing/errors/e1/resolve", got["path"])
		assert.Equal(t, "x=1", got["query"])
		assert.Equal(t, http.MethodPost, got["method"])
		assert.Equal(t, "Bearer abc", got["auth"])
	})

	t.Run("own api is not proxied", func(t *testing.T) {
		w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/status", http.NoBody))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
	})
}

func TestServer_ProxyBackendDown(t *testing.T) {
	backend := httptest.NewServer(http.NotFoundHandler())
	backendURL := backend.URL
	backend.Close()

	srv := testServer(t, testConfig(backendURL, true), testConsole(testSnapshot()), &mocks.PricingMock{}, testJournal())

	w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/pricing/audit", http.NoBody))
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.JSONEq(t, `{"error":"Backend server unavailable"}`, w.Body.String())
}

func TestNewBackendProxy(t *testing.T) {
	_, err := newBackendProxy("/relative")
	require.Error(t, err)

	_, err = newBackendProxy("://bad")
	require.Error(t, err)

	proxy, err := newBackendProxy("https://backend.example.com")
	require.NoError(t, err)
	assert.NotNil(t, proxy)
}

func TestServer_consoleJSONHandler(t *testing.T) {
	snap := testSnapshot()
	cons := testConsole(snap)
	srv := testServer(t, testConfig("http://backend.example.com", false), cons, &mocks.PricingMock{}, testJournal())

	w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/console", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)
	var got console.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got.Pending, 2)
	assert.Equal(t, "e1", got.Pending[0].ID)
	assert.Empty(t, cons.LoadCalls(), "plain read uses the last snapshot")

	w = serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/console?refresh=true", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, cons.LoadCalls(), 1)

	cons.LoadFunc = func(ctx context.Context) (console.Snapshot, error) {
		return console.Snapshot{}, fmt.Errorf("get error summary: %w", assert.AnError)
	}
	w = serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/console?refresh=true", http.NoBody))
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "get error summary")
}

func TestServer_journalJSONHandler(t *testing.T) {
	entries := []domain.CommandEntry{
		{ID: "c1", Action: domain.ActionResolve, TargetID: "e1", Success: true, CreatedAt: testTime},
		{ID: "c2", Action: domain.ActionFixCalendars, Success: false, Message: "boom", CreatedAt: testTime},
	}
	journal := testJournal(entries...)
	srv := testServer(t, testConfig("http://backend.example.com", false), testConsole(testSnapshot()),
		&mocks.PricingMock{}, journal)

	t.Run("recent with default limit", func(t *testing.T) {
		w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/journal", http.NoBody))
		require.Equal(t, http.StatusOK, w.Code)
		var got []domain.CommandEntry
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Len(t, got, 2)
		assert.Equal(t, 20, journal.RecentCalls()[0].Limit)
	})

	t.Run("by target with limit", func(t *testing.T) {
		w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/journal?target=e1&limit=5", http.NoBody))
		require.Equal(t, http.StatusOK, w.Code)
		var got []domain.CommandEntry
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, domain.ActionResolve, got[0].Action)
		calls := journal.ForTargetCalls()
		assert.Equal(t, "e1", calls[len(calls)-1].TargetID)
		assert.Equal(t, 5, calls[len(calls)-1].Limit)
	})

	t.Run("empty journal is an empty list", func(t *testing.T) {
		w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/journal?target=nobody", http.NoBody))
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("journal failure", func(t *testing.T) {
		journal.RecentFunc = func(ctx context.Context, limit int) ([]domain.CommandEntry, error) {
			return nil, assert.AnError
		}
		w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/journal", http.NoBody))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
