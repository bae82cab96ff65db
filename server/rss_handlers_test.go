package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnovakovic099/ai-pricing/pkg/console"
	"github.com/dnovakovic099/ai-pricing/server/mocks"
)

func TestServer_rssErrorsHandler(t *testing.T) {
	cons := testConsole(testSnapshot())
	srv := testServer(t, testConfig("http://backend.example.com", false), cons, &mocks.PricingMock{}, testJournal())

	t.Run("all pending errors", func(t *testing.T) {
		w := serve(srv, httptest.NewRequest(http.MethodGet, "/rss/errors", http.NoBody))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/rss+xml; charset=utf-8", w.Header().Get("Content-Type"))

		feed, err := gofeed.NewParser().ParseString(w.Body.String())
		require.NoError(t, err)
		assert.Equal(t, "Pricing Dashboard - Pending Errors", feed.Title)
		require.Len(t, feed.Items, 2)
		assert.Equal(t, "[CALENDAR_FETCH] Beach Loft", feed.Items[0].Title)
		assert.Equal(t, "http://dash.example.com/listing/l1?tab=errors", feed.Items[0].Link)
		assert.Equal(t, "[ODD_KIND] Mountain Cabin", feed.Items[1].Title)
		assert.Empty(t, cons.LoadCalls(), "loaded snapshot is reused")
	})

	t.Run("kind filter is case insensitive", func(t *testing.T) {
		w := serve(srv, httptest.NewRequest(http.MethodGet, "/rss/errors?kind=calendar_fetch", http.NoBody))
		require.Equal(t, http.StatusOK, w.Code)

		feed, err := gofeed.NewParser().ParseString(w.Body.String())
		require.NoError(t, err)
		assert.Equal(t, "Pricing Dashboard - Pending Errors (CALENDAR_FETCH)", feed.Title)
		require.Len(t, feed.Items, 1)
		assert.Equal(t, "[CALENDAR_FETCH] Beach Loft", feed.Items[0].Title)
	})
}

func TestServer_rssErrorsHandler_Load(t *testing.T) {
	cons := testConsole(console.Snapshot{})
	loaded := testSnapshot()
	cons.LoadFunc = func(ctx context.Context) (console.Snapshot, error) { return loaded, nil }
	srv := testServer(t, testConfig("http://backend.example.com", false), cons, &mocks.PricingMock{}, testJournal())

	w := serve(srv, httptest.NewRequest(http.MethodGet, "/rss/errors", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)
	feed, err := gofeed.NewParser().ParseString(w.Body.String())
	require.NoError(t, err)
	assert.Len(t, feed.Items, 2)
	assert.Len(t, cons.LoadCalls(), 1, "never loaded snapshot is fetched first")

	cons.LoadFunc = func(ctx context.Context) (console.Snapshot, error) { return console.Snapshot{}, assert.AnError }
	w = serve(srv, httptest.NewRequest(http.MethodGet, "/rss/errors", http.NoBody))
	assert.Equal(t, http.StatusBadGateway, w.Code)
}
