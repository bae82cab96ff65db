package feed

import (
	"strings"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnovakovic099/ai-pricing/pkg/domain"
)

func testErrors() []domain.TrackedError {
	created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	next := created.Add(2 * time.Hour)
	return []domain.TrackedError{
		{ID: "e1", ListingID: "l1", ListingTitle: "Beach House", Kind: domain.KindCalendarFetch,
			Message: "calendar request timed out", Status: domain.StatusRetrying, RetryCount: 1, MaxRetries: 3,
			NextRetryAt: &next, CreatedAt: &created},
		{ID: "e2", ListingID: "l 2", Kind: domain.KindAISuggestion, Message: "model quota exceeded",
			Status: domain.StatusFailed, RetryCount: 4, MaxRetries: 3, Date: &created},
	}
}

func TestGenerator_GenerateRSS(t *testing.T) {
	generator := NewGenerator("https://dash.example.com")

	t.Run("all pending errors", func(t *testing.T) {
		rss, err := generator.GenerateRSS(testErrors(), "")
		require.NoError(t, err)

		assert.Contains(t, rss, `<?xml version="1.0" encoding="UTF-8"?>`)
		assert.Contains(t, rss, `<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">`)
		assert.Contains(t, rss, `<title>Pricing Dashboard - Pending Errors</title>`)
		assert.Contains(t, rss, `<link>https://dash.example.com/errors</link>`)
		assert.Contains(t, rss, `href="https://dash.example.com/rss/errors"`)

		feed, err := gofeed.NewParser().ParseString(rss)
		require.NoError(t, err)
		assert.Equal(t, "Pricing Dashboard - Pending Errors", feed.Title)
		require.Len(t, feed.Items, 2)

		first := feed.Items[0]
		assert.Equal(t, "[CALENDAR_FETCH] Beach House", first.Title)
		assert.Equal(t, "https://dash.example.com/listing/l1?tab=errors", first.Link)
		assert.Equal(t, "e1-RETRYING-1", first.GUID)
		assert.Contains(t, first.Description, "Status: RETRYING, retries 1/3")
		assert.Contains(t, first.Description, "Next retry:")
		assert.Contains(t, first.Description, "calendar request timed out")
		assert.Equal(t, []string{"CALENDAR_FETCH", "RETRYING"}, first.Categories)
		require.NotNil(t, first.PublishedParsed)
		assert.True(t, first.PublishedParsed.Equal(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)))

		second := feed.Items[1]
		assert.Equal(t, "[AI_SUGGESTION] l 2", second.Title, "listing id used without a title")
		assert.Equal(t, "https://dash.example.com/listing/l%202?tab=errors", second.Link)
		assert.Contains(t, second.Description, "Date: 2024-06-01")
	})

	t.Run("filtered by kind", func(t *testing.T) {
		rss, err := generator.GenerateRSS(testErrors(), domain.KindAISuggestion)
		require.NoError(t, err)

		feed, err := gofeed.NewParser().ParseString(rss)
		require.NoError(t, err)
		assert.Equal(t, "Pricing Dashboard - Pending Errors (AI_SUGGESTION)", feed.Title)
		require.Len(t, feed.Items, 1)
		assert.Equal(t, "e2-FAILED-4", feed.Items[0].GUID)
		assert.Contains(t, rss, `href="https://dash.example.com/rss/errors?kind=AI_SUGGESTION"`)
	})

	t.Run("empty items", func(t *testing.T) {
		rss, err := generator.GenerateRSS(nil, "")
		require.NoError(t, err)
		assert.Contains(t, rss, `<channel>`)
		assert.NotContains(t, rss, `<item>`)
		assert.Contains(t, rss, "awaiting remediation: 0")
	})

	t.Run("trailing slash in base URL", func(t *testing.T) {
		gen := NewGenerator("https://dash.example.com/")
		rss, err := gen.GenerateRSS(testErrors()[:1], "")
		require.NoError(t, err)
		assert.NotContains(t, rss, "https://dash.example.com//")
	})
}

func TestGenerator_SpecialCharacters(t *testing.T) {
	generator := NewGenerator("https://dash.example.com")
	errs := []domain.TrackedError{{ID: "e1", ListingID: "l1", ListingTitle: "Tom & Jerry's <Loft>",
		Kind: domain.KindValidation, Message: "price < 0 & > max", Status: domain.StatusPending}}

	rss, err := generator.GenerateRSS(errs, "")
	require.NoError(t, err)
	assert.Contains(t, rss, "Tom &amp; Jerry&#39;s &lt;Loft&gt;")
	assert.False(t, strings.Contains(rss, "<Loft>"))

	feed, err := gofeed.NewParser().ParseString(rss)
	require.NoError(t, err)
	require.Len(t, feed.Items, 1)
	assert.Equal(t, "[VALIDATION] Tom & Jerry's <Loft>", feed.Items[0].Title)
}

func TestGenerator_PubDateFallsBackToNow(t *testing.T) {
	generator := NewGenerator("https://dash.example.com")
	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	generator.now = func() time.Time { return fixed }

	item := generator.convertToRSSItem(domain.TrackedError{ID: "e1", ListingID: "l1", Status: domain.StatusPending})
	assert.Equal(t, fixed.Format(time.RFC1123Z), item.PubDate)
	assert.Equal(t, "Status: PENDING, retries 0/0", item.Description)
}
