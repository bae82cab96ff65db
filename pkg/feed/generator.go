package feed

import (
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/dnovakovic099/ai-pricing/pkg/domain"
)

// Generator creates RSS feeds of tracked errors
type Generator struct {
	baseURL string
	now     func() time.Time
}

// NewGenerator creates a new feed generator, links in the feed point to baseURL
func NewGenerator(baseURL string) *Generator {
	return &Generator{
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}
}

// GenerateRSS creates an RSS 2.0 feed of errors. A non-empty kind limits the feed
// to errors of that kind.
func (g *Generator) GenerateRSS(errs []domain.TrackedError, kind domain.ErrorKind) (string, error) {
	title := "Pricing Dashboard - Pending Errors"
	selfLink := g.baseURL + "/rss/errors"
	if kind != "" {
		title = fmt.Sprintf("Pricing Dashboard - Pending Errors (%s)", kind)
		selfLink += "?kind=" + url.QueryEscape(string(kind))
	}

	rssItems := make([]*RSSItem, 0, len(errs))
	for _, e := range errs {
		if kind != "" && e.Kind != kind {
			continue
		}
		rssItems = append(rssItems, g.convertToRSSItem(e))
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         title,
			Link:          g.baseURL + "/errors",
			Description:   fmt.Sprintf("Data collection errors awaiting remediation: %d", len(rssItems)),
			AtomLink:      &AtomLink{Href: selfLink, Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: g.now().Format(time.RFC1123Z),
			Items:         rssItems,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}
	return xml.Header + string(output), nil
}

// convertToRSSItem makes a feed item of an error. The guid changes with the status and
// retry count, so readers show an error again once it moves.
func (g *Generator) convertToRSSItem(e domain.TrackedError) *RSSItem {
	listing := e.ListingTitle
	if listing == "" {
		listing = e.ListingID
	}

	desc := fmt.Sprintf("Status: %s, retries %d/%d", e.Status, e.RetryCount, e.MaxRetries)
	if e.NextRetryAt != nil {
		desc += "\nNext retry: " + e.NextRetryAt.UTC().Format(time.RFC1123Z)
	}
	if e.Date != nil {
		desc += "\nDate: " + e.Date.UTC().Format(time.DateOnly)
	}
	if e.Message != "" {
		desc += "\n\n" + e.Message
	}

	pubDate := g.now()
	switch {
	case e.CreatedAt != nil:
		pubDate = *e.CreatedAt
	case e.Date != nil:
		pubDate = *e.Date
	}

	return &RSSItem{
		Title:       fmt.Sprintf("[%s] %s", e.Kind, listing),
		Link:        g.baseURL + "/listing/" + url.PathEscape(e.ListingID) + "?tab=errors",
		GUID:        fmt.Sprintf("%s-%s-%d", e.ID, e.Status, e.RetryCount),
		Description: desc,
		PubDate:     pubDate.Format(time.RFC1123Z),
		Categories:  []string{string(e.Kind), string(e.Status)},
	}
}
