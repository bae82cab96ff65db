package server

import (
	"log"
	"net/http"
	"strings"

	"github.com/dnovakovic099/ai-pricing/pkg/domain"
	"github.com/dnovakovic099/ai-pricing/pkg/feed"
)

// rssErrorsHandler serves pending errors as RSS, ?kind= limits the feed to one error kind
func (s *Server) rssErrorsHandler(w http.ResponseWriter, r *http.Request) {
	kind := domain.ErrorKind(strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("kind"))))

	snap := s.console.Snapshot()
	if snap.LoadedAt.IsZero() {
		loaded, err := s.console.Load(r.Context())
		if err != nil {
			log.Printf("[ERROR] failed to load errors for RSS: %v", err)
			http.Error(w, "Failed to generate RSS feed", http.StatusBadGateway)
			return
		}
		snap = loaded
	}

	generator := feed.NewGenerator(s.config.GetFullConfig().Server.BaseURL)
	rss, err := generator.GenerateRSS(snap.Pending, kind)
	if err != nil {
		log.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		log.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}
