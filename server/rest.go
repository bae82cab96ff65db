package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/dnovakovic099/ai-pricing/pkg/domain"
)

// statusHandler returns server status along with the age of the console snapshot
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	snap := s.console.Snapshot()
	status := map[string]any{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
		"proxy":   s.proxy != nil,
		"console": map[string]any{
			"loaded_at":        snap.LoadedAt,
			"pending":          len(snap.Pending),
			"issues":           len(snap.Issues),
			"incomplete":       len(snap.Incomplete),
			"bulk_in_progress": s.console.BulkInProgress(),
		},
	}
	renderJSON(w, r, http.StatusOK, status)
}

// consoleJSONHandler returns the last console snapshot, ?refresh=true reloads it first
func (s *Server) consoleJSONHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("refresh") == "true" {
		snap, err := s.console.Load(r.Context())
		if err != nil {
			log.Printf("[WARN] console reload failed: %v", err)
			renderError(w, r, err, http.StatusBadGateway)
			return
		}
		renderJSON(w, r, http.StatusOK, snap)
		return
	}
	renderJSON(w, r, http.StatusOK, s.console.Snapshot())
}

// journalJSONHandler returns recent operator commands, ?target= limits them to one error or listing
func (s *Server) journalJSONHandler(w http.ResponseWriter, r *http.Request) {
	limit := s.config.GetConsoleConfig().JournalLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = min(l, 500)
		}
	}

	var entries []domain.CommandEntry
	var err error
	if target := r.URL.Query().Get("target"); target != "" {
		entries, err = s.journal.ForTarget(r.Context(), target, limit)
	} else {
		entries, err = s.journal.Recent(r.Context(), limit)
	}
	if err != nil {
		log.Printf("[ERROR] failed to read command journal: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []domain.CommandEntry{}
	}
	renderJSON(w, r, http.StatusOK, entries)
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
