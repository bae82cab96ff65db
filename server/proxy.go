package server

import (
	"fmt"
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"
)

// newBackendProxy forwards requests to the pricing backend. The caller strips the /api
// prefix, so /api/pricing/audit arrives at {backend}/pricing/audit.
func newBackendProxy(backendURL string) (*httputil.ReverseProxy, error) {
	target, err := url.Parse(backendURL)
	if err != nil {
		return nil, fmt.Errorf("parse backend url: %w", err)
	}
	if target.Scheme == "" || target.Host == "" {
		return nil, fmt.Errorf("backend url %q is not absolute", backendURL)
	}

	return &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.SetXForwarded()
			log.Printf("[DEBUG] proxy %s %s -> %s", pr.In.Method, pr.In.URL.RequestURI(), pr.Out.URL)
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			log.Printf("[WARN] proxy %s %s failed: %v", r.Method, r.URL.Path, err)
			renderJSON(w, r, http.StatusBadGateway, map[string]string{"error": "Backend server unavailable"})
		},
	}, nil
}
