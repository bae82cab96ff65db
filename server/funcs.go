package server

import (
	"errors"
	"fmt"
	"html/template"

	"github.com/dnovakovic099/ai-pricing/pkg/console"
	"github.com/dnovakovic099/ai-pricing/pkg/domain"
)

// templateFuncs returns helpers available to all templates
func (s *Server) templateFuncs() template.FuncMap {
	return template.FuncMap{
		"kindLabel":   console.KindLabel,
		"kindIcon":    console.KindIcon,
		"statusClass": console.StatusClass,
		"statusLabel": console.StatusLabel,
		"inFlight": func(id string) bool {
			return s.console != nil && s.console.IsInFlight(id)
		},
		"money":         formatMoney,
		"percent":       func(v float64) string { return fmt.Sprintf("%.0f%%", v) },
		"pricePosition": func(c domain.Chunk) float64 { return c.PricePosition() },
		"formatTime":    formatTime,
		"dict":          dict,
		"width":         func(v float64) template.CSS { return template.CSS(fmt.Sprintf("width: %.0f%%", v)) }, //nolint:gosec // numeric only
	}
}

// dict builds a map from key/value pairs, for passing several values to a sub-template
func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, errors.New("dict expects key/value pairs")
	}
	res := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict key %v is not a string", pairs[i])
		}
		res[key] = pairs[i+1]
	}
	return res, nil
}

// formatMoney renders a price, zero is shown as missing
func formatMoney(v float64) string {
	if v == 0 {
		return "—"
	}
	return fmt.Sprintf("$%.0f", v)
}
