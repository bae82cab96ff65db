package console

import (
	"fmt"

	"github.com/dnovakovic099/ai-pricing/pkg/domain"
)

// Tab is a section of the console
type Tab string

const (
	TabPending    Tab = "pending"
	TabIssues     Tab = "issues"
	TabIncomplete Tab = "incomplete"
)

// Tabs lists console sections in display order
var Tabs = []Tab{TabPending, TabIssues, TabIncomplete}

// ParseTab maps a query value to a tab, anything unknown opens the pending errors
func ParseTab(s string) Tab {
	switch Tab(s) {
	case TabIssues, TabIncomplete:
		return Tab(s)
	default:
		return TabPending
	}
}

// TabLabel returns the tab caption with the number of rows it holds
func (s Snapshot) TabLabel(tab Tab) string {
	switch tab {
	case TabIssues:
		return fmt.Sprintf("Listings with Issues (%d)", len(s.Issues))
	case TabIncomplete:
		return fmt.Sprintf("Missing Calendars (%d)", len(s.Incomplete))
	default:
		return fmt.Sprintf("Pending Errors (%d)", len(s.Pending))
	}
}

// SummaryCard is one counter tile above the tabs
type SummaryCard struct {
	Label string
	Count int
	Class string
}

// SummaryCards returns the counter tiles built from the error summary
func (s Snapshot) SummaryCards() []SummaryCard {
	return []SummaryCard{
		{Label: "Pending", Count: s.Summary.Pending, Class: StatusClass(domain.StatusPending)},
		{Label: "Retrying", Count: s.Summary.Retrying, Class: StatusClass(domain.StatusRetrying)},
		{Label: "Failed", Count: s.Summary.Failed, Class: StatusClass(domain.StatusFailed)},
		{Label: "Resolved", Count: s.Summary.Resolved, Class: StatusClass(domain.StatusResolved)},
	}
}

// FallbackIcon marks error kinds the dashboard has no icon for
const FallbackIcon = "❌"

var kindLabels = map[domain.ErrorKind]string{
	domain.KindCalendarFetch:   "Calendar Fetch",
	domain.KindCompetitorFetch: "Competitor Fetch",
	domain.KindPriceFetch:      "Price Fetch",
	domain.KindListingData:     "Listing Data",
	domain.KindMarketData:      "Market Data",
	domain.KindAISuggestion:    "AI Suggestion",
	domain.KindValidation:      "Validation",
}

var kindIcons = map[domain.ErrorKind]string{
	domain.KindCalendarFetch:   "📅",
	domain.KindCompetitorFetch: "🏠",
	domain.KindPriceFetch:      "💰",
	domain.KindListingData:     "📋",
	domain.KindMarketData:      "📊",
	domain.KindAISuggestion:    "🤖",
	domain.KindValidation:      "⚠️",
}

// KindLabel returns the human label of an error kind, the raw kind for unknown ones
func KindLabel(k domain.ErrorKind) string {
	if label, ok := kindLabels[k]; ok {
		return label
	}
	if k == "" {
		return "Unknown"
	}
	return string(k)
}

// KindIcon returns the icon of an error kind, FallbackIcon for unknown ones
func KindIcon(k domain.ErrorKind) string {
	if icon, ok := kindIcons[k]; ok {
		return icon
	}
	return FallbackIcon
}

// StatusClass returns the css class of a status badge
func StatusClass(s domain.ErrorStatus) string {
	switch s {
	case domain.StatusPending:
		return "status-pending"
	case domain.StatusRetrying:
		return "status-retrying"
	case domain.StatusFailed:
		return "status-failed"
	case domain.StatusResolved:
		return "status-resolved"
	case domain.StatusIgnored:
		return "status-ignored"
	default:
		return "status-unknown"
	}
}

// StatusLabel returns the badge text of a status
func StatusLabel(s domain.ErrorStatus) string {
	if s == "" || !s.Known() {
		return "UNKNOWN"
	}
	return string(s)
}
