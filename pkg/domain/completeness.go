package domain

import "time"

// Completeness holds the share of expected data points present for a listing, in percent
type Completeness struct {
	Calendar float64 `json:"calendar"`
	Market   float64 `json:"market"`
	AI       float64 `json:"ai"`
}

// Clamp bounds all percentages to [0,100]
func (c *Completeness) Clamp() {
	c.Calendar = clampPercent(c.Calendar)
	c.Market = clampPercent(c.Market)
	c.AI = clampPercent(c.AI)
}

// MissingData counts absent data points per category
type MissingData struct {
	Prices int `json:"prices"`
	Market int `json:"market"`
	AI     int `json:"ai"`
}

// Clamp drops negative counters to zero
func (m *MissingData) Clamp() {
	m.Prices = max(m.Prices, 0)
	m.Market = max(m.Market, 0)
	m.AI = max(m.AI, 0)
}

// Total returns the number of missing data points over all categories
func (m MissingData) Total() int {
	return m.Prices + m.Market + m.AI
}

// ListingCompleteness is the backend's completeness snapshot for one listing
type ListingCompleteness struct {
	ListingID     string       `json:"listingId"`
	Completeness  Completeness `json:"completeness"`
	MissingData   MissingData  `json:"missingData"`
	LastValidated *time.Time   `json:"lastValidated,omitempty"`
}

// Normalize clamps percentages and counters into their valid ranges
func (l *ListingCompleteness) Normalize() {
	l.Completeness.Clamp()
	l.MissingData.Clamp()
}

// ListingIssue is a listing with incomplete data, as returned by the issues endpoint
type ListingIssue struct {
	Listing       Listing      `json:"listing"`
	Completeness  Completeness `json:"completeness"`
	MissingData   MissingData  `json:"missingData"`
	LastValidated *time.Time   `json:"lastValidated,omitempty"`
}

// Normalize clamps percentages and counters into their valid ranges
func (l *ListingIssue) Normalize() {
	l.Completeness.Clamp()
	l.MissingData.Clamp()
}

// IncompleteListing has competitor data but no calendar or pricing data of its own
type IncompleteListing struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	AirbnbURL     string `json:"airbnb_url"`
	AnalysisCount int    `json:"analysis_count"`
}

// JobAck acknowledges a fire-and-forget backend job trigger
type JobAck struct {
	Message     string   `json:"message"`
	JobsStarted int      `json:"jobsStarted"`
	ListingIDs  []string `json:"listingIds,omitempty"`
}

// CommandResult is the backend answer to a state-changing command on errors or listings
type CommandResult struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Error   *TrackedError `json:"error,omitempty"`
	Retried int           `json:"retried,omitempty"`
}

func clampPercent(v float64) float64 {
	switch {
	case v != v: // NaN
		return 0
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}
