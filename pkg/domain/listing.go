package domain

import "time"

// Listing is a property tracked by the pricing backend
type Listing struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Location  string `json:"location,omitempty"`
	Bedrooms  int    `json:"bedrooms,omitempty"`
	Guests    int    `json:"guests,omitempty"`
	AirbnbURL string `json:"airbnbUrl,omitempty"`
	ImageURL  string `json:"imageUrl,omitempty"`
}

// GlobalCounts are totals over all listings in the aggregate audit
type GlobalCounts struct {
	TotalPricingAnalyses      int `json:"totalPricingAnalyses"`
	TotalCalendarDays         int `json:"totalCalendarDays"`
	TotalCompetitors          int `json:"totalCompetitors"`
	TotalDailyMarketSnapshots int `json:"totalDailyMarketSnapshots"`
	TotalAISuggestions        int `json:"totalAISuggestions"`
}

// AuditListing is a listing row of the aggregate audit
type AuditListing struct {
	Listing
	DataCounts struct {
		CalendarDays  int `json:"calendarDays"`
		AISuggestions int `json:"aiSuggestions"`
	} `json:"dataCounts"`
}

// Ready reports whether calendar data was collected for the listing
func (a AuditListing) Ready() bool {
	return a.DataCounts.CalendarDays > 0
}

// Audit is the aggregate data audit over all listings
type Audit struct {
	GlobalCounts GlobalCounts   `json:"globalCounts"`
	Listings     []AuditListing `json:"listings"`
}

// HasData reports whether any pipeline output exists yet
func (a Audit) HasData() bool {
	return a.GlobalCounts.TotalPricingAnalyses > 0 || a.GlobalCounts.TotalCalendarDays > 0
}

// Competitor is a comparable listing scraped for a chunk
type Competitor struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Bedrooms int     `json:"bedrooms"`
	ImageURL string  `json:"imageUrl,omitempty"`
}

// AIRecommendation is the AI price suggestion attached to a chunk
type AIRecommendation struct {
	RecommendedPrice float64 `json:"recommendedPrice"`
	LowPrice         float64 `json:"lowPrice"`
	HighPrice        float64 `json:"highPrice"`
	Reasoning        string  `json:"reasoning,omitempty"`
}

// Chunk is a date range over which competitor prices were scraped together
type Chunk struct {
	ID               string            `json:"id"`
	CheckIn          string            `json:"checkIn"`
	CheckOut         string            `json:"checkOut"`
	Nights           int               `json:"nights"`
	CompetitorCount  int               `json:"competitorCount"`
	AveragePrice     float64           `json:"averagePrice"`
	LowestPrice      float64           `json:"lowestPrice"`
	HighestPrice     float64           `json:"highestPrice"`
	UserPrice        float64           `json:"userPrice,omitempty"`
	Competitors      []Competitor      `json:"competitors,omitempty"`
	AIRecommendation *AIRecommendation `json:"aiRecommendation,omitempty"`
}

// PricePosition returns where the user's price sits within the competitor range
func (c Chunk) PricePosition() float64 {
	return PricePosition(c.UserPrice, c.LowestPrice, c.HighestPrice)
}

// CalendarDay is one day of a listing's own calendar
type CalendarDay struct {
	Date           string  `json:"date"`
	Price          float64 `json:"price"`
	IsAvailable    bool    `json:"isAvailable"`
	MarketMinPrice float64 `json:"marketMinPrice,omitempty"`
	MarketAvgPrice float64 `json:"marketAvgPrice,omitempty"`
	MarketMaxPrice float64 `json:"marketMaxPrice,omitempty"`
}

// MarketSnapshot is the daily market position of a listing for a target date
type MarketSnapshot struct {
	TargetDate       string  `json:"targetDate"`
	OurPrice         float64 `json:"ourPrice"`
	PredictedPrice   float64 `json:"predictedPrice,omitempty"`
	CompetitorMin    float64 `json:"competitorMin"`
	CompetitorAvg    float64 `json:"competitorAvg"`
	CompetitorMax    float64 `json:"competitorMax"`
	IsBooked         bool    `json:"isBooked"`
	DaysUntilCheckin int     `json:"daysUntilCheckin"`
}

// AISuggestion is a stored AI price suggestion for one date
type AISuggestion struct {
	Date             string  `json:"date"`
	RecommendedPrice float64 `json:"recommendedPrice"`
	LowPrice         float64 `json:"lowPrice"`
	HighPrice        float64 `json:"highPrice"`
	FinalPrice       float64 `json:"finalPrice,omitempty"`
	CompetitorMin    float64 `json:"competitorMin,omitempty"`
	CompetitorAvg    float64 `json:"competitorAvg,omitempty"`
	CompetitorMax    float64 `json:"competitorMax,omitempty"`
	DaysUntilCheckin int     `json:"daysUntilCheckin,omitempty"`
	Reasoning        string  `json:"reasoning,omitempty"`
	SpecialNotes     string  `json:"specialNotes,omitempty"`
	UserAction       string  `json:"userAction,omitempty"`
	BookingOutcome   string  `json:"bookingOutcome,omitempty"`
}

// ListingCounts are per-listing data point counts of the listing audit
type ListingCounts struct {
	CalendarDays     int `json:"calendarDays"`
	TotalCompetitors int `json:"totalCompetitors"`
	AISuggestions    int `json:"aiSuggestions"`
	MarketSnapshots  int `json:"marketSnapshots"`
	Analyses         int `json:"analyses"`
}

// ListingAudit is the per-listing data audit
type ListingAudit struct {
	Listing Listing `json:"listing"`
	Data    struct {
		CalendarDays    []CalendarDay    `json:"calendarDays"`
		Analyses        []Chunk          `json:"analyses"`
		MarketSnapshots []MarketSnapshot `json:"marketSnapshots"`
		AISuggestions   []AISuggestion   `json:"aiSuggestions"`
	} `json:"data"`
	Counts ListingCounts `json:"counts"`
}

// HasData reports whether calendar or chunk data exists for the listing
func (l ListingAudit) HasData() bool {
	return l.Counts.CalendarDays > 0 || l.Counts.Analyses > 0
}

// MarketListing is a listing row of the market-analysis report
type MarketListing struct {
	Listing

	ChunkCount        int       `json:"chunkCount"`
	TotalCompetitors  int       `json:"totalCompetitors"`
	AISuggestionCount int       `json:"aiSuggestionCount"`
	OverallAverage    float64   `json:"overallAverage"`
	OverallLowest     float64   `json:"overallLowest"`
	OverallHighest    float64   `json:"overallHighest"`
	OverallADR        float64   `json:"overallADR,omitempty"`
	WeekdayADR        float64   `json:"weekdayADR,omitempty"`
	ADRSource         string    `json:"adrSource,omitempty"`
	ReservationCount  int       `json:"reservationCount,omitempty"`
	BookedNightsCount int       `json:"bookedNightsCount,omitempty"`
	LastUpdated       time.Time `json:"lastUpdated,omitzero"`
	Chunks            []Chunk   `json:"chunks,omitempty"`
}

// MarketAnalysis is the market-analysis report, optionally scoped to a collection date
type MarketAnalysis struct {
	AvailableDates     []string        `json:"availableDates"`
	SelectedDate       string          `json:"selectedDate,omitempty"`
	LastRun            *time.Time      `json:"lastRun,omitempty"`
	TotalListings      int             `json:"totalListings"`
	TotalChunks        int             `json:"totalChunks"`
	TotalCompetitors   int             `json:"totalCompetitors"`
	TotalAISuggestions int             `json:"totalAISuggestions"`
	Listings           []MarketListing `json:"listings"`
}

// FindListing returns the report row for a listing id
func (m MarketAnalysis) FindListing(id string) (MarketListing, bool) {
	for _, l := range m.Listings {
		if l.ID == id {
			return l, true
		}
	}
	return MarketListing{}, false
}

// PricePosition returns the user's price as a percentage of the [low,high] range,
// clamped to [0,100]. Degenerate inputs sit in the middle.
func PricePosition(user, low, high float64) float64 {
	if user == 0 || low == 0 || high == 0 || low == high {
		return 50
	}
	return clampPercent((user - low) / (high - low) * 100)
}
