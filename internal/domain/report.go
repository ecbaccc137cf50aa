package domain

// Documented report statuses. Stored as open strings; the service never
// rejects values outside this set.
const (
	ReportStatusPendingReview = "Pending Review"
	ReportStatusInProgress    = "In Progress"
	ReportStatusResolved      = "Resolved"
)

// Documented severities: Critical, High, Medium, Low.
const (
	ReportSeverityCritical = "Critical"
	ReportSeverityHigh     = "High"
)

// Report is a citizen- or official-submitted record describing a
// water-related incident. Dates are YYYY-MM-DD strings; DateReported is set
// once at creation, LastUpdated is refreshed on every mutation. Tags is an
// opaque comma-separated string owned by the caller.
type Report struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Details      string   `json:"details"`
	Type         string   `json:"type"`
	Severity     string   `json:"severity"`
	Status       string   `json:"status"`
	Location     string   `json:"location"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	Reporter     string   `json:"reporter"`
	DateReported string   `json:"dateReported"`
	LastUpdated  string   `json:"lastUpdated"`
	Tags         string   `json:"tags"`
}

// ReportStats aggregates counts over the full report collection.
type ReportStats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Resolved   int `json:"resolved"`
	Critical   int `json:"critical"`
	High       int `json:"high"`
}
