package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventReportCreated       EventType = "report_created"
	EventReportStatusChanged EventType = "report_status_changed"
	EventReportDeleted       EventType = "report_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ReportID  int64       `json:"report_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ReportCreatedPayload payload.
type ReportCreatedPayload struct {
	Title    string `json:"title"`
	Type     string `json:"report_type"`
	Severity string `json:"severity"`
	Status   string `json:"status"`
	Reporter string `json:"reporter"`
}

// ReportStatusChangedPayload payload.
type ReportStatusChangedPayload struct {
	OldStatus   string `json:"old_status"`
	NewStatus   string `json:"new_status"`
	OldSeverity string `json:"old_severity"`
	NewSeverity string `json:"new_severity"`
}

// ReportDeletedPayload payload.
type ReportDeletedPayload struct {
	Title string `json:"title"`
}
