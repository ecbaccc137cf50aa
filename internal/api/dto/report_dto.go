package dto

// CreateReportRequest payload.
type CreateReportRequest struct {
	Title        string   `json:"title"`
	Details      string   `json:"details"`
	Type         string   `json:"type"`
	Severity     string   `json:"severity"`
	Location     string   `json:"location"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	ReporterName string   `json:"reporterName"`
	Tags         string   `json:"tags"`
	Status       string   `json:"status"`
}

// UpdateReportRequest payload for full updates. Reporter and coordinates are
// not updatable through this endpoint.
type UpdateReportRequest struct {
	Title    string `json:"title"`
	Details  string `json:"details"`
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Status   string `json:"status"`
	Location string `json:"location"`
	Tags     string `json:"tags"`
}

// StatusUpdateRequest payload for partial status/severity updates.
type StatusUpdateRequest struct {
	Status   string `json:"status"`
	Severity string `json:"severity"`
}

// MessageResponse is the `{message}` body used by delete confirmations and
// error responses.
type MessageResponse struct {
	Message string `json:"message"`
}
