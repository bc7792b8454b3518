package domain

import "time"

// Status is the persisted result of a Planif-Neige run.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// FetchMetadata is the sibling status document written after every
// Planif-Neige run.
type FetchMetadata struct {
	LastUpdate  string `json:"last_update"`
	FromDate    string `json:"from_date,omitempty"`
	RecordCount *int   `json:"record_count,omitempty"`
	Status      Status `json:"status"`
	Error       string `json:"error,omitempty"`
}

// OutcomeKind separates "no new data" from success with rows and from failure.
type OutcomeKind string

const (
	OutcomeSuccess OutcomeKind = "success"
	OutcomeEmpty   OutcomeKind = "empty"
	OutcomeError   OutcomeKind = "error"
)

// FetchOutcome describes how a single pipeline run ended.
type FetchOutcome struct {
	Pipeline    string
	RunID       string
	Kind        OutcomeKind
	RecordCount int
	FromDate    string
	Err         error
	Retryable   bool
	At          time.Time
}

// ErrorMessage returns the error text or an empty string.
func (o *FetchOutcome) ErrorMessage() string {
	if o.Err == nil {
		return ""
	}
	return o.Err.Error()
}
