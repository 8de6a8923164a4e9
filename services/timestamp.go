package services

import (
	"log"
	"strings"
	"time"
)

// InvalidDateUTC is the utc value reported for strings that are not dates
const InvalidDateUTC = "Invalid Date"

// TimestampResult is the response body of the timestamp API.
// Unix is nil exactly when UTC is InvalidDateUTC.
type TimestampResult struct {
	Unix *int64 `json:"unix"`
	UTC  string `json:"utc"`
}

// IsValid reports whether the result describes a real instant
func (r TimestampResult) IsValid() bool {
	return r.Unix != nil
}

// InvalidResult returns the sentinel result for unparseable input
func InvalidResult() TimestampResult {
	return TimestampResult{Unix: nil, UTC: InvalidDateUTC}
}

// NewTimestampResult builds the result for an instant
func NewTimestampResult(t time.Time) TimestampResult {
	ms := t.UnixMilli()
	return TimestampResult{Unix: &ms, UTC: FormatUTC(t)}
}

// Resolver turns optional date strings into timestamp results.
// It holds no per-request state and is safe for concurrent use.
type Resolver struct {
	// Debug logs parse failures; the result is the same either way
	Debug   bool
	Now     func() time.Time
	Metrics *Metrics
}

// NewResolver creates a resolver backed by the wall clock
func NewResolver(debug bool, metrics *Metrics) *Resolver {
	return &Resolver{
		Debug:   debug,
		Now:     time.Now,
		Metrics: metrics,
	}
}

// Resolve returns the result for dateString, or for the current instant when
// dateString is empty. Parse failures are reported through the result, never
// as an error.
func (r *Resolver) Resolve(dateString string) TimestampResult {
	if strings.TrimSpace(dateString) == "" {
		r.Metrics.RecordResolution(OutcomeNow)
		return NewTimestampResult(r.now())
	}

	t, err := ParseDate(dateString)
	if err != nil {
		if r.Debug {
			log.Printf("[DEBUG] %v", err)
		}
		r.Metrics.RecordResolution(OutcomeInvalid)
		return InvalidResult()
	}

	r.Metrics.RecordResolution(OutcomeParsed)
	return NewTimestampResult(t)
}

func (r *Resolver) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}
