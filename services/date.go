package services

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	smithytime "github.com/aws/smithy-go/time"
)

// ErrInvalidDate is returned when a date string cannot be interpreted as an instant
var ErrInvalidDate = errors.New("invalid date")

// maxEpochMillis is the largest distance from the epoch a JavaScript Date can represent
const maxEpochMillis = 8_640_000_000_000_000

// ISO 8601 calendar dates, interpreted as UTC midnight
var isoDateLayouts = []string{
	"2006-01-02",
	"2006-01",
	"2006",
}

// ISO 8601 date-times not covered by smithytime.ParseDateTime
var isoDateTimeLayouts = []string{
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
}

// Best-effort formats commonly produced by people and by other runtimes
var commonLayouts = []string{
	time.RFC1123Z,
	time.RFC822,
	time.RFC822Z,
	time.UnixDate,
	"Mon Jan 02 2006 15:04:05 GMT-0700",
	"Mon Jan 02 2006",
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"2 January 2006",
	"2 Jan 2006",
	"2006/01/02",
	"2006/01/02 15:04:05",
	"01/02/2006",
	"01/02/2006 15:04:05",
}

// ParseDate interprets a date string the way a general-purpose date parser would.
// ISO 8601 input is always supported; the remaining formats are best effort.
// The returned time is in UTC.
func ParseDate(dateStr string) (time.Time, error) {
	value := strings.TrimSpace(dateStr)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty date string", ErrInvalidDate)
	}

	if t, ok := parseISO(value); ok {
		return t, nil
	}

	if t, ok := parseBareYear(value); ok {
		return t, nil
	}

	if t, err := smithytime.ParseHTTPDate(value); err == nil {
		return t.UTC(), nil
	}

	// Date.prototype.toString appends a parenthesised zone name
	if i := strings.Index(value, " ("); i > 0 && strings.HasSuffix(value, ")") {
		value = value[:i]
	}
	if t, ok := parseLayouts(value, commonLayouts); ok {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, dateStr)
}

// endOfDay matches the ISO 8601 "24:00" form, which denotes the next midnight
var endOfDay = regexp.MustCompile(`^(.+T)24:00(?::00(?:\.0+)?)?(Z|[+-]\d{2}:\d{2})?$`)

// parseISO handles ISO 8601 dates and date-times, including the expanded
// ±YYYYYY year form and 24:00 end of day.
func parseISO(value string) (time.Time, bool) {
	nextDay := false
	if m := endOfDay.FindStringSubmatch(value); m != nil {
		value = m[1] + "00:00:00" + m[2]
		nextDay = true
	}

	year, rest, expanded := splitExpandedYear(value)
	if expanded {
		value = rest
	}

	t, ok := parseISOLayouts(value)
	if !ok {
		return time.Time{}, false
	}

	if expanded {
		t = time.Date(year, t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	}
	if nextDay {
		t = t.Add(24 * time.Hour)
	}

	t = t.UTC()
	if !withinDateRange(t) {
		return time.Time{}, false
	}
	return t, true
}

// parseISOLayouts returns the parsed time in the zone given by the input
func parseISOLayouts(value string) (time.Time, bool) {
	for _, layout := range isoDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	if t, err := smithytime.ParseDateTime(value); err == nil {
		return t, true
	}
	for _, layout := range isoDateTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// splitExpandedYear replaces a leading ±YYYYYY year with a four digit year of
// the same leap-ness so the remainder can go through the regular layouts.
func splitExpandedYear(value string) (int, string, bool) {
	if len(value) < 7 || (value[0] != '+' && value[0] != '-') {
		return 0, "", false
	}
	if len(value) > 7 && value[7] != '-' {
		return 0, "", false
	}
	if !isDigits(value[1:7]) {
		return 0, "", false
	}

	year, err := strconv.Atoi(value[1:7])
	if err != nil {
		return 0, "", false
	}
	if value[0] == '-' {
		// -000000 is not a valid year
		if year == 0 {
			return 0, "", false
		}
		year = -year
	}

	placeholder := "2001"
	if isLeapYear(year) {
		placeholder = "2000"
	}
	return year, placeholder + value[7:], true
}

// parseBareYear reads five or six digit strings as a year, which is what
// general-purpose parsers do with them. Longer digit strings are rejected.
func parseBareYear(value string) (time.Time, bool) {
	if len(value) < 5 || len(value) > 6 || !isDigits(value) {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(value)
	if err != nil {
		return time.Time{}, false
	}

	t := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !withinDateRange(t) {
		return time.Time{}, false
	}
	return t, true
}

func withinDateRange(t time.Time) bool {
	ms := t.UnixMilli()
	return ms <= maxEpochMillis && ms >= -maxEpochMillis
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func parseLayouts(value string, layouts []string) (time.Time, bool) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// FormatUTC renders t in the RFC 1123 form with a literal GMT zone,
// e.g. "Sun, 20 Nov 2016 17:31:29 GMT".
func FormatUTC(t time.Time) string {
	return smithytime.FormatHTTPDate(t.UTC())
}
