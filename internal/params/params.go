// Package params parses the loosely typed query-string values of the API
// (dates, ranges) into explicit values and collects field-level validation
// errors.
package params

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// ValidationError maps a query parameter name to what is wrong with it.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid parameters: " + strings.Join(parts, "; ")
}

// Add records the first problem reported for a field.
func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = msg
	}
}

// Err returns nil when nothing was recorded.
func (e *ValidationError) Err() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

// Invalid builds a single-field ValidationError.
func Invalid(field, msg string) error {
	v := &ValidationError{}
	v.Add(field, msg)
	return v
}

const DateLayout = "2006-01-02"

var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

// ParseTime accepts YYYY-MM-DD, "YYYY-MM-DD HH:MM[:SS]" or RFC 3339.
// Values without an offset are read in loc. dateOnly reports the first form.
func ParseTime(s string, loc *time.Location) (t time.Time, dateOnly bool, err error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(DateLayout, s, loc); err == nil {
		return t, true, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, false, nil
		}
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.In(loc), false, nil
	}
	return time.Time{}, false, fmt.Errorf("cannot parse %q as a date", s)
}

// DateRange is a closed interval [Start, End] of order times.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the range, bounds included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// WholeDays widens the range to cover every calendar day it touches in loc.
func (r DateRange) WholeDays(loc *time.Location) DateRange {
	s, e := r.Start.In(loc), r.End.In(loc)
	return DateRange{
		Start: time.Date(s.Year(), s.Month(), s.Day(), 0, 0, 0, 0, loc),
		End:   time.Date(e.Year(), e.Month(), e.Day()+1, 0, 0, 0, 0, loc).Add(-time.Microsecond),
	}
}

// ParseDateRange validates a start_date/end_date pair.
//
// When required is false and either value is missing the range is not applied
// and (nil, nil) is returned. A date-only end value covers the whole day.
func ParseDateRange(start, end string, loc *time.Location, required bool) (*DateRange, error) {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if !required && (start == "" || end == "") {
		return nil, nil
	}

	verr := &ValidationError{}
	if start == "" {
		verr.Add("start_date", "is required")
	}
	if end == "" {
		verr.Add("end_date", "is required")
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}

	from, _, err := ParseTime(start, loc)
	if err != nil {
		verr.Add("start_date", "must be a date (YYYY-MM-DD) or a timestamp")
	}
	to, dateOnly, err := ParseTime(end, loc)
	if err != nil {
		verr.Add("end_date", "must be a date (YYYY-MM-DD) or a timestamp")
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}

	if dateOnly {
		to = to.AddDate(0, 0, 1).Add(-time.Microsecond)
	}
	if to.Before(from) {
		return nil, Invalid("end_date", "must be on or after start_date")
	}
	return &DateRange{Start: from, End: to}, nil
}
