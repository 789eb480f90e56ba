package projection

import (
	"fmt"
	"strings"
	"time"
)

// Mode selects how verbose a formatted date is.
type Mode string

const (
	Full   Mode = "full"
	Medium Mode = "medium"
)

const (
	fullLayout   = "Monday January, 2, 2006 at 3:04PM"
	mediumLayout = "Mon 01, 02, 2006 3:04PM"
)

// inputLayouts are tried in order when parsing submitted date strings.
var inputLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05-07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// FormatDateTime renders t for display. A nil time renders as "". Unknown
// modes fall back to Medium.
func FormatDateTime(t *time.Time, mode Mode) string {
	if t == nil {
		return ""
	}
	if mode == Full {
		return t.Format(fullLayout)
	}
	return t.Format(mediumLayout)
}

// FormatDateTimeString parses value and renders it like FormatDateTime.
// Empty input renders as "".
func FormatDateTimeString(value string, mode Mode) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", nil
	}
	t, err := ParseDateTime(value)
	if err != nil {
		return "", err
	}
	return FormatDateTime(&t, mode), nil
}

// ParseDateTime accepts RFC 3339 timestamps and the common date/time forms
// browsers submit. Values without a zone are read as UTC.
func ParseDateTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date/time %q", value)
}
