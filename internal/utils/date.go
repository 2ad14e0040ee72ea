package utils

import "time"

// DateTimeLayout is the canonical date-time string form used for every
// persisted date field (due dates and record timestamps).
const DateTimeLayout = "2006-01-02 15:04:05"

// dateInputLayouts are the accepted client-supplied due-date forms, tried in
// order during normalization.
var dateInputLayouts = []string{
	DateTimeLayout,
	"2006-01-02",
	time.RFC3339,
}

// FormatDate renders t in the canonical date-time form.
func FormatDate(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// NormalizeDate parses strDate using the accepted input layouts and renders
// it in the canonical form. Input that matches none of the layouts is
// returned unchanged, so the caller never loses the raw value.
func NormalizeDate(strDate string) string {
	for _, layout := range dateInputLayouts {
		if t, err := time.Parse(layout, strDate); err == nil {
			return FormatDate(t)
		}
	}
	return strDate
}
