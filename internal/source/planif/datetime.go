package planif

import (
	"fmt"
	"time"
)

// ISOLayout renders a time as ISO-8601 with its UTC offset, keeping
// sub-second precision only when present.
const ISOLayout = "2006-01-02T15:04:05.999999-07:00"

// FormatDateTime converts an upstream date value to an ISO-8601 string.
// Strings are returned untouched, so formatting is idempotent; nil and
// empty values yield nil.
func FormatDateTime(v any) *string {
	var s string
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		s = t
	case time.Time:
		s = t.Format(ISOLayout)
	case *time.Time:
		if t == nil {
			return nil
		}
		s = t.Format(ISOLayout)
	default:
		s = fmt.Sprint(t)
	}
	if s == "" {
		return nil
	}
	return &s
}
