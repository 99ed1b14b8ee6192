package present

import (
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/dbsmedya/gsread/internal/types"
)

const (
	// SubjectLimit is the longest subject shown untruncated.
	SubjectLimit = 50
	// IDPrefix is how much of a Gsid is shown in listings.
	IDPrefix = 10

	ellipsis    = "..."
	unknownDate = "Unknown date"
	dateLayout  = "2006-01-02 15:04"
)

// dateFields are tried in order when dating an activity.
var dateFields = []string{"ActivityDate", "CreatedDate"}

// isoLayouts are the string date forms the API returns.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// TruncateSubject cuts subjects longer than SubjectLimit characters and
// appends an ellipsis.
func TruncateSubject(s string) string {
	r := []rune(s)
	if len(r) <= SubjectLimit {
		return s
	}
	return string(r[:SubjectLimit]) + ellipsis
}

// ShortID returns the first IDPrefix characters of id followed by an ellipsis.
func ShortID(id string) string {
	r := []rune(id)
	if len(r) > IDPrefix {
		r = r[:IDPrefix]
	}
	return string(r) + ellipsis
}

// FormatDate renders the first parseable date field of an activity, or
// "Unknown date".
func FormatDate(r types.Record) string {
	for _, field := range dateFields {
		if t, ok := parseDate(r[field]); ok {
			return t.Format(dateLayout)
		}
	}
	return unknownDate
}

// parseDate accepts ISO-8601 strings (with or without zone) and epoch
// milliseconds, either as numbers or digit strings.
func parseDate(v interface{}) (time.Time, bool) {
	if v == nil {
		return time.Time{}, false
	}

	if s, ok := v.(string); ok {
		s = strings.TrimSpace(s)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range isoLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
		ms, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return time.Time{}, false
		}
		return time.UnixMilli(ms).UTC(), true
	}

	if ms, ok := types.ToInt64(v); ok {
		return time.UnixMilli(ms).UTC(), true
	}
	return time.Time{}, false
}

// padRight pads s with spaces to width terminal cells.
func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// maxWidth returns the widest display width among values.
func maxWidth(values []string) int {
	w := 0
	for _, v := range values {
		if n := runewidth.StringWidth(v); n > w {
			w = n
		}
	}
	return w
}
