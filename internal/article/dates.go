package article

import "time"

// Feed dates show up in a handful of shapes: Google News emits RFC 1123
// ("Mon, 02 Jan 2006 15:04:05 GMT"), other sources emit ISO-8601 with or
// without a zone.
var dateFormats = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses a source-provided date string. It never fails: empty
// or unparseable input yields the capture time, so every emitted article
// carries a valid timestamp.
func ParseDate(raw string) time.Time {
	if raw == "" {
		return time.Now().UTC()
	}

	for _, format := range dateFormats {
		if t, err := time.Parse(format, raw); err == nil {
			return t
		}
	}

	return time.Now().UTC()
}
