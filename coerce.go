package newgrounds

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Coercers convert free text taken from page markup into typed values.
// Each returns ok == false for input it cannot read; none of them panics,
// since malformed markup is routine.

var (
	countPattern     = regexp.MustCompile(`^(\d+)(?:\s*[[:alpha:]]+)?$`)
	clockPattern     = regexp.MustCompile(`^(\d+):(\d+)$`)
	minutesPattern   = regexp.MustCompile(`(?i)(\d+)\s*(?:min|m)`)
	secondsPattern   = regexp.MustCompile(`(?i)(\d+)\s*(?:sec|s)`)
	starScorePattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*/\s*\d`)
)

// ParseCount reads a non-negative integer such as "12,345" or "1,234 Views".
// Thousands separators and one trailing unit word are ignored.
func ParseCount(s string) (int, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	m := countPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseDuration reads a duration in seconds. Two formats are accepted:
// "M:SS" with seconds below 60, or any text containing a "<N> min" token,
// a "<N> sec" token, or both (summed).
func ParseDuration(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if m := clockPattern.FindStringSubmatch(s); m != nil {
		minutes, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, false
		}
		seconds, err := strconv.Atoi(m[2])
		if err != nil || seconds >= 60 || minutes > (math.MaxInt-seconds)/60 {
			return 0, false
		}
		return minutes*60 + seconds, true
	}

	minMatch := minutesPattern.FindStringSubmatch(s)
	secMatch := secondsPattern.FindStringSubmatch(s)
	if minMatch == nil && secMatch == nil {
		return 0, false
	}

	total := 0
	if minMatch != nil {
		n, err := strconv.Atoi(minMatch[1])
		if err != nil || n > math.MaxInt/60 {
			return 0, false
		}
		total += n * 60
	}
	if secMatch != nil {
		n, err := strconv.Atoi(secMatch[1])
		if err != nil || n > math.MaxInt-total {
			return 0, false
		}
		total += n
	}
	return total, true
}

// ParseScore reads a score. For "4.5 / 5.0" the numerator is returned.
func ParseScore(s string) (float64, bool) {
	if i := strings.Index(s, "/"); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, false
	}
	return v, true
}

// ParseStarScore reads the title attribute of a star-score element, e.g.
// "Score: 4.32 / 5.00".
func ParseStarScore(title string) (float64, bool) {
	if m := starScorePattern.FindStringSubmatch(title); m != nil {
		return ParseScore(m[1])
	}
	if i := strings.LastIndex(title, ":"); i >= 0 {
		title = title[i+1:]
	}
	return ParseScore(title)
}

// LegacyDate is a calendar date read from a two-digit-year date string.
type LegacyDate struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

// DefaultLegacyDateLayout is the component order used by ParseLegacyDate.
const DefaultLegacyDateLayout = "MM/DD/YY"

// ParseLegacyDate reads a "MM/DD/YY" date.
func ParseLegacyDate(s string) (LegacyDate, bool) {
	return ParseLegacyDateLayout(s, DefaultLegacyDateLayout)
}

// ParseLegacyDateLayout reads a slash-separated date whose component order
// is given by layout, a permutation of "MM", "DD" and "YY".
//
// Two-digit years 00-69 are placed in the 2000s and 70-99 in the 1900s.
// Dates that do not exist on the calendar (Feb 30, day 31 of a 30-day
// month) are rejected.
func ParseLegacyDateLayout(s, layout string) (LegacyDate, bool) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	fields := strings.Split(layout, "/")
	if len(parts) != 3 || len(fields) != 3 {
		return LegacyDate{}, false
	}

	var d LegacyDate
	yy := -1
	for i, field := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return LegacyDate{}, false
		}
		switch field {
		case "MM":
			d.Month = n
		case "DD":
			d.Day = n
		case "YY":
			if n < 0 || n > 99 {
				return LegacyDate{}, false
			}
			yy = n
		default:
			return LegacyDate{}, false
		}
	}
	if yy < 0 {
		return LegacyDate{}, false
	}
	d.Year = expandYear(yy)

	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	if t.Year() != d.Year || int(t.Month()) != d.Month || t.Day() != d.Day {
		return LegacyDate{}, false
	}
	return d, true
}

func expandYear(yy int) int {
	if yy <= 69 {
		return 2000 + yy
	}
	return 1900 + yy
}

// isoLayout matches the ISO-8601 form produced by JavaScript's toISOString.
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

// zoneOffsets maps the zone abbreviations the site prints to their UTC
// offsets in hours. Go's parser gives unknown abbreviations a zero offset.
var zoneOffsets = map[string]int{
	"UTC": 0, "GMT": 0,
	"EST": -5, "EDT": -4,
	"CST": -6, "CDT": -5,
	"MST": -7, "MDT": -6,
	"PST": -8, "PDT": -7,
}

// ParseTimestamp joins free-text date and time tokens, parses the result
// and returns it as an ISO-8601 UTC timestamp. A trailing US zone
// abbreviation such as "EDT" sets the offset; text without a zone is read
// as UTC.
func ParseTimestamp(tokens ...string) (ts string, ok bool) {
	fields := strings.Fields(strings.Join(tokens, " "))
	loc := time.UTC
	if n := len(fields); n > 1 {
		abbr := strings.ToUpper(strings.Trim(fields[n-1], "(),."))
		if off, known := zoneOffsets[abbr]; known {
			loc = time.FixedZone(abbr, off*60*60)
			fields = fields[:n-1]
		}
	}
	s := strings.Join(fields, " ")
	if s == "" {
		return "", false
	}

	// dateparse has panicked on malformed input in the past.
	defer func() {
		if recover() != nil {
			ts, ok = "", false
		}
	}()

	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return "", false
	}
	if loc != time.UTC {
		t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
	}
	return t.UTC().Format(isoLayout), true
}
