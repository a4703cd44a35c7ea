package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// monthsByName maps lower-case month names, abbreviated and full, to their
// numeric value. Loaded once; read-only after init.
var monthsByName = map[string]int{
	"jan": 1, "january": 1,
	"feb": 2, "february": 2,
	"mar": 3, "march": 3,
	"apr": 4, "april": 4,
	"may": 5,
	"jun": 6, "june": 6,
	"jul": 7, "july": 7,
	"aug": 8, "august": 8,
	"sep": 9, "september": 9,
	"oct": 10, "october": 10,
	"nov": 11, "november": 11,
	"dec": 12, "december": 12,
}

var (
	longDateRe = regexp.MustCompile(`^([A-Za-z]+)\s+(\d{1,2}),\s*(\d{4})`)
	// Numeric day/month/year as it appears in Vietnamese mail headers,
	// e.g. "Ngày T2 10/11/2025 10:51". Day precedes month.
	sentNumericRe = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4})\b`)
	// "DD tháng MM, YYYY" phrasing from localized "Đã gửi" lines.
	sentThangRe = regexp.MustCompile(`(?i)(\d{1,2})\s+th[aá]ng\s+(\d{1,2}),\s*(\d{4})`)
)

// MonthNumber resolves an abbreviated or full English month name to 1..12.
// The lookup is case-insensitive. ok is false for anything unrecognized.
func MonthNumber(name string) (int, bool) {
	m, ok := monthsByName[strings.ToLower(strings.TrimSpace(name))]
	return m, ok
}

// ComposeMonthDayYear builds an MM/DD/YYYY string from textual parts. When the
// month name is not recognized or the day/year are not numeric, it returns a
// readable fallback of the form "<month> <day>, <year>" instead of failing.
func ComposeMonthDayYear(month, day, year string) string {
	m, ok := MonthNumber(month)
	d, errD := strconv.Atoi(strings.TrimSpace(day))
	y, errY := strconv.Atoi(strings.TrimSpace(year))
	if !ok || errD != nil || errY != nil {
		return fmt.Sprintf("%s %s, %s", month, day, year)
	}
	return fmt.Sprintf("%02d/%02d/%d", m, d, y)
}

// ParseLongDate converts dates like "Nov 16, 2025" or "November 16, 2025" to
// MM/DD/YYYY. Unparsable input is returned unchanged so that a single bad date
// never aborts extraction of the rest of a record.
func ParseLongDate(s string) string {
	if s == "" {
		return ""
	}
	s = strings.TrimSpace(strings.ReplaceAll(s, "\u00a0", " "))
	m := longDateRe.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	if _, ok := MonthNumber(m[1]); !ok {
		return s
	}
	return ComposeMonthDayYear(m[1], m[2], m[3])
}

// ParseSentDate extracts a booking "sent" date from localized Vietnamese
// header lines such as "Ngày T2 10/11/2025 10:51" or
// "Đã gửi: Thứ Hai, 10 tháng 11, 2025". Both phrasings put the day before the
// month, so the parts are swapped into MM/DD/YYYY on output. An empty string
// means no recognized date was present; it is a not-found signal, not an error.
func ParseSentDate(s string) string {
	if s == "" {
		return ""
	}
	for _, re := range []*regexp.Regexp{sentNumericRe, sentThangRe} {
		m := re.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		dd, _ := strconv.Atoi(m[1])
		mm, _ := strconv.Atoi(m[2])
		yyyy, _ := strconv.Atoi(m[3])
		return fmt.Sprintf("%02d/%02d/%d", mm, dd, yyyy)
	}
	return ""
}

// LastDay returns the last calendar day of the given month and year,
// accounting for leap years.
func LastDay(month, year int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
