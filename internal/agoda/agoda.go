// Package agoda extracts booking fields from Agoda confirmation documents.
// Agoda mail differs from Expedia in structure: it carries both gross and net
// rates, localizes its sent-date header, and never exposes payment-card
// detail. Fields that do not apply are emitted empty so the normalized schema
// stays identical across vendors.
package agoda

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/hoteldesk/otaparse/internal/dates"
	"github.com/hoteldesk/otaparse/internal/schema"
)

var (
	prepaidRe   = regexp.MustCompile(`(?i)\bPREPAID\b`)
	bookingIDRe = regexp.MustCompile(`(?i)Booking ID\s*(\d+)`)

	// Names appear upper-case, possibly with Vietnamese accented letters,
	// apostrophes, or hyphens.
	firstNameRe = regexp.MustCompile(`Customer First Name\s+([A-ZÀ-Ỹ' \-]+)`)
	lastNameRe  = regexp.MustCompile(`Customer Last Name\s+([A-ZÀ-Ỹ' \-]+)`)

	// Only the message-relay address counts; guests' real addresses are
	// withheld by the vendor.
	emailRe = regexp.MustCompile(`(?i)Email:\s*([^\s]+@[^\s]+agoda-messaging\.com)`)

	checkInRe  = regexp.MustCompile(`(?is)Check[- ]in\s+([A-Za-z]{3,9})\s*(\d{1,2}),\s*(\d{4})`)
	checkOutRe = regexp.MustCompile(`(?is)Check[- ]out\s+([A-Za-z]{3,9})\s*(\d{1,2}),\s*(\d{4})`)

	roomTableRe = regexp.MustCompile(`(?i)Room Type\s+No\. of Rooms\s+Occupancy[^\n]*\n([^\n]+)`)
	adultRe     = regexp.MustCompile(`(\d+)\s+Adult`)
	childRe     = regexp.MustCompile(`(\d+)\s+Child`)

	// Rates live in a table under a "From - To / Rates" header; scoping the
	// search below that header avoids matching unrelated numerals earlier in
	// the document.
	ratesAnchorRe = regexp.MustCompile(`(?i)From\s*-\s*To\s*Rates`)
	dailyRateRe   = regexp.MustCompile(`(?i)\bVND\b\s*\n\s*(\d{1,3}(?:,\d{3})+)(?:\.\d+)?`)

	grossRateRe = regexp.MustCompile(`(?is)Reference sell rate.*?\bVND\b\s*(\d{1,3}(?:,\d{3})+)(?:\.\d+)?`)
	netRateRe   = regexp.MustCompile(`(?i)Net rate\s*\(incl\. taxes & fees\)\s*\n\s*VND\s*(\d{1,3}(?:,\d{3})+)(?:\.\d+)?`)

	digitsRe = regexp.MustCompile(`^\d+$`)
)

// Extract pulls every recognizable field out of normalized Agoda document
// text. The result is partial; schema.Normalize supplies defaults and order.
func Extract(text string) schema.Partial {
	p := schema.Partial{}

	// Cancellations are not delivered through this channel for Agoda.
	p[schema.FieldStatus] = "Confirmed"
	p[schema.FieldHasPrepaid] = prepaidRe.MatchString(text)

	if m := bookingIDRe.FindStringSubmatch(text); m != nil {
		p[schema.FieldBookingID] = m[1]
	}
	if m := firstNameRe.FindStringSubmatch(text); m != nil {
		p[schema.FieldFirstName] = titleCase(m[1])
	}
	if m := lastNameRe.FindStringSubmatch(text); m != nil {
		p[schema.FieldLastName] = titleCase(m[1])
	}
	if m := emailRe.FindStringSubmatch(text); m != nil {
		p[schema.FieldEmail] = m[1]
	}
	if booked := dates.ParseSentDate(text); booked != "" {
		p[schema.FieldBookedOn] = booked
	}
	if m := checkInRe.FindStringSubmatch(text); m != nil {
		p[schema.FieldCheckIn] = dates.ComposeMonthDayYear(m[1], m[2], m[3])
	}
	if m := checkOutRe.FindStringSubmatch(text); m != nil {
		p[schema.FieldCheckOut] = dates.ComposeMonthDayYear(m[1], m[2], m[3])
	}

	roomAndOccupancy(text, p)

	p[schema.FieldSpecialReq] = ""

	if rate := firstDailyRate(text); rate != "" {
		p[schema.FieldDailyRate] = rate
	}
	if total := totalBooking(text); total != "" {
		p[schema.FieldTotalBooking] = total
	}

	// Agoda never exposes the charge amount or card detail.
	p[schema.FieldAmountCharge] = ""
	p[schema.FieldBilling] = map[string]string{}
	return p
}

// roomAndOccupancy reads the single data row under the room-type table
// header. Leading non-numeric tokens form the room-type name, the first
// numeral is the room count, the second the adult occupancy. Independent
// fallbacks recover "<N> Adult" / "<N> Child" tokens when the table is absent
// or malformed, and the baseline is one room, one adult, zero children.
func roomAndOccupancy(text string, p schema.Partial) {
	if m := roomTableRe.FindStringSubmatch(text); m != nil {
		var roomTokens, numbers []string
		for _, tok := range strings.Fields(m[1]) {
			switch {
			case digitsRe.MatchString(tok):
				numbers = append(numbers, tok)
			case len(numbers) == 0:
				roomTokens = append(roomTokens, tok)
			}
		}
		if len(roomTokens) > 0 {
			p[schema.FieldRoomTypeCode] = strings.Join(roomTokens, " ")
		}
		if len(numbers) > 0 {
			p[schema.FieldRoomCount] = numbers[0]
		}
		if len(numbers) > 1 {
			p[schema.FieldOccupancyAdlt] = numbers[1]
		}
	}
	if _, ok := p[schema.FieldOccupancyAdlt]; !ok {
		if m := adultRe.FindStringSubmatch(text); m != nil {
			p[schema.FieldOccupancyAdlt] = m[1]
		} else {
			p[schema.FieldOccupancyAdlt] = "1"
		}
	}
	if m := childRe.FindStringSubmatch(text); m != nil {
		p[schema.FieldOccupancyChld] = m[1]
	} else {
		p[schema.FieldOccupancyChld] = "0"
	}
	if _, ok := p[schema.FieldRoomCount]; !ok {
		p[schema.FieldRoomCount] = "1"
	}
}

// firstDailyRate finds the first comma-grouped numeral under a VND marker
// after the rates table header. The fractional part, when present, is
// dropped.
func firstDailyRate(text string) string {
	tail := text
	if loc := ratesAnchorRe.FindStringIndex(text); loc != nil {
		tail = text[loc[1]:]
	}
	if m := dailyRateRe.FindStringSubmatch(tail); m != nil {
		return m[1] + " VND"
	}
	return ""
}

// totalBooking prefers the gross "Reference sell rate" and falls back to the
// net rate. Both require the VND marker.
func totalBooking(text string) string {
	if m := grossRateRe.FindStringSubmatch(text); m != nil {
		return m[1] + " VND"
	}
	if m := netRateRe.FindStringSubmatch(text); m != nil {
		return m[1] + " VND"
	}
	return ""
}

// titleCase re-cases an upper-case captured name ("NGUYỄN VĂN" -> "Nguyễn
// Văn") with Unicode-aware casing so accented letters survive.
func titleCase(s string) string {
	return cases.Title(language.Und).String(strings.TrimSpace(s))
}
