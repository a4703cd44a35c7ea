// Package expedia extracts booking fields from Expedia confirmation and
// cancellation documents. Every rule is independent and best-effort: a label
// that does not match simply leaves its field unset, and the schema layer
// fills in the default. Input text must already be whitespace-normalized.
package expedia

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/hoteldesk/otaparse/internal/dates"
	"github.com/hoteldesk/otaparse/internal/schema"
)

// currencyPattern is the allow-list of currency codes accepted next to rate
// amounts. A numeral without one of these codes is not a rate.
const currencyPattern = `(VND|USD|EUR|JPY|THB|SGD|AUD|GBP|KRW|CNY)`

var (
	cancelledRe = regexp.MustCompile(`(?i)\b(Cancellation|Cancelled on)\b`)
	emailRe     = regexp.MustCompile(`(?i)Guest Email:\s*([^\s]+@[^\s]+)`)
	bookingIDRe = regexp.MustCompile(`(?i)Reservation ID:\s*(\d+)`)
	prepaidRe   = regexp.MustCompile(`(?i)Guest has PRE-PAID`)
	bookedOnRe  = regexp.MustCompile(`(?i)Booked on:\s*(.+?)\n`)
	guestRe     = regexp.MustCompile(`(?i)\bGuest:\s*([^\n]+)`)

	roomCodeRe = regexp.MustCompile(`Room Type Code:\s*(.+?)\n`)
	roomNameRe = regexp.MustCompile(`Room Type Name:\s*(.+?)(?:\s*-\s*Non-refundable)?\s*\n`)

	dailyRateRe = regexp.MustCompile(`(?is)Daily Base Rate.*?-\s*([\d,.]+)\s*` + currencyPattern)
	totalRe     = regexp.MustCompile(`(?is)(Total Booking Amount|Total Booking Price)\s*:?\s*([\d,.]+)\s*` + currencyPattern)

	// The amount-to-charge line wraps inconsistently depending on the
	// document variant, so three patterns are tried in decreasing
	// strictness before falling back to a bare-numeral window scan.
	amountRes = []*regexp.Regexp{
		regexp.MustCompile(`(?is)Amount to Charge Expedia(?:\s*Group)?\s*:\s*([\d,.]+)\s*` + currencyPattern),
		regexp.MustCompile(`(?is)Amount to Charge Expedia(?:\s*Group)?\s*:\s*[\r\n ]+([\d,.]+)\s*` + currencyPattern),
		regexp.MustCompile(`(?is)Amount to Charge Expedia(?:\s*Group)?\s+([\d,.]+)\s*` + currencyPattern),
	}
	amountAnchorRe  = regexp.MustCompile(`(?i)Amount to Charge Expedia`)
	looseNumeralRe  = regexp.MustCompile(`\d{1,3}(?:[.,]\d{3})+|\d+`)
	amountWindowLen = 200

	// One match yields both dates and both occupancy counts so the four
	// values always come from the same table row.
	stayRe = regexp.MustCompile(`(?is)Check-In\s+Check-Out\s+Adults\s+Kids/Ages.*?\n` +
		`([A-Za-z]{3,9}\s+\d{1,2},\s*\d{4})\s+` +
		`([A-Za-z]{3,9}\s+\d{1,2},\s*\d{4})\s+` +
		`(\d+)\s+` +
		`(\d+)`)

	cardNumberRe = regexp.MustCompile(`(?i)Card Number\s+([\d-]+)`)
	activationRe = regexp.MustCompile(`(?i)Activation Date\s+([A-Za-z]{3,9}\s+\d{1,2},\s*\d{4})`)
	expirationRe = regexp.MustCompile(`(?i)Expiration Date\s*(.+?)\n`)
	validationRe = regexp.MustCompile(`(?i)Validation Code\s+(\d+)`)
)

// labels that terminate a guest-name capture when the name shares a line with
// the next field.
var guestStopLabels = []string{"Guest Email:", "Reservation ID:", "Booked on:"}

// Extract pulls every recognizable field out of normalized Expedia document
// text. The result is partial; schema.Normalize supplies defaults and order.
func Extract(text string) schema.Partial {
	p := schema.Partial{}

	if cancelledRe.MatchString(text) {
		p[schema.FieldStatus] = "Cancelled"
	} else {
		p[schema.FieldStatus] = "Confirmed"
	}

	if m := emailRe.FindStringSubmatch(text); m != nil {
		p[schema.FieldEmail] = m[1]
	}
	if m := bookingIDRe.FindStringSubmatch(text); m != nil {
		p[schema.FieldBookingID] = m[1]
	}
	p[schema.FieldHasPrepaid] = prepaidRe.MatchString(text)

	if m := bookedOnRe.FindStringSubmatch(text); m != nil {
		p[schema.FieldBookedOn] = dates.ParseLongDate(m[1])
	}

	if first, last, ok := guestName(text); ok {
		p[schema.FieldFirstName] = first
		p[schema.FieldLastName] = last
	}

	if m := roomCodeRe.FindStringSubmatch(text); m != nil {
		p[schema.FieldRoomTypeCode] = strings.TrimSpace(m[1])
	} else if m := roomNameRe.FindStringSubmatch(text); m != nil {
		p[schema.FieldRoomTypeCode] = strings.TrimSpace(m[1])
	}

	if m := dailyRateRe.FindStringSubmatch(text); m != nil {
		p[schema.FieldDailyRate] = m[1] + " " + m[2]
	}
	if m := totalRe.FindStringSubmatch(text); m != nil {
		p[schema.FieldTotalBooking] = m[2] + " " + m[3]
	}
	if amount := chargeAmount(text); amount != "" {
		p[schema.FieldAmountCharge] = amount
	}

	if m := stayRe.FindStringSubmatch(text); m != nil {
		p[schema.FieldCheckIn] = dates.ParseLongDate(m[1])
		p[schema.FieldCheckOut] = dates.ParseLongDate(m[2])
		p[schema.FieldOccupancyAdlt] = m[3]
		p[schema.FieldOccupancyChld] = m[4]
	}

	// Expedia documents rarely carry a special request and are single-room
	// bookings by convention.
	p[schema.FieldSpecialReq] = ""
	p[schema.FieldRoomCount] = "1"

	p[schema.FieldBilling] = billingDetails(text)
	return p
}

// guestName captures the text after a "Guest:" label up to the next known
// label or end of line, then splits it: every token but the last is the first
// name, the last token is the last name. A single-token name yields an empty
// last name.
func guestName(text string) (first, last string, ok bool) {
	m := guestRe.FindStringSubmatch(text)
	if m == nil {
		return "", "", false
	}
	raw := m[1]
	for _, label := range guestStopLabels {
		if i := strings.Index(strings.ToLower(raw), strings.ToLower(label)); i >= 0 {
			raw = raw[:i]
		}
	}
	tokens := strings.Fields(raw)
	if len(tokens) == 0 {
		return "", "", false
	}
	if len(tokens) == 1 {
		return tokens[0], "", true
	}
	return strings.Join(tokens[:len(tokens)-1], " "), tokens[len(tokens)-1], true
}

// chargeAmount tries the strict amount patterns first, then scans a bounded
// window after the label for the first numeral. The window fallback returns
// the numeral without a currency suffix.
func chargeAmount(text string) string {
	for _, re := range amountRes {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1] + " " + m[2]
		}
	}
	loc := amountAnchorRe.FindStringIndex(text)
	if loc == nil {
		return ""
	}
	end := loc[1] + amountWindowLen
	if end > len(text) {
		end = len(text)
	}
	return looseNumeralRe.FindString(text[loc[1]:end])
}

// billingDetails captures the virtual-card block. The expiration date
// sometimes carries only month and year, in which case it normalizes to the
// last calendar day of that month; trailing tokens such as a city name are
// discarded once the month/year pair parses.
func billingDetails(text string) map[string]string {
	billing := map[string]string{}
	if m := cardNumberRe.FindStringSubmatch(text); m != nil {
		billing[schema.BillingCardNumber] = m[1]
	}
	if m := activationRe.FindStringSubmatch(text); m != nil {
		billing[schema.BillingActivationDate] = dates.ParseLongDate(m[1])
	}
	if m := expirationRe.FindStringSubmatch(text); m != nil {
		billing[schema.BillingExpirationDate] = expirationDate(m[1])
	}
	if m := validationRe.FindStringSubmatch(text); m != nil {
		billing[schema.BillingValidationCode] = m[1]
	}
	return billing
}

func expirationDate(raw string) string {
	raw = strings.TrimSpace(raw)
	parts := strings.Fields(raw)
	if len(parts) < 2 {
		return raw
	}
	monthTok := strings.ToLower(parts[0])
	if len(monthTok) > 3 {
		monthTok = monthTok[:3]
	}
	month, ok := dates.MonthNumber(monthTok)
	if !ok {
		return raw
	}
	year, err := strconv.Atoi(strings.TrimSuffix(parts[1], ","))
	if err != nil {
		return raw
	}
	last := dates.LastDay(month, year)
	return fmt.Sprintf("%02d/%02d/%d", month, last, year)
}
