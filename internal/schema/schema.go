package schema

import "strconv"

// Canonical field names. These are the exact keys of the output schema; any
// change here must be coordinated with downstream consumers of the rendered
// files.
const (
	FieldStatus        = "Status booking Reservation"
	FieldFirstName     = "Customer First Name"
	FieldLastName      = "Customer Last Name"
	FieldEmail         = "Email Customer"
	FieldBookingID     = "BookingID"
	FieldHasPrepaid    = "Has Prepaid"
	FieldBookedOn      = "Booked on"
	FieldCheckIn       = "Check in"
	FieldCheckOut      = "Check out"
	FieldSpecialReq    = "Special Request"
	FieldRoomTypeCode  = "Room Type Code"
	FieldRoomCount     = "No. of room"
	FieldOccupancyAdlt = "Occupancy Adult"
	FieldOccupancyChld = "Occupancy Childrent"
	FieldDailyRate     = "Daily Rate"
	FieldTotalBooking  = "Total Booking"
	FieldAmountCharge  = "Amount to Charge Expedia"
	FieldBilling       = "Billing Details:"
)

// Billing sub-schema field names.
const (
	BillingCardNumber     = "Card Number"
	BillingActivationDate = "Activation Date"
	BillingExpirationDate = "Expiration Date"
	BillingValidationCode = "Validation Code"
)

// FieldOrder is the exact order of fields in the final output. It is preserved
// verbatim in the generated text and HTML reports.
var FieldOrder = []string{
	FieldStatus,
	FieldFirstName,
	FieldLastName,
	FieldEmail,
	FieldBookingID,
	FieldHasPrepaid,
	FieldBookedOn,
	FieldCheckIn,
	FieldCheckOut,
	FieldSpecialReq,
	FieldRoomTypeCode,
	FieldRoomCount,
	FieldOccupancyAdlt,
	FieldOccupancyChld,
	FieldDailyRate,
	FieldTotalBooking,
	FieldAmountCharge,
	FieldBilling,
}

// BillingOrder is the order of subfields inside the billing details section.
var BillingOrder = []string{
	BillingCardNumber,
	BillingActivationDate,
	BillingExpirationDate,
	BillingValidationCode,
}

// Partial is the unordered, possibly incomplete field map produced by a vendor
// extractor. String fields hold string values, FieldHasPrepaid holds a bool,
// and FieldBilling holds a map[string]string of billing subfields.
type Partial map[string]any

// Record is a fully-keyed booking record in canonical form. It always carries
// every field of FieldOrder and every subfield of BillingOrder; absent values
// are empty strings (false for the prepaid flag). A Record is immutable once
// produced by Normalize.
type Record struct {
	fields  map[string]string
	billing map[string]string
	prepaid bool
}

// Normalize pads and orders a partial extraction result into a complete
// Record. Unknown keys in the partial are dropped; missing keys take their
// documented defaults. Normalize never fails and is idempotent:
// Normalize(r.AsPartial()) reproduces r exactly.
func Normalize(p Partial) Record {
	r := Record{
		fields:  make(map[string]string, len(FieldOrder)),
		billing: make(map[string]string, len(BillingOrder)),
	}
	for _, key := range FieldOrder {
		switch key {
		case FieldHasPrepaid:
			if v, ok := p[key].(bool); ok {
				r.prepaid = v
			}
		case FieldBilling:
			sub, _ := p[key].(map[string]string)
			for _, subkey := range BillingOrder {
				r.billing[subkey] = sub[subkey]
			}
		default:
			v, _ := p[key].(string)
			r.fields[key] = v
		}
	}
	return r
}

// Get returns the value of a top-level field. The prepaid flag renders as
// "true" or "false"; the billing field and unknown names return "".
func (r Record) Get(field string) string {
	if field == FieldHasPrepaid {
		return strconv.FormatBool(r.prepaid)
	}
	return r.fields[field]
}

// Billing returns the value of a billing subfield, or "" for unknown names.
func (r Record) Billing(subfield string) string {
	return r.billing[subfield]
}

// HasPrepaid reports whether the booking was marked prepaid.
func (r Record) HasPrepaid() bool {
	return r.prepaid
}

// AsPartial converts the record back to the map form accepted by Normalize.
// The returned maps are copies; mutating them does not affect the record.
func (r Record) AsPartial() Partial {
	p := make(Partial, len(FieldOrder))
	for _, key := range FieldOrder {
		switch key {
		case FieldHasPrepaid:
			p[key] = r.prepaid
		case FieldBilling:
			sub := make(map[string]string, len(BillingOrder))
			for _, subkey := range BillingOrder {
				sub[subkey] = r.billing[subkey]
			}
			p[key] = sub
		default:
			p[key] = r.fields[key]
		}
	}
	return p
}
