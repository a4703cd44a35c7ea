package detect

import (
	"errors"
	"strings"
)

// Vendor identifies which OTA produced a document. The set is closed; adding a
// vendor means adding an extractor and a fingerprint here.
type Vendor int

const (
	VendorUnknown Vendor = iota
	VendorExpedia
	VendorAgoda
)

func (v Vendor) String() string {
	switch v {
	case VendorExpedia:
		return "expedia"
	case VendorAgoda:
		return "agoda"
	}
	return "unknown"
}

// ErrUnrecognizedSource is returned when a document matches no known vendor
// fingerprint. It is the only error the extraction pipeline surfaces; callers
// should report it and move on to the next document.
var ErrUnrecognizedSource = errors.New("cannot identify OTA source (supported: Expedia, Agoda)")

// Detect inspects normalized text for vendor fingerprints. The "expedia"
// brand token also covers the partner-portal domain
// (expediapartnercentral.com). The Agoda branch additionally requires a
// literal "booking id" label to guard against incidental brand mentions.
func Detect(text string) (Vendor, error) {
	low := strings.ToLower(text)
	switch {
	case strings.Contains(low, "expedia"):
		return VendorExpedia, nil
	case strings.Contains(low, "agoda") && strings.Contains(low, "booking id"):
		return VendorAgoda, nil
	}
	return VendorUnknown, ErrUnrecognizedSource
}
