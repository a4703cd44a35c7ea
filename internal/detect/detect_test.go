package detect

import (
	"errors"
	"testing"
)

func TestDetect_Expedia(t *testing.T) {
	v, err := Detect("Log in to expediapartnercentral.com to view the reservation")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != VendorExpedia {
		t.Fatalf("expected expedia, got %v", v)
	}
}

func TestDetect_AgodaNeedsBookingIDLabel(t *testing.T) {
	v, err := Detect("Agoda Company Pte. Ltd. Booking ID 123456789")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != VendorAgoda {
		t.Fatalf("expected agoda, got %v", v)
	}

	// An incidental brand mention without the label is not enough.
	if _, err := Detect("I found this hotel on agoda last year"); !errors.Is(err, ErrUnrecognizedSource) {
		t.Fatalf("expected ErrUnrecognizedSource, got %v", err)
	}
}

func TestDetect_Unrecognized(t *testing.T) {
	v, err := Detect("Booking.com confirmation 12345")
	if !errors.Is(err, ErrUnrecognizedSource) {
		t.Fatalf("expected ErrUnrecognizedSource, got %v", err)
	}
	if v != VendorUnknown {
		t.Fatalf("expected unknown vendor, got %v", v)
	}
}

func TestVendorString(t *testing.T) {
	if VendorExpedia.String() != "expedia" || VendorAgoda.String() != "agoda" || VendorUnknown.String() != "unknown" {
		t.Fatalf("unexpected vendor names: %v %v %v", VendorExpedia, VendorAgoda, VendorUnknown)
	}
}
