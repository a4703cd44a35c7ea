package schema

import (
	"reflect"
	"testing"
)

func TestNormalize_SchemaCompleteness(t *testing.T) {
	r := Normalize(Partial{})
	for _, field := range FieldOrder {
		if field == FieldBilling {
			continue
		}
		want := ""
		if field == FieldHasPrepaid {
			want = "false"
		}
		if got := r.Get(field); got != want {
			t.Fatalf("field %q: expected %q, got %q", field, want, got)
		}
	}
	for _, subfield := range BillingOrder {
		if got := r.Billing(subfield); got != "" {
			t.Fatalf("billing %q: expected empty, got %q", subfield, got)
		}
	}
	if r.HasPrepaid() {
		t.Fatalf("expected prepaid default false")
	}
}

func TestNormalize_CopiesKnownFields(t *testing.T) {
	r := Normalize(Partial{
		FieldStatus:     "Confirmed",
		FieldBookingID:  "2307501514",
		FieldHasPrepaid: true,
		FieldBilling: map[string]string{
			BillingCardNumber: "4111-2222",
		},
	})
	if got := r.Get(FieldStatus); got != "Confirmed" {
		t.Fatalf("expected status copied, got %q", got)
	}
	if got := r.Get(FieldBookingID); got != "2307501514" {
		t.Fatalf("expected booking id copied, got %q", got)
	}
	if !r.HasPrepaid() {
		t.Fatalf("expected prepaid true")
	}
	if got := r.Get(FieldHasPrepaid); got != "true" {
		t.Fatalf("expected prepaid to render true, got %q", got)
	}
	if got := r.Billing(BillingCardNumber); got != "4111-2222" {
		t.Fatalf("expected card number copied, got %q", got)
	}
	// Subfields the extractor skipped are still present and empty.
	if got := r.Billing(BillingValidationCode); got != "" {
		t.Fatalf("expected empty validation code, got %q", got)
	}
}

func TestNormalize_DropsUnknownKeys(t *testing.T) {
	r := Normalize(Partial{"Some Vendor Extra": "x"})
	if got := r.Get("Some Vendor Extra"); got != "" {
		t.Fatalf("expected unknown key dropped, got %q", got)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	r := Normalize(Partial{
		FieldStatus:     "Cancelled",
		FieldHasPrepaid: true,
		FieldDailyRate:  "1,200,000 VND",
		FieldBilling: map[string]string{
			BillingExpirationDate: "09/30/2030",
		},
	})
	again := Normalize(r.AsPartial())
	if !reflect.DeepEqual(r.AsPartial(), again.AsPartial()) {
		t.Fatalf("normalize not idempotent:\n%v\nvs\n%v", r.AsPartial(), again.AsPartial())
	}
}

func TestFieldOrder_Shape(t *testing.T) {
	if len(FieldOrder) != 18 {
		t.Fatalf("expected 18 fields, got %d", len(FieldOrder))
	}
	if FieldOrder[len(FieldOrder)-1] != FieldBilling {
		t.Fatalf("expected billing details last, got %q", FieldOrder[len(FieldOrder)-1])
	}
	if len(BillingOrder) != 4 {
		t.Fatalf("expected 4 billing subfields, got %d", len(BillingOrder))
	}
}
