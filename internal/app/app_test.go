package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hoteldesk/otaparse/internal/detect"
	"github.com/hoteldesk/otaparse/internal/schema"
)

// rawExpediaFixture deliberately carries messy whitespace and a non-breaking
// space; ProcessText normalizes before matching.
const rawExpediaFixture = "Expedia  Partner\u00a0Central\n\n\n" +
	"Guest: Nguyen Van Anh\n" +
	"Guest Email: nguyen.vananh@example.com\n" +
	"Reservation ID: 2307501514\n" +
	"Guest has\u00a0PRE-PAID\n\n" +
	"Booked on:   Nov 10, 2025\n" +
	"Check-In  Check-Out  Adults  Kids/Ages\n" +
	"Nov 12, 2025  Nov 14, 2025  3  0\n" +
	"Total Booking Amount: 2,400,000 VND\n"

func TestProcessText_ExpediaEndToEnd(t *testing.T) {
	record, vendor, err := ProcessText(rawExpediaFixture)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vendor != detect.VendorExpedia {
		t.Fatalf("expected expedia, got %v", vendor)
	}

	want := map[string]string{
		schema.FieldBookingID:     "2307501514",
		schema.FieldHasPrepaid:    "true",
		schema.FieldCheckIn:       "11/12/2025",
		schema.FieldCheckOut:      "11/14/2025",
		schema.FieldOccupancyAdlt: "3",
		schema.FieldOccupancyChld: "0",
		schema.FieldTotalBooking:  "2,400,000 VND",
	}
	for field, value := range want {
		if got := record.Get(field); got != value {
			t.Fatalf("field %q: expected %q, got %q", field, value, got)
		}
	}
}

func TestProcessText_UnrecognizedSource(t *testing.T) {
	_, _, err := ProcessText("Booking.com confirmation 12345")
	if !errors.Is(err, detect.ErrUnrecognizedSource) {
		t.Fatalf("expected ErrUnrecognizedSource, got %v", err)
	}
}

func TestOutputPaths(t *testing.T) {
	txt, html, pdf := outputPaths(filepath.Join("in", "booking.pdf"), "")
	if txt != filepath.Join("in", "booking_extracted.txt") {
		t.Fatalf("unexpected text path %q", txt)
	}
	if html != filepath.Join("in", "booking_report.html") {
		t.Fatalf("unexpected html path %q", html)
	}
	if pdf != filepath.Join("in", "booking_report.pdf") {
		t.Fatalf("unexpected pdf path %q", pdf)
	}

	txt, _, _ = outputPaths(filepath.Join("in", "booking.pdf"), "out")
	if txt != filepath.Join("out", "booking_extracted.txt") {
		t.Fatalf("expected out dir to win, got %q", txt)
	}
}

func TestProcessFile_WritesOutputPair(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "booking.txt")
	if err := os.WriteFile(input, []byte(rawExpediaFixture), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	a := New(Config{Inputs: []string{input}})
	res, err := a.ProcessFile(input)
	if err != nil {
		t.Fatalf("process file: %v", err)
	}
	if res.BookingID != "2307501514" {
		t.Fatalf("expected booking id in result, got %q", res.BookingID)
	}

	txt, err := os.ReadFile(filepath.Join(dir, "booking_extracted.txt"))
	if err != nil {
		t.Fatalf("read text output: %v", err)
	}
	if !strings.HasPrefix(string(txt), "Status booking Reservation: Confirmed\n") {
		t.Fatalf("unexpected text output start: %q", string(txt)[:60])
	}
	if !strings.Contains(string(txt), "\n--- Billing Details: ---\n") {
		t.Fatalf("missing billing section header")
	}

	html, err := os.ReadFile(filepath.Join(dir, "booking_report.html"))
	if err != nil {
		t.Fatalf("read html output: %v", err)
	}
	if !strings.Contains(string(html), "<title>2307501514-report</title>") {
		t.Fatalf("unexpected html output")
	}

	// PDF not requested.
	if _, err := os.Stat(filepath.Join(dir, "booking_report.pdf")); !os.IsNotExist(err) {
		t.Fatalf("expected no pdf output, stat err: %v", err)
	}
}

func TestRun_ContinuesPastFailures(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	if err := os.WriteFile(good, []byte(rawExpediaFixture), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	bad := filepath.Join(dir, "unknown.txt")
	if err := os.WriteFile(bad, []byte("no vendor fingerprint"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	a := New(Config{Inputs: []string{bad, good}})
	if err := a.Run(); err != nil {
		t.Fatalf("expected partial batch to succeed, got %v", err)
	}

	a = New(Config{Inputs: []string{bad}})
	if err := a.Run(); !errors.Is(err, ErrNoDocumentsProcessed) {
		t.Fatalf("expected ErrNoDocumentsProcessed, got %v", err)
	}
}

func TestMergeFileConfig_FlagsWin(t *testing.T) {
	cfg := Config{OutDir: "flagdir"}
	MergeFileConfig(&cfg, &FileConfig{Out: "filedir", PDF: true, Inputs: []string{"a.pdf"}})
	if cfg.OutDir != "flagdir" {
		t.Fatalf("expected flag value to win, got %q", cfg.OutDir)
	}
	if !cfg.EnablePDF {
		t.Fatalf("expected pdf enabled from file")
	}
	if len(cfg.Inputs) != 1 || cfg.Inputs[0] != "a.pdf" {
		t.Fatalf("expected inputs from file, got %v", cfg.Inputs)
	}
}
