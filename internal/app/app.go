package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/hoteldesk/otaparse/internal/agoda"
	"github.com/hoteldesk/otaparse/internal/detect"
	"github.com/hoteldesk/otaparse/internal/expedia"
	"github.com/hoteldesk/otaparse/internal/report"
	"github.com/hoteldesk/otaparse/internal/schema"
	"github.com/hoteldesk/otaparse/internal/sourcetext"
	"github.com/hoteldesk/otaparse/internal/textnorm"
)

// ErrNoDocumentsProcessed is returned by Run when every input failed. Per the
// exit code policy, this condition should result in a non-zero process exit;
// a batch with at least one success completes with warnings.
var ErrNoDocumentsProcessed = errors.New("no documents processed")

type App struct {
	cfg Config
}

func New(cfg Config) *App {
	return &App{cfg: cfg}
}

// Result describes the outputs written for one input document.
type Result struct {
	Input     string
	Vendor    detect.Vendor
	BookingID string
	TextPath  string
	HTMLPath  string
	PDFPath   string
}

// ProcessText runs the extraction engine on raw document text: normalize,
// detect the vendor, extract, and pad to the canonical schema. It performs no
// I/O and is safe to call concurrently for independent documents. The only
// error it surfaces is detect.ErrUnrecognizedSource.
func ProcessText(raw string) (schema.Record, detect.Vendor, error) {
	text := textnorm.Normalize(raw)
	vendor, err := detect.Detect(text)
	if err != nil {
		return schema.Record{}, vendor, err
	}

	var partial schema.Partial
	switch vendor {
	case detect.VendorExpedia:
		partial = expedia.Extract(text)
	case detect.VendorAgoda:
		partial = agoda.Extract(text)
	}
	return schema.Normalize(partial), vendor, nil
}

// ProcessFile reads one input document, runs the engine, and writes the
// output pair (plus the optional PDF) beside the input or into the configured
// output directory.
func (a *App) ProcessFile(path string) (Result, error) {
	raw, err := sourcetext.FromFile(path)
	if err != nil {
		return Result{Input: path}, fmt.Errorf("extract text: %w", err)
	}

	record, vendor, err := ProcessText(raw)
	if err != nil {
		return Result{Input: path, Vendor: vendor}, err
	}

	res := Result{
		Input:     path,
		Vendor:    vendor,
		BookingID: record.Get(schema.FieldBookingID),
	}
	if res.BookingID == "" {
		log.Warn().Str("input", path).Msg("no booking ID extracted")
	}

	txtPath, htmlPath, pdfPath := outputPaths(path, a.cfg.OutDir)
	if err := os.WriteFile(txtPath, []byte(report.Text(record)), 0o644); err != nil {
		return res, fmt.Errorf("write text report: %w", err)
	}
	res.TextPath = txtPath
	if err := os.WriteFile(htmlPath, []byte(report.HTML(record)), 0o644); err != nil {
		return res, fmt.Errorf("write html report: %w", err)
	}
	res.HTMLPath = htmlPath

	if a.cfg.EnablePDF {
		// PDF output is a convenience copy; failing to write it does not
		// fail the document.
		if err := report.WritePDF(record, pdfPath); err != nil {
			log.Warn().Err(err).Str("input", path).Msg("PDF report failed")
		} else {
			res.PDFPath = pdfPath
		}
	}
	return res, nil
}

// Run processes every configured input in order. Failures are logged per
// document and do not stop the batch; Run only returns an error when nothing
// succeeded.
func (a *App) Run() error {
	var processed int
	for _, path := range a.cfg.Inputs {
		res, err := a.ProcessFile(path)
		if err != nil {
			log.Error().Err(err).Str("input", path).Msg("document failed")
			continue
		}
		processed++
		log.Info().
			Str("input", res.Input).
			Stringer("vendor", res.Vendor).
			Str("bookingID", res.BookingID).
			Str("text", res.TextPath).
			Str("html", res.HTMLPath).
			Msg("document processed")
	}
	if processed == 0 && len(a.cfg.Inputs) > 0 {
		return ErrNoDocumentsProcessed
	}
	return nil
}
