package sourcetext

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FromFile dispatches on the file extension: .pdf goes through the PDF page
// extractor, .html/.htm through the markup stripper, and anything else is
// read verbatim as UTF-8 text.
func FromFile(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return FromPDF(path)
	case ".html", ".htm":
		raw, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read html: %w", err)
		}
		return FromHTML(raw), nil
	default:
		raw, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read text: %w", err)
		}
		return string(raw), nil
	}
}
