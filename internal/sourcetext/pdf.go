// Package sourcetext turns input documents into the raw text fed to the
// extraction pipeline. Adapters exist for PDF, HTML, and plain-text files;
// each returns text that still needs whitespace normalization.
package sourcetext

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// FromPDF extracts the textual content of every page and joins pages with a
// newline. Pages that fail to decode or contain no text contribute nothing;
// image-only documents therefore yield an empty string rather than an error.
func FromPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	for pageNum := 1; pageNum <= r.NumPage(); pageNum++ {
		p := r.Page(pageNum)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil || text == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(text)
	}
	return b.String(), nil
}
