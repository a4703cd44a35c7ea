package app

import (
	"path/filepath"
	"strings"
)

// outputPaths derives the output file pair (and optional PDF path) for an
// input document. For an input named <base>.<ext> the outputs are
// <base>_extracted.txt, <base>_report.html, and <base>_report.pdf, written
// beside the input unless outDir redirects them.
func outputPaths(inputPath, outDir string) (txtPath, htmlPath, pdfPath string) {
	base := filepath.Base(inputPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	dir := outDir
	if dir == "" {
		dir = filepath.Dir(inputPath)
	}
	txtPath = filepath.Join(dir, base+"_extracted.txt")
	htmlPath = filepath.Join(dir, base+"_report.html")
	pdfPath = filepath.Join(dir, base+"_report.pdf")
	return txtPath, htmlPath, pdfPath
}
