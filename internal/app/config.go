package app

// Config holds runtime configuration for the application.
type Config struct {
	// Inputs are the document paths to process, in order.
	Inputs []string

	// OutDir redirects output files; empty means "beside the input".
	OutDir string

	// EnablePDF additionally writes <base>_report.pdf per document.
	EnablePDF bool

	Verbose bool
}
