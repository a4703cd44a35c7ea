package sourcetext

import (
	"strings"
	"testing"
)

func TestFromHTML_StripsMarkupKeepsLayout(t *testing.T) {
	input := `<!doctype html>
<html>
  <head><title>Agoda Booking</title><style>td{color:red}</style></head>
  <body>
    <script>trackOpen()</script>
    <div>Booking ID 987654321</div>
    <table>
      <tr><td>Customer First Name</td><td>THAO</td></tr>
      <tr><td>Customer Last Name</td><td>NGUYEN</td></tr>
    </table>
  </body>
</html>`

	got := FromHTML([]byte(input))

	if strings.Contains(got, "trackOpen") {
		t.Fatalf("script content leaked: %q", got)
	}
	if strings.Contains(got, "color:red") {
		t.Fatalf("style content leaked: %q", got)
	}
	if strings.Contains(got, "Agoda Booking") {
		t.Fatalf("head content leaked: %q", got)
	}
	if !strings.Contains(got, "Booking ID 987654321") {
		t.Fatalf("expected div text, got %q", got)
	}
	// Cells on one row stay on one line so label/value patterns still match.
	var nameLine string
	for _, line := range strings.Split(got, "\n") {
		if strings.Contains(line, "Customer First Name") {
			nameLine = line
			break
		}
	}
	if !strings.Contains(nameLine, "THAO") {
		t.Fatalf("expected label and value on one line, got %q", nameLine)
	}
}

func TestFromHTML_Invalid(t *testing.T) {
	// html.Parse is forgiving; even fragments produce some text.
	got := FromHTML([]byte("plain words, no markup"))
	if !strings.Contains(got, "plain words") {
		t.Fatalf("expected passthrough of text content, got %q", got)
	}
}
