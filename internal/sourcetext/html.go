package sourcetext

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// FromHTML extracts readable text from a saved HTML email body. Script,
// style, and head content is skipped; block-level elements and <br> produce
// line breaks so label/value layouts survive the conversion.
func FromHTML(input []byte) string {
	node, err := html.Parse(bytes.NewReader(input))
	if err != nil || node == nil {
		return ""
	}
	var b strings.Builder
	collectText(&b, node)
	return b.String()
}

func collectText(b *strings.Builder, n *html.Node) {
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "script", "style", "noscript", "head", "iframe":
			return
		case "br", "hr":
			b.WriteString("\n")
		case "p", "div", "tr", "li", "h1", "h2", "h3", "h4", "h5", "h6":
			b.WriteString("\n")
		case "td", "th":
			// Cell boundaries become spaces so table rows read like the
			// column-aligned text the vendor patterns expect.
			b.WriteString(" ")
		}
	}

	if n.Type == html.TextNode {
		data := strings.ReplaceAll(n.Data, "\t", " ")
		data = strings.ReplaceAll(data, "\r", " ")
		b.WriteString(data)
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c)
	}

	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "p", "div", "tr", "li", "h1", "h2", "h3", "h4", "h5", "h6":
			b.WriteString("\n")
		}
	}
}
