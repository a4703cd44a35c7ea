// Package report renders a normalized booking record into its output
// document formats. The plain-text layout is a compatibility contract and
// must be reproduced byte for byte; the HTML document is self-contained with
// no template or resource dependency.
package report

import (
	"fmt"
	"html"
	"strings"

	"github.com/hoteldesk/otaparse/internal/schema"
)

// Text renders one "Field: value" line per top-level field in schema order,
// then the billing section header, then one indented line per billing
// subfield.
func Text(r schema.Record) string {
	var b strings.Builder
	for _, field := range schema.FieldOrder {
		if field == schema.FieldBilling {
			continue
		}
		fmt.Fprintf(&b, "%s: %s\n", field, r.Get(field))
	}
	b.WriteString("\n--- Billing Details: ---\n")
	for _, subfield := range schema.BillingOrder {
		fmt.Fprintf(&b, "  %s: %s\n", subfield, r.Billing(subfield))
	}
	return b.String()
}

// HTML renders a minimal self-contained document: a title drawn from the
// booking ID, a status badge, one table row per field in schema order, a
// billing section header, and a closing informational footer. Field values
// come from untrusted documents and are escaped before being embedded in
// markup.
func HTML(r schema.Record) string {
	var rows strings.Builder
	for _, field := range schema.FieldOrder {
		if field == schema.FieldBilling {
			continue
		}
		fmt.Fprintf(&rows, "<tr><td>%s</td><td>%s</td></tr>\n",
			html.EscapeString(field), html.EscapeString(r.Get(field)))
	}
	var billRows strings.Builder
	for _, subfield := range schema.BillingOrder {
		fmt.Fprintf(&billRows, "<tr><td>%s</td><td>%s</td></tr>\n",
			html.EscapeString(subfield), html.EscapeString(r.Billing(subfield)))
	}

	title := html.EscapeString(r.Get(schema.FieldBookingID))
	status := html.EscapeString(r.Get(schema.FieldStatus))

	return fmt.Sprintf(`<!doctype html>
<html lang="en"><meta charset="utf-8"><title>%s-report</title>
<style>
body{font-family:system-ui,-apple-system,Segoe UI,Roboto,Arial,sans-serif;margin:24px;line-height:1.45}
h1{font-size:20px;margin:0 0 8px}
.badge{display:inline-block;padding:2px 8px;border-radius:999px;background:#fee2e2;color:#991b1b;
       font-weight:700;font-size:12px;margin-left:6px}
table{border-collapse:collapse;min-width:720px;max-width:980px;box-shadow:0 2px 8px rgba(0,0,0,.06)}
td,th{border:1px solid #e5e7eb;padding:8px 10px;vertical-align:top}
td:first-child{background:#f9fafb;font-weight:600;width:260px}
tfoot td{border:none;color:#6b7280;padding-top:10px}
</style>
<h1>Normalized Booking <span class="badge">%s</span></h1>
<table><tbody>
%s<tr><th colspan="2" style="text-align:left">Billing Details</th></tr>
%s</tbody>
<tfoot><tr><td colspan="2">Source: OTA confirmation email.</td></tr></tfoot>
</table></html>
`, title, status, rows.String(), billRows.String())
}
