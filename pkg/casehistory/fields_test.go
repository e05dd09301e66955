package casehistory

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("failed to parse test HTML: %v", err)
	}
	return doc
}

func TestFieldExtractorFind(t *testing.T) {
	ex := newFieldExtractor(DefaultLabels())

	tests := []struct {
		name      string
		html      string
		field     string
		want      string
		wantFound bool
	}{
		{
			name:      "label and value in sibling cells",
			html:      `<table><tr><td>Filing Number</td><td>CRM/1/2024</td></tr></table>`,
			field:     FieldFilingNumber,
			want:      "CRM/1/2024",
			wantFound: true,
		},
		{
			name:      "label nested in markup",
			html:      `<table><tr><td><label>Filing Number</label></td><td><strong>CRM/1/2024</strong></td></tr></table>`,
			field:     FieldFilingNumber,
			want:      "CRM/1/2024",
			wantFound: true,
		},
		{
			name:      "label and value in one cell",
			html:      `<table><tr><td>CNR Number : WBHC02-000001-2024</td></tr></table>`,
			field:     FieldCNRNumber,
			want:      "WBHC02-000001-2024",
			wantFound: true,
		},
		{
			name:      "dash delimiter in one cell",
			html:      `<table><tr><td>Coram - HON'BLE JUSTICE A</td></tr></table>`,
			field:     FieldCoram,
			want:      "HON'BLE JUSTICE A",
			wantFound: true,
		},
		{
			name:      "synonym fallback",
			html:      `<table><tr><td>Filing No.</td><td>CRM/1/2024</td></tr></table>`,
			field:     FieldFilingNumber,
			want:      "CRM/1/2024",
			wantFound: true,
		},
		{
			name:      "case and whitespace tolerant",
			html:      "<table><tr><td>  filing\n  NUMBER : </td><td>CRM/1/2024</td></tr></table>",
			field:     FieldFilingNumber,
			want:      "CRM/1/2024",
			wantFound: true,
		},
		{
			name:      "absent label",
			html:      `<table><tr><td>Something Else</td><td>value</td></tr></table>`,
			field:     FieldFilingNumber,
			want:      "",
			wantFound: false,
		},
		{
			name:      "label found but value cell empty",
			html:      `<table><tr><td>Filing Number</td><td></td></tr></table>`,
			field:     FieldFilingNumber,
			want:      "",
			wantFound: true,
		},
		{
			name:      "label prefix of longer word does not match",
			html:      `<table><tr><td>Statement of facts</td><td>irrelevant</td></tr></table>`,
			field:     FieldState,
			want:      "",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustDoc(t, tt.html)
			got, found := ex.find(doc.Selection, tt.field)
			if found != tt.wantFound {
				t.Fatalf("found = %v, want %v", found, tt.wantFound)
			}
			if got != tt.want {
				t.Errorf("value = %q, want %q", got, tt.want)
			}
		})
	}
}

// Duplicate labels in one region resolve to the first occurrence in document
// order. This is the documented tie-break, not an accident of iteration.
func TestFieldExtractorFirstMatchWins(t *testing.T) {
	html := `<table>
		<tr><td>Filing Number</td><td>FIRST/1/2024</td></tr>
		<tr><td>Filing Number</td><td>SECOND/2/2024</td></tr>
	</table>`

	ex := newFieldExtractor(DefaultLabels())
	got, found := ex.find(mustDoc(t, html).Selection, FieldFilingNumber)
	if !found {
		t.Fatal("expected a match")
	}
	if got != "FIRST/1/2024" {
		t.Errorf("value = %q, want first occurrence to win", got)
	}
}

func TestNormalizeText(t *testing.T) {
	got := normalizeText("  CRM(DB)   /124/2024\n\t ")
	if got != "CRM(DB) /124/2024" {
		t.Errorf("normalizeText = %q", got)
	}
}

func TestTextWithBreaks(t *testing.T) {
	doc := mustDoc(t, `<span id="x">1) FIRST<br/>Advocate-A<br/>2) SECOND</span>`)
	text := textWithBreaks(doc.Find("#x"))
	lines := strings.Split(text, "\n")
	if len(lines) < 3 {
		t.Fatalf("expected br elements to produce line breaks, got %q", text)
	}
	if strings.TrimSpace(lines[0]) != "1) FIRST" {
		t.Errorf("first line = %q", lines[0])
	}
}
