package casehistory

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Duplicate labels inside one region resolve to the first match in document
// order. This is a deliberate tie-break, not an accident: the portal
// occasionally repeats a label in a footer legend, and the data cell is
// always the first occurrence.

// labelCandidates is the set of elements a label can live in. Cells come
// before their nested <label> children in document order, so cell-level
// matches win without special casing.
const labelCandidates = "td, th, label, span, b, strong"

// fieldExtractor resolves canonical fields to text values inside a document
// region using a LabelTable.
type fieldExtractor struct {
	labels LabelTable
}

func newFieldExtractor(labels LabelTable) *fieldExtractor {
	return &fieldExtractor{labels: labels}
}

// find returns the normalized value for field within region. The boolean
// reports whether any synonym matched at all; a matched label with an empty
// value cell yields ("", true). Absence is expected and is not an error.
func (e *fieldExtractor) find(region *goquery.Selection, field string) (string, bool) {
	for _, synonym := range e.labels.synonyms(field) {
		value, ok := findLabeled(region, synonym)
		if ok {
			return value, true
		}
	}
	return "", false
}

// findLabeled scans region for the first element whose text matches synonym,
// then reads the associated value. Three layouts are handled:
//
//   - label and value in sibling cells:   <td>Label</td><td>value</td>
//   - label and value in one cell:        <td>Label : value</td>
//   - label nested in markup:             <td><label>Label</label></td><td>value</td>
func findLabeled(region *goquery.Selection, synonym string) (string, bool) {
	var value string
	var found bool

	region.Find(labelCandidates).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := normalizeText(sel.Text())
		if text == "" {
			return true
		}

		if labelEquals(text, synonym) {
			value = siblingValue(sel)
			found = true
			return false
		}
		if rest, ok := inlineValue(text, synonym); ok {
			value = rest
			found = true
			return false
		}
		return true
	})

	return value, found
}

// labelEquals reports whether a cell's full text is the label itself,
// optionally suffixed with a colon.
func labelEquals(text, synonym string) bool {
	text = strings.TrimSuffix(strings.TrimSpace(text), ":")
	return strings.EqualFold(strings.TrimSpace(text), synonym)
}

// inlineValue handles "Label : value" in a single cell. The remainder after
// the delimiter is the value; an empty remainder still counts as a match.
func inlineValue(text, synonym string) (string, bool) {
	if len(text) < len(synonym) || !strings.EqualFold(text[:len(synonym)], synonym) {
		return "", false
	}
	rest := strings.TrimSpace(text[len(synonym):])
	if rest == "" {
		return "", false
	}
	if rest[0] != ':' && rest[0] != '-' {
		return "", false
	}
	return strings.TrimSpace(rest[1:]), true
}

// siblingValue reads the value cell adjacent to a matched label element. For
// a nested label the enclosing cell is located first; the value is the text
// of the next sibling cell.
func siblingValue(sel *goquery.Selection) string {
	cell := sel
	if !sel.Is("td, th") {
		if closest := sel.Closest("td, th"); closest.Length() > 0 {
			cell = closest
		}
	}
	next := cell.NextFiltered("td, th")
	if next.Length() == 0 {
		next = cell.Next()
	}
	return normalizeText(next.Text())
}

// normalizeText collapses runs of whitespace (including non-breaking spaces,
// which goquery decodes from &nbsp;) to single spaces and trims the ends.
func normalizeText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	return strings.Join(strings.Fields(s), " ")
}

// textWithBreaks renders a selection's text with newlines at block and <br>
// boundaries. goquery's Text() flattens <br>-separated lines into one run,
// which loses the line structure the party and FIR sections rely on.
func textWithBreaks(sel *goquery.Selection) string {
	var b strings.Builder
	for _, node := range sel.Nodes {
		writeNodeText(&b, node)
	}
	return b.String()
}

func writeNodeText(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		if n.Data == "br" {
			b.WriteByte('\n')
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeNodeText(b, c)
	}
	if n.Type == html.ElementNode {
		switch n.Data {
		case "p", "div", "tr", "li", "table":
			b.WriteByte('\n')
		}
	}
}
