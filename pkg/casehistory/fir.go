package casehistory

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// parseFIR extracts the FIR section. The marker is the portal's
// FIR_details_table span, with a heading-text fallback; no marker means the
// section is absent, which is a normal outcome, not an error. When the
// marker is present every field resolves to either its value or an empty
// string, so the section is wholly present or wholly absent and never holds
// placeholders.
//
// If a document ever carried more than one FIR span only the first in
// document order would be read. No multi-FIR sample has been observed; the
// behavior is a known limitation rather than a supported layout.
func parseFIR(doc *goquery.Document, labels LabelTable) (FIRDetails, bool) {
	region := doc.Find("span.FIR_details_table").First()
	if region.Length() == 0 {
		region = firByHeading(doc)
	}
	if region.Length() == 0 {
		return FIRDetails{}, false
	}

	pairs := splitLabeledLines(textWithBreaks(region))

	var fir FIRDetails
	fir.State = pairs.lookup(labels, FieldState)
	fir.District = pairs.lookup(labels, FieldDistrict)
	fir.PoliceStation = pairs.lookup(labels, FieldPoliceStation)
	fir.FIRNumber = pairs.lookup(labels, FieldFIRNumber)
	fir.Year = pairs.lookup(labels, FieldYear)
	return fir, true
}

// firByHeading finds an "FIR Details" heading and returns the element that
// follows it.
func firByHeading(doc *goquery.Document) *goquery.Selection {
	var result *goquery.Selection
	doc.Find("h2, h3, h4, caption").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.ToLower(normalizeText(sel.Text()))
		if strings.HasPrefix(text, "fir details") {
			result = sel.Next()
			return false
		}
		return true
	})
	if result == nil {
		return doc.Find("casehistory-no-such-element")
	}
	return result
}
