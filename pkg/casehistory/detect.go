package casehistory

import "strings"

// Detection is signature based and runs over the raw text before any tree is
// built: error pages are cheap to reject, and their prose must never be
// mistaken for case data. Tables are package constants, immutable after init.

// sqlErrorSignatures are fragments characteristic of the portal's disguised
// database error pages. Matching is case-insensitive.
var sqlErrorSignatures = []string{
	"there is an sql error",
	"sql error",
	"sqlexception",
	"database error",
	"ora-",
	"server error",
}

// emptyResultSignatures are the portal's "nothing matched" phrasings.
var emptyResultSignatures = []string{
	"no records found",
	"no record found",
	"record not found",
	"case not found",
	"no data available",
}

// structureAnchors identify a real case-history page. Class/id anchors are
// checked as raw substrings so detection never needs a parsed tree; the text
// anchors cover pages the portal renders without its usual CSS classes.
var structureAnchors = []string{
	"case_details_table",
	"table_r",
	"petitioner_advocate_table",
	"respondent_advocate_table",
	"act_table",
	"history_table",
	"order_table",
	"fir_details_table",
	"filing number",
	"registration number",
	"petitioner",
	"respondent",
	"hearing date",
}

// Detect classifies a raw document before structural parsing. It returns nil
// when the document looks like a parsable case-history page, or a
// *DetectionError unwrapping to ErrServerSQL, ErrEmptyResult, or
// ErrMalformedMarkup.
//
// Order matters: an SQL error page contains no structure anchors, and must
// classify as ErrServerSQL, not ErrMalformedMarkup.
func Detect(html string) error {
	lower := strings.ToLower(html)

	for _, sig := range sqlErrorSignatures {
		if strings.Contains(lower, sig) {
			return &DetectionError{Class: ErrServerSQL, Signature: sig}
		}
	}
	for _, sig := range emptyResultSignatures {
		if strings.Contains(lower, sig) {
			return &DetectionError{Class: ErrEmptyResult, Signature: sig}
		}
	}
	for _, anchor := range structureAnchors {
		if strings.Contains(lower, anchor) {
			return nil
		}
	}
	return &DetectionError{Class: ErrMalformedMarkup}
}
