package casehistory

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Section parsers are pure functions over the document tree: each returns
// its sub-structure and whether the section was present at all. Absent
// fields inside a present section are empty strings.

// cnrPattern matches the registry's CNR format, e.g. WBHC02-001234-2024.
// The CNR row mixes the number with advisory prose, so the token is lifted
// out by pattern rather than by cell position.
var cnrPattern = regexp.MustCompile(`[A-Z]{2}HC\d{2}-\d+-\d{4}`)

// parseIdentifiers extracts the case-details section. The portal renders it
// as table.case_details_table; when that class is missing the labels are
// looked up across the whole document.
func parseIdentifiers(doc *goquery.Document, ex *fieldExtractor) (Identifiers, bool) {
	region := doc.Find("table.case_details_table").First()
	inTable := region.Length() > 0
	if !inTable {
		region = doc.Selection
	}

	var id Identifiers
	var found bool
	assign := func(dst *string, field string) {
		value, ok := ex.find(region, field)
		if ok {
			*dst = value
			found = true
		}
	}
	assign(&id.FilingNumber, FieldFilingNumber)
	assign(&id.FilingDate, FieldFilingDate)
	assign(&id.RegistrationNumber, FieldRegistrationNumber)
	assign(&id.RegistrationDate, FieldRegistrationDate)
	assign(&id.CNRNumber, FieldCNRNumber)

	// The CNR cell carries trailing advisory text; reduce it to the bare
	// number when the format is recognizable.
	if m := cnrPattern.FindString(id.CNRNumber); m != "" {
		id.CNRNumber = m
	} else if id.CNRNumber == "" {
		if m := cnrPattern.FindString(region.Text()); m != "" {
			id.CNRNumber = m
			found = true
		}
	}

	return id, inTable || found
}

// parseStatus extracts the case-status section (table.table_r).
func parseStatus(doc *goquery.Document, ex *fieldExtractor) (Status, bool) {
	region := doc.Find("table.table_r").First()
	inTable := region.Length() > 0
	if !inTable {
		region = doc.Selection
	}

	var st Status
	var found bool
	assign := func(dst *string, field string) {
		value, ok := ex.find(region, field)
		if ok {
			*dst = value
			found = true
		}
	}
	assign(&st.FirstHearingDate, FieldFirstHearingDate)
	assign(&st.DecisionDate, FieldDecisionDate)
	assign(&st.CaseStatus, FieldCaseStatus)
	assign(&st.DisposalNature, FieldDisposalNature)
	assign(&st.Coram, FieldCoram)
	assign(&st.BenchType, FieldBenchType)
	assign(&st.JudicialBranch, FieldJudicialBranch)
	assign(&st.State, FieldState)
	assign(&st.District, FieldDistrict)

	// The portal places the judicial branch and bench type in the details
	// header table on some layouts.
	if details := doc.Find("table.case_details_table").First(); details.Length() > 0 {
		if st.JudicialBranch == "" {
			st.JudicialBranch, _ = ex.find(details, FieldJudicialBranch)
		}
		if st.BenchType == "" {
			st.BenchType, _ = ex.find(details, FieldBenchType)
		}
	}

	return st, inTable || found
}

// parseCategories extracts the subject classification (table#subject_table).
func parseCategories(doc *goquery.Document, ex *fieldExtractor) (Categories, bool) {
	region := doc.Find("table#subject_table, table.subject_table").First()
	if region.Length() == 0 {
		return Categories{}, false
	}

	var c Categories
	c.Category, _ = ex.find(region, FieldCategory)
	c.SubCategory, _ = ex.find(region, FieldSubCategory)
	return c, true
}

// parseLowerCourt extracts subordinate-court information. The section is a
// span of colon-delimited lines rather than a table, so it is read line by
// line the same way the FIR section is.
func parseLowerCourt(doc *goquery.Document, labels LabelTable) (LowerCourt, bool) {
	region := doc.Find("span.Lower_court_table").First()
	if region.Length() == 0 {
		return LowerCourt{}, false
	}

	pairs := splitLabeledLines(textWithBreaks(region))

	var lc LowerCourt
	lc.CourtNumberAndName = pairs.lookup(labels, FieldCourtNumberAndName)
	lc.CaseNumberAndYear = pairs.lookup(labels, FieldCaseNumberAndYear)
	lc.DecisionDate = pairs.lookup(labels, FieldDecisionDate)
	lc.State = pairs.lookup(labels, FieldState)
	lc.District = pairs.lookup(labels, FieldDistrict)
	return lc, true
}

// labeledLine is one "Label : value" line from a free-text section.
type labeledLine struct {
	label string
	value string
}

type labeledLines []labeledLine

// splitLabeledLines breaks a block of text into label/value pairs, one per
// line, splitting on the first colon. Lines without a colon are skipped.
func splitLabeledLines(text string) labeledLines {
	var out labeledLines
	for _, line := range strings.Split(text, "\n") {
		label, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		label = normalizeText(label)
		if label == "" {
			continue
		}
		// The portal sometimes doubles the delimiter ("Date : : value").
		value = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(value), ":"))
		out = append(out, labeledLine{label: label, value: normalizeText(value)})
	}
	return out
}

// lookup resolves a canonical field against the parsed lines using the
// label table's synonyms in priority order. First matching line wins.
func (l labeledLines) lookup(labels LabelTable, field string) string {
	for _, synonym := range labels.synonyms(field) {
		for _, line := range l {
			if strings.EqualFold(line.label, synonym) {
				return line.value
			}
		}
	}
	return ""
}
