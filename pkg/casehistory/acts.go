package casehistory

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// parseActs extracts the acts table into (act, section) pairs. A row whose
// section cell lists several sections yields one pair per section, all
// sharing the act name; the one-to-many relationship stays explicit instead
// of being flattened into a delimited string. Duplicate pairs are kept:
// the source may legitimately cite the same act twice.
func parseActs(doc *goquery.Document) ([]Act, bool) {
	table := doc.Find("table#act_table, table.act_table").First()
	if table.Length() == 0 {
		return nil, false
	}

	var acts []Act
	eachDataRow(table, func(cells *goquery.Selection) {
		name := cellText(cells, 0)
		if name == "" {
			return
		}
		sections := splitSections(cellText(cells, 1))
		if len(sections) == 0 {
			acts = append(acts, Act{Name: name})
			return
		}
		for _, section := range sections {
			acts = append(acts, Act{Name: name, Section: section})
		}
	})
	return acts, true
}

// splitSections breaks a section cell on the portal's delimiters.
func splitSections(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';'
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = normalizeText(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
