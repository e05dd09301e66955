package casehistory

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Party blocks are free text: numbered entries separated by "N)" markers,
// each optionally followed by one or more "Advocate-NAME" sub-lines. An
// advocate line attaches to the immediately preceding party; attachment
// stops at the next numbered marker, not at other headings.

var (
	partyMarker     = regexp.MustCompile(`\d+\)`)
	advocatePattern = regexp.MustCompile(`(?i)advocate\s*[-:]\s*([^,\n]+)`)
)

// parseParties extracts the petitioner and respondent lists. Blocks are
// located by the portal's CSS classes first, then by heading text for pages
// rendered without them.
func parseParties(doc *goquery.Document) (Parties, bool) {
	petitioners, pOK := partyBlock(doc, "span.Petitioner_Advocate_table", "petitioner")
	respondents, rOK := partyBlock(doc, "span.Respondent_Advocate_table", "respondent")

	return Parties{Petitioners: petitioners, Respondents: respondents}, pOK || rOK
}

// partyBlock locates one party section and splits it into entries.
func partyBlock(doc *goquery.Document, selector, heading string) ([]Party, bool) {
	region := doc.Find(selector).First()
	if region.Length() == 0 {
		region = findByHeading(doc, heading)
	}
	if region.Length() == 0 {
		return nil, false
	}
	return splitParties(textWithBreaks(region)), true
}

// findByHeading looks for a heading containing the given word and returns
// the element following it, the fallback layout on older portal pages.
func findByHeading(doc *goquery.Document, word string) *goquery.Selection {
	var result *goquery.Selection
	doc.Find("h2, h3, h4, caption, th").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.ToLower(normalizeText(sel.Text()))
		if strings.Contains(text, word) && strings.Contains(text, "advocate") {
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

// splitParties breaks a block of party text on numbered markers and builds
// one Party per entry. A party with no advocate line gets an empty (non-nil)
// advocate list; entries are never dropped for missing advocates.
func splitParties(text string) []Party {
	entries := partyMarker.Split(text, -1)
	if len(entries) <= 1 {
		return nil
	}

	parties := make([]Party, 0, len(entries)-1)
	for _, entry := range entries[1:] {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		name := partyName(entry)
		if name == "" {
			continue
		}

		advocates := []string{}
		for _, m := range advocatePattern.FindAllStringSubmatch(entry, -1) {
			if adv := normalizeText(m[1]); adv != "" {
				advocates = append(advocates, adv)
			}
		}

		parties = append(parties, Party{Name: name, Advocates: advocates})
	}
	return parties
}

// partyName takes the first line of an entry and strips any advocate
// mention that the portal renders on the same line as the name.
func partyName(entry string) string {
	line := entry
	if i := strings.IndexByte(entry, '\n'); i >= 0 {
		line = entry[:i]
	}
	line = advocatePattern.ReplaceAllString(line, "")
	return normalizeText(line)
}
