package casehistory

import (
	"fmt"
	"strings"
)

// DefaultSummaryEntries is how many list entries Summarize shows per section
// before truncating.
const DefaultSummaryEntries = 3

// Summarize renders a CaseRecord as human-readable text. It is a pure
// projection over the record; no parsing logic lives here. Long lists show
// the first maxEntries items followed by a computed remainder count, so the
// truncation line always agrees with the actual list length. maxEntries <= 0
// selects DefaultSummaryEntries.
func Summarize(rec *CaseRecord, maxEntries int) string {
	if maxEntries <= 0 {
		maxEntries = DefaultSummaryEntries
	}

	var b strings.Builder
	rule := strings.Repeat("=", 72)
	fmt.Fprintf(&b, "%s\nCASE HISTORY SUMMARY\n%s\n", rule, rule)

	writePairs(&b, "Case Details", []pair{
		{"Filing Number", rec.Identifiers.FilingNumber},
		{"Filing Date", rec.Identifiers.FilingDate},
		{"Registration Number", rec.Identifiers.RegistrationNumber},
		{"Registration Date", rec.Identifiers.RegistrationDate},
		{"CNR Number", rec.Identifiers.CNRNumber},
	})

	writePairs(&b, "Case Status", []pair{
		{"First Hearing Date", rec.Status.FirstHearingDate},
		{"Decision Date", rec.Status.DecisionDate},
		{"Case Status", rec.Status.CaseStatus},
		{"Nature of Disposal", rec.Status.DisposalNature},
		{"Coram", rec.Status.Coram},
		{"Bench Type", rec.Status.BenchType},
		{"Judicial Branch", rec.Status.JudicialBranch},
		{"State", rec.Status.State},
		{"District", rec.Status.District},
	})

	writeParties(&b, "Petitioners", rec.Parties.Petitioners)
	writeParties(&b, "Respondents", rec.Parties.Respondents)

	if len(rec.Acts) > 0 {
		fmt.Fprintf(&b, "\nActs (%d):\n", len(rec.Acts))
		for _, act := range rec.Acts {
			if act.Section != "" {
				fmt.Fprintf(&b, "  %s - Section %s\n", act.Name, act.Section)
			} else {
				fmt.Fprintf(&b, "  %s\n", act.Name)
			}
		}
	}

	if rec.Categories != nil {
		writePairs(&b, "Category Details", []pair{
			{"Category", rec.Categories.Category},
			{"Sub Category", rec.Categories.SubCategory},
		})
	}

	if rec.LowerCourt != nil {
		writePairs(&b, "Subordinate Court", []pair{
			{"Court Number and Name", rec.LowerCourt.CourtNumberAndName},
			{"Case Number and Year", rec.LowerCourt.CaseNumberAndYear},
			{"Decision Date", rec.LowerCourt.DecisionDate},
			{"State", rec.LowerCourt.State},
			{"District", rec.LowerCourt.District},
		})
	}

	if rec.FIR != nil {
		writePairs(&b, "FIR Details", []pair{
			{"State", rec.FIR.State},
			{"District", rec.FIR.District},
			{"Police Station", rec.FIR.PoliceStation},
			{"FIR Number", rec.FIR.FIRNumber},
			{"Year", rec.FIR.Year},
		})
	}

	if n := len(rec.IAEntries); n > 0 {
		fmt.Fprintf(&b, "\nIA Details (%s):\n", countLabel(n))
		for i, ia := range rec.IAEntries {
			if i >= maxEntries {
				writeRemainder(&b, n-maxEntries)
				break
			}
			fmt.Fprintf(&b, "  %s: %s (%s)\n", ia.IANumber, ia.Status, ia.NextDate)
		}
	}

	if n := len(rec.Hearings); n > 0 {
		fmt.Fprintf(&b, "\nHearing History (%s):\n", countLabel(n))
		for i, h := range rec.Hearings {
			if i >= maxEntries {
				writeRemainder(&b, n-maxEntries)
				break
			}
			fmt.Fprintf(&b, "  %s: %s (Judge: %s)\n", h.HearingDate, h.Purpose, h.Judge)
		}
	}

	if n := len(rec.Orders); n > 0 {
		fmt.Fprintf(&b, "\nOrders (%d):\n", n)
		for i, o := range rec.Orders {
			if i >= maxEntries {
				writeRemainder(&b, n-maxEntries)
				break
			}
			fmt.Fprintf(&b, "  Order %s: %s (%s)\n", o.Number, o.OrderOn, o.Date)
			if o.Link != "" {
				fmt.Fprintf(&b, "    Link: %s\n", o.Link)
			}
		}
	}

	if n := len(rec.Objections); n > 0 {
		fmt.Fprintf(&b, "\nObjections (%s):\n", countLabel(n))
		for i, o := range rec.Objections {
			if i >= maxEntries {
				writeRemainder(&b, n-maxEntries)
				break
			}
			fmt.Fprintf(&b, "  %s (Date: %s)\n", o.Objection, o.ScrutinyDate)
		}
	}

	b.WriteString("\n" + rule + "\n")
	return b.String()
}

type pair struct {
	label string
	value string
}

// writePairs prints a labelled section, skipping empty fields. A section
// whose fields are all empty prints nothing at all.
func writePairs(b *strings.Builder, heading string, pairs []pair) {
	var printed bool
	for _, p := range pairs {
		if p.value == "" {
			continue
		}
		if !printed {
			fmt.Fprintf(b, "\n%s:\n", heading)
			printed = true
		}
		fmt.Fprintf(b, "  %s: %s\n", p.label, p.value)
	}
}

func writeParties(b *strings.Builder, heading string, parties []Party) {
	if len(parties) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s (%d):\n", heading, len(parties))
	for i, party := range parties {
		fmt.Fprintf(b, "  %d. %s\n", i+1, party.Name)
		for _, adv := range party.Advocates {
			fmt.Fprintf(b, "     Advocate: %s\n", adv)
		}
	}
}

func writeRemainder(b *strings.Builder, remaining int) {
	fmt.Fprintf(b, "  ... and %d more %s\n", remaining, plural(remaining, "entry", "entries"))
}

func countLabel(n int) string {
	return fmt.Sprintf("%d %s", n, plural(n, "entry", "entries"))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
