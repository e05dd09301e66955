package casehistory

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// History tables are the chronological core of the record. Rows are never
// silently dropped: a row with missing cells still produces an entry with
// empty strings in the gaps, because losing a hearing or an order corrupts
// the timeline. Only header rows are skipped.

// eachDataRow invokes fn once per data row of a table, skipping the header.
// A header row is one containing <th> cells, or the first row when the table
// uses <td> headers, the portal's usual habit. Only rows that belong to the
// table itself count: the portal nests one table inside another (the orders
// table sits inside the hearing history on some pages), and rows of the
// inner table, along with the wrapper row hosting it, are not data rows of
// the outer one.
func eachDataRow(table *goquery.Selection, fn func(cells *goquery.Selection)) {
	anchor := table.Get(0)
	seen := 0
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		if row.Closest("table").Get(0) != anchor {
			return
		}
		if row.Find("table").Length() > 0 {
			return
		}
		seen++
		if row.Find("th").Length() > 0 {
			return
		}
		if seen == 1 {
			return
		}
		cells := row.Find("td")
		if cells.Length() == 0 {
			return
		}
		fn(cells)
	})
}

// cellText returns the normalized text of the i-th cell, or an empty string
// when the row is short. A missing cell is empty data, not a reason to skip
// the row.
func cellText(cells *goquery.Selection, i int) string {
	if i >= cells.Length() {
		return ""
	}
	return normalizeText(cells.Eq(i).Text())
}

// parseHearings extracts hearing-history rows (table.history_table).
// Column order: cause list type, judge, business date, hearing date,
// purpose. Rows of a nested orders table never reach fn (see eachDataRow);
// a flat row restating the order header is skipped by its first cell.
func parseHearings(doc *goquery.Document) ([]Hearing, bool) {
	table := doc.Find("table.history_table").First()
	if table.Length() == 0 {
		return nil, false
	}

	var hearings []Hearing
	eachDataRow(table, func(cells *goquery.Selection) {
		if strings.EqualFold(cellText(cells, 0), "order number") {
			return
		}
		hearings = append(hearings, Hearing{
			CauseListType: cellText(cells, 0),
			Judge:         cellText(cells, 1),
			BusinessDate:  cellText(cells, 2),
			HearingDate:   cellText(cells, 3),
			Purpose:       cellText(cells, 4),
		})
	})
	return hearings, true
}

// parseOrders extracts order rows (table.order_table). The detail link href
// is preserved verbatim, absolute or relative; resolving it against a base
// URL is the caller's business.
func parseOrders(doc *goquery.Document) ([]Order, bool) {
	table := doc.Find("table.order_table").First()
	if table.Length() == 0 {
		return nil, false
	}

	var orders []Order
	eachDataRow(table, func(cells *goquery.Selection) {
		order := Order{
			Number:  cellText(cells, 0),
			OrderOn: cellText(cells, 1),
			Judge:   cellText(cells, 2),
			Date:    cellText(cells, 3),
			Details: cellText(cells, 4),
		}
		if cells.Length() > 4 {
			if href, ok := cells.Eq(4).Find("a").First().Attr("href"); ok {
				order.Link = strings.TrimSpace(href)
			}
		}
		orders = append(orders, order)
	})
	return orders, true
}

// parseObjections extracts scrutiny-objection rows (table.obj_table).
func parseObjections(doc *goquery.Document) ([]Objection, bool) {
	table := doc.Find("table.obj_table").First()
	if table.Length() == 0 {
		return nil, false
	}

	var objections []Objection
	eachDataRow(table, func(cells *goquery.Selection) {
		objections = append(objections, Objection{
			SerialNumber:   cellText(cells, 0),
			ScrutinyDate:   cellText(cells, 1),
			Objection:      cellText(cells, 2),
			ComplianceDate: cellText(cells, 3),
			ReceiptDate:    cellText(cells, 4),
		})
	})
	return objections, true
}

// parseIAEntries extracts interlocutory-application rows (table.IAheading).
func parseIAEntries(doc *goquery.Document) ([]IAEntry, bool) {
	table := doc.Find("table.IAheading").First()
	if table.Length() == 0 {
		return nil, false
	}

	var entries []IAEntry
	eachDataRow(table, func(cells *goquery.Selection) {
		entries = append(entries, IAEntry{
			IANumber:   cellText(cells, 0),
			Party:      cellText(cells, 1),
			FilingDate: cellText(cells, 2),
			NextDate:   cellText(cells, 3),
			Status:     cellText(cells, 4),
		})
	})
	return entries, true
}
