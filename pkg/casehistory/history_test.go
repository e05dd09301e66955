package casehistory

import "testing"

func TestParseActsMultipleSections(t *testing.T) {
	html := `<html><body><table id="act_table">
		<tr><th>Under Act(s)</th><th>Under Section(s)</th></tr>
		<tr><td>Indian Penal Code</td><td>302, 34; 120B</td></tr>
		<tr><td>Arms Act</td><td>25</td></tr>
		<tr><td>Indian Penal Code</td><td>302</td></tr>
	</table></body></html>`

	acts, ok := parseActs(mustDoc(t, html))
	if !ok {
		t.Fatal("expected acts table to be present")
	}

	want := []Act{
		{Name: "Indian Penal Code", Section: "302"},
		{Name: "Indian Penal Code", Section: "34"},
		{Name: "Indian Penal Code", Section: "120B"},
		{Name: "Arms Act", Section: "25"},
		{Name: "Indian Penal Code", Section: "302"},
	}
	if len(acts) != len(want) {
		t.Fatalf("acts = %v, want %d pairs", acts, len(want))
	}
	for i := range want {
		if acts[i] != want[i] {
			t.Errorf("acts[%d] = %+v, want %+v", i, acts[i], want[i])
		}
	}
}

func TestParseActsEmptySectionCell(t *testing.T) {
	html := `<html><body><table id="act_table">
		<tr><th>Under Act(s)</th><th>Under Section(s)</th></tr>
		<tr><td>Some Act</td><td></td></tr>
	</table></body></html>`

	acts, _ := parseActs(mustDoc(t, html))
	if len(acts) != 1 {
		t.Fatalf("acts = %v, want one pair", acts)
	}
	if acts[0].Name != "Some Act" || acts[0].Section != "" {
		t.Errorf("acts[0] = %+v", acts[0])
	}
}

// Short rows are padded with empty strings; rows are never dropped for
// missing cells.
func TestParseHearingsShortRows(t *testing.T) {
	html := `<html><body><table class="history_table">
		<tr><th>Cause List Type</th><th>Judge</th><th>Business Date</th><th>Hearing Date</th><th>Purpose</th></tr>
		<tr><td>Daily List</td><td>JUDGE A</td><td>01-01-2024</td><td>02-01-2024</td><td>HEARING</td></tr>
		<tr><td>Daily List</td></tr>
		<tr><td>Daily List</td><td></td><td>03-01-2024</td><td>04-01-2024</td><td>ORDERS</td></tr>
	</table></body></html>`

	hearings, ok := parseHearings(mustDoc(t, html))
	if !ok {
		t.Fatal("expected hearings table to be present")
	}
	if len(hearings) != 3 {
		t.Fatalf("hearings = %d, want 3 (no silent drops)", len(hearings))
	}
	if hearings[1].Judge != "" || hearings[1].HearingDate != "" {
		t.Errorf("short row not padded: %+v", hearings[1])
	}
	if hearings[2].Judge != "" {
		t.Errorf("empty judge cell should stay empty, got %q", hearings[2].Judge)
	}
}

// The portal nests the orders listing inside the history table on some
// pages; rows restating the order header are not hearings.
func TestParseHearingsSkipsOrderHeaderRow(t *testing.T) {
	html := `<html><body><table class="history_table">
		<tr><th>Cause List Type</th><th>Judge</th><th>Business Date</th><th>Hearing Date</th><th>Purpose</th></tr>
		<tr><td>Daily List</td><td>JUDGE A</td><td>01-01-2024</td><td>02-01-2024</td><td>HEARING</td></tr>
		<tr><td>Order Number</td><td>Order on</td><td>Judge</td><td>Order Date</td><td>Order Details</td></tr>
	</table></body></html>`

	hearings, _ := parseHearings(mustDoc(t, html))
	if len(hearings) != 1 {
		t.Fatalf("hearings = %d, want 1", len(hearings))
	}
}

// When the orders table is nested inside the history table, its rows belong
// to the orders, not the hearings; the wrapper row hosting the nested table
// is not a hearing either.
func TestParseHearingsNestedOrderTable(t *testing.T) {
	html := `<html><body><table class="history_table">
		<tr><th>Cause List Type</th><th>Judge</th><th>Business Date</th><th>Hearing Date</th><th>Purpose</th></tr>
		<tr><td>Daily List</td><td>JUDGE A</td><td>01-01-2024</td><td>02-01-2024</td><td>HEARING</td></tr>
		<tr><td colspan="5"><table class="order_table">
			<tr><th>Order Number</th><th>Order on</th><th>Judge</th><th>Order Date</th><th>Order Details</th></tr>
			<tr><td>1</td><td>CRM/1/2024</td><td>JUDGE A</td><td>01-02-2024</td><td><a href="orders/1.pdf">Disposed</a></td></tr>
			<tr><td>2</td><td>CRM/1/2024</td><td>JUDGE B</td><td>15-02-2024</td><td>Interim</td></tr>
		</table></td></tr>
	</table></body></html>`
	doc := mustDoc(t, html)

	hearings, ok := parseHearings(doc)
	if !ok {
		t.Fatal("expected hearings table to be present")
	}
	if len(hearings) != 1 {
		t.Fatalf("hearings = %+v, want exactly the one real hearing row", hearings)
	}
	want := Hearing{
		CauseListType: "Daily List",
		Judge:         "JUDGE A",
		BusinessDate:  "01-01-2024",
		HearingDate:   "02-01-2024",
		Purpose:       "HEARING",
	}
	if hearings[0] != want {
		t.Errorf("hearings[0] = %+v, want %+v", hearings[0], want)
	}

	orders, ok := parseOrders(doc)
	if !ok {
		t.Fatal("expected nested orders table to be found")
	}
	if len(orders) != 2 {
		t.Fatalf("orders = %+v, want 2", orders)
	}
	if orders[0].Number != "1" || orders[0].Link != "orders/1.pdf" {
		t.Errorf("orders[0] = %+v", orders[0])
	}
	if orders[1].Number != "2" || orders[1].Judge != "JUDGE B" {
		t.Errorf("orders[1] = %+v", orders[1])
	}
}

func TestParseOrdersLinkless(t *testing.T) {
	html := `<html><body><table class="order_table">
		<tr><th>Order Number</th><th>Order on</th><th>Judge</th><th>Order Date</th><th>Order Details</th></tr>
		<tr><td>1</td><td>CRM/1/2024</td><td>JUDGE A</td><td>01-02-2024</td><td>Disposed</td></tr>
	</table></body></html>`

	orders, _ := parseOrders(mustDoc(t, html))
	if len(orders) != 1 {
		t.Fatalf("orders = %d, want 1", len(orders))
	}
	if orders[0].Link != "" {
		t.Errorf("Link = %q, want empty for a row without an anchor", orders[0].Link)
	}
	if orders[0].Details != "Disposed" {
		t.Errorf("Details = %q", orders[0].Details)
	}
}

func TestHistoryTablesAbsent(t *testing.T) {
	doc := mustDoc(t, `<html><body><p>no tables here</p></body></html>`)

	if _, ok := parseHearings(doc); ok {
		t.Error("hearings reported present")
	}
	if _, ok := parseOrders(doc); ok {
		t.Error("orders reported present")
	}
	if _, ok := parseObjections(doc); ok {
		t.Error("objections reported present")
	}
	if _, ok := parseIAEntries(doc); ok {
		t.Error("IA entries reported present")
	}
}

func TestParseFIRWhollyAbsent(t *testing.T) {
	doc := mustDoc(t, `<html><body><table class="case_details_table"></table></body></html>`)
	fir, ok := parseFIR(doc, DefaultLabels())
	if ok {
		t.Fatalf("FIR reported present: %+v", fir)
	}
	if fir != (FIRDetails{}) {
		t.Errorf("absent FIR carries values: %+v", fir)
	}
}

func TestParseFIRPartialFields(t *testing.T) {
	html := `<html><body><span class="FIR_details_table">
		Police Station : KOTWALI<br/>
		FIR Number : 100<br/>
	</span></body></html>`

	fir, ok := parseFIR(mustDoc(t, html), DefaultLabels())
	if !ok {
		t.Fatal("expected FIR section to be present")
	}
	if fir.PoliceStation != "KOTWALI" || fir.FIRNumber != "100" {
		t.Errorf("fir = %+v", fir)
	}
	// Fields absent inside a present section are empty strings.
	if fir.State != "" || fir.District != "" || fir.Year != "" {
		t.Errorf("absent fields not empty: %+v", fir)
	}
}
