// Package casehistory extracts structured case records from eCourts High
// Court Services case-history HTML pages.
//
// The input is one raw HTML document already fetched by a caller; the output
// is a CaseRecord or a classified error. The package performs no network,
// filesystem, or display I/O. Parsing is synchronous and reentrant: a Parser
// holds only immutable label tables, so one instance may be shared across
// goroutines.
package casehistory

// CaseRecord is the assembled output of one parse call. It is immutable
// after assembly; field names are stable for JSON/YAML interchange.
type CaseRecord struct {
	Identifiers Identifiers `json:"identifiers" yaml:"identifiers"`
	Status      Status      `json:"status" yaml:"status"`
	Parties     Parties     `json:"parties" yaml:"parties"`
	Acts        []Act       `json:"acts" yaml:"acts"`
	Categories  *Categories `json:"categories,omitempty" yaml:"categories,omitempty"`
	LowerCourt  *LowerCourt `json:"lower_court,omitempty" yaml:"lower_court,omitempty"`
	FIR         *FIRDetails `json:"fir,omitempty" yaml:"fir,omitempty"`
	IAEntries   []IAEntry   `json:"ia_entries" yaml:"ia_entries"`
	Hearings    []Hearing   `json:"hearings" yaml:"hearings"`
	Orders      []Order     `json:"orders" yaml:"orders"`
	Objections  []Objection `json:"objections" yaml:"objections"`
}

// Identifiers holds the case reference numbers. The server may omit any of
// them; an omitted field is an empty string, never an absent key.
type Identifiers struct {
	FilingNumber       string `json:"filing_number" yaml:"filing_number"`
	FilingDate         string `json:"filing_date" yaml:"filing_date"`
	RegistrationNumber string `json:"registration_number" yaml:"registration_number"`
	RegistrationDate   string `json:"registration_date" yaml:"registration_date"`
	CNRNumber          string `json:"cnr_number" yaml:"cnr_number"`
}

// Status holds the case-status fields. Coram is free text and may list
// several judges joined by a delimiter; it is preserved verbatim.
type Status struct {
	FirstHearingDate string `json:"first_hearing_date" yaml:"first_hearing_date"`
	DecisionDate     string `json:"decision_date" yaml:"decision_date"`
	CaseStatus       string `json:"case_status" yaml:"case_status"`
	DisposalNature   string `json:"disposal_nature" yaml:"disposal_nature"`
	Coram            string `json:"coram" yaml:"coram"`
	BenchType        string `json:"bench_type" yaml:"bench_type"`
	JudicialBranch   string `json:"judicial_branch" yaml:"judicial_branch"`
	State            string `json:"state" yaml:"state"`
	District         string `json:"district" yaml:"district"`
}

// Parties groups the petitioner and respondent lists in document order.
type Parties struct {
	Petitioners []Party `json:"petitioners" yaml:"petitioners"`
	Respondents []Party `json:"respondents" yaml:"respondents"`
}

// Party is one petitioner or respondent with its associated advocates.
// A party listed without an advocate line has an empty Advocates slice.
type Party struct {
	Name      string   `json:"name" yaml:"name"`
	Advocates []string `json:"advocates" yaml:"advocates"`
}

// Act is one (act, section) pair. An act cited under several sections
// appears once per section with the same act name.
type Act struct {
	Name    string `json:"act" yaml:"act"`
	Section string `json:"section" yaml:"section"`
}

// Categories holds the subject classification of the case.
type Categories struct {
	Category    string `json:"category" yaml:"category"`
	SubCategory string `json:"sub_category" yaml:"sub_category"`
}

// LowerCourt holds subordinate-court information for appealed cases.
type LowerCourt struct {
	CourtNumberAndName string `json:"court_number_and_name" yaml:"court_number_and_name"`
	CaseNumberAndYear  string `json:"case_number_and_year" yaml:"case_number_and_year"`
	DecisionDate       string `json:"decision_date" yaml:"decision_date"`
	State              string `json:"state" yaml:"state"`
	District           string `json:"district" yaml:"district"`
}

// FIRDetails is present only when the document carries an FIR section
// marker. Fields missing within a present section are empty strings.
type FIRDetails struct {
	State         string `json:"state" yaml:"state"`
	District      string `json:"district" yaml:"district"`
	PoliceStation string `json:"police_station" yaml:"police_station"`
	FIRNumber     string `json:"fir_number" yaml:"fir_number"`
	Year          string `json:"year" yaml:"year"`
}

// IAEntry is one interlocutory-application row.
type IAEntry struct {
	IANumber   string `json:"ia_number" yaml:"ia_number"`
	Party      string `json:"party" yaml:"party"`
	FilingDate string `json:"filing_date" yaml:"filing_date"`
	NextDate   string `json:"next_date" yaml:"next_date"`
	Status     string `json:"status" yaml:"status"`
}

// Hearing is one row of the hearing-history table, in document order.
// Judge may be empty; the row is still recorded.
type Hearing struct {
	CauseListType string `json:"cause_list_type" yaml:"cause_list_type"`
	Judge         string `json:"judge" yaml:"judge"`
	BusinessDate  string `json:"business_date" yaml:"business_date"`
	HearingDate   string `json:"hearing_date" yaml:"hearing_date"`
	Purpose       string `json:"purpose" yaml:"purpose"`
}

// Order is one row of the orders table. Link is the detail href exactly as
// it appears in the document; no resolution against a base URL happens here.
type Order struct {
	Number  string `json:"order_number" yaml:"order_number"`
	OrderOn string `json:"order_on" yaml:"order_on"`
	Judge   string `json:"judge" yaml:"judge"`
	Date    string `json:"order_date" yaml:"order_date"`
	Details string `json:"order_details" yaml:"order_details"`
	Link    string `json:"link,omitempty" yaml:"link,omitempty"`
}

// Objection is one row of the scrutiny-objection table.
type Objection struct {
	SerialNumber   string `json:"sr_no" yaml:"sr_no"`
	ScrutinyDate   string `json:"scrutiny_date" yaml:"scrutiny_date"`
	Objection      string `json:"objection" yaml:"objection"`
	ComplianceDate string `json:"compliance_date" yaml:"compliance_date"`
	ReceiptDate    string `json:"receipt_date" yaml:"receipt_date"`
}
