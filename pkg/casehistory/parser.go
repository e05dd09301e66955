package casehistory

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/courtline/ecourts/internal/logger"
)

// Parser turns raw case-history HTML into CaseRecords. The zero-value
// configuration uses the built-in label tables; a Parser is immutable after
// New and safe for concurrent use.
type Parser struct {
	labels LabelTable
}

// Option configures a Parser.
type Option func(*Parser)

// WithLabels overrides the label-synonym tables, e.g. tables loaded from a
// file with LoadLabels. The table must already be valid.
func WithLabels(labels LabelTable) Option {
	return func(p *Parser) {
		p.labels = labels
	}
}

// New creates a Parser.
func New(opts ...Option) *Parser {
	p := &Parser{labels: DefaultLabels()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse extracts a CaseRecord from one raw HTML document.
//
// The pipeline is: signature detection (fail fast on server-error pages),
// tree construction, independent section parsers, then assembly. On failure
// the error unwraps to one of ErrServerSQL, ErrEmptyResult,
// ErrMalformedMarkup, or is an *IncompleteRecordError; a partially
// populated record is never returned as success.
func (p *Parser) Parse(html string) (*CaseRecord, error) {
	if err := Detect(html); err != nil {
		logger.Debug("document rejected before parsing", "error", err)
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMarkup, err)
	}

	ex := newFieldExtractor(p.labels)

	identifiers, idOK := parseIdentifiers(doc, ex)
	status, stOK := parseStatus(doc, ex)
	parties, _ := parseParties(doc)
	acts, _ := parseActs(doc)
	hearings, _ := parseHearings(doc)
	orders, _ := parseOrders(doc)
	objections, _ := parseObjections(doc)
	iaEntries, _ := parseIAEntries(doc)

	record := &CaseRecord{
		Identifiers: identifiers,
		Status:      status,
		Parties:     parties,
		Acts:        acts,
		Hearings:    hearings,
		Orders:      orders,
		Objections:  objections,
		IAEntries:   iaEntries,
	}

	if categories, ok := parseCategories(doc, ex); ok {
		record.Categories = &categories
	}
	if lowerCourt, ok := parseLowerCourt(doc, p.labels); ok {
		record.LowerCourt = &lowerCourt
	}
	if fir, ok := parseFIR(doc, p.labels); ok {
		record.FIR = &fir
	}

	// Mandatory sections. The assembler reports what it could not recover
	// and invents nothing: optional sections stay absent, fields stay empty.
	var missing []string
	if !idOK {
		missing = append(missing, "identifiers")
	}
	if !stOK {
		missing = append(missing, "status")
	}
	if len(missing) > 0 {
		logger.Debug("assembly failed", "missing", missing)
		return nil, &IncompleteRecordError{Missing: missing}
	}

	logger.Debug("record assembled",
		"petitioners", len(record.Parties.Petitioners),
		"respondents", len(record.Parties.Respondents),
		"hearings", len(record.Hearings),
		"orders", len(record.Orders),
		"fir", record.FIR != nil)

	return record, nil
}

// Parse extracts a CaseRecord using the default label tables.
func Parse(html string) (*CaseRecord, error) {
	return New().Parse(html)
}
