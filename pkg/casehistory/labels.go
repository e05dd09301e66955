package casehistory

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Canonical field keys used by the label tables and the field extractor.
const (
	FieldFilingNumber       = "filing_number"
	FieldFilingDate         = "filing_date"
	FieldRegistrationNumber = "registration_number"
	FieldRegistrationDate   = "registration_date"
	FieldCNRNumber          = "cnr_number"

	FieldFirstHearingDate = "first_hearing_date"
	FieldDecisionDate     = "decision_date"
	FieldCaseStatus       = "case_status"
	FieldDisposalNature   = "disposal_nature"
	FieldCoram            = "coram"
	FieldBenchType        = "bench_type"
	FieldJudicialBranch   = "judicial_branch"
	FieldState            = "state"
	FieldDistrict         = "district"

	FieldPoliceStation = "police_station"
	FieldFIRNumber     = "fir_number"
	FieldYear          = "year"

	FieldCategory    = "category"
	FieldSubCategory = "sub_category"

	FieldCourtNumberAndName = "court_number_and_name"
	FieldCaseNumberAndYear  = "case_number_and_year"
)

// LabelTable maps a canonical field key to the label synonyms the portal
// uses for it, in priority order. The table is read-only once a Parser holds
// it; callers must not mutate it after handing it to New.
type LabelTable map[string][]string

// DefaultLabels returns the synonyms observed on eCourts High Court Services
// pages. The portal is inconsistent about abbreviation and punctuation, so
// each field lists its variants most-specific first.
func DefaultLabels() LabelTable {
	return LabelTable{
		FieldFilingNumber:       {"filing number", "filing no."},
		FieldFilingDate:         {"filing date", "date of filing"},
		FieldRegistrationNumber: {"registration number", "registration no."},
		FieldRegistrationDate:   {"registration date", "date of registration"},
		FieldCNRNumber:          {"cnr number", "cnr no."},

		FieldFirstHearingDate: {"first hearing date"},
		FieldDecisionDate:     {"decision date", "case decision date"},
		FieldCaseStatus:       {"case status", "stage of case"},
		FieldDisposalNature:   {"nature of disposal", "disposal nature"},
		FieldCoram:            {"coram"},
		FieldBenchType:        {"bench type"},
		FieldJudicialBranch:   {"judicial branch"},
		FieldState:            {"state"},
		FieldDistrict:         {"district"},

		FieldPoliceStation: {"police station", "police st."},
		FieldFIRNumber:     {"fir number", "fir no."},
		FieldYear:          {"year", "fir year"},

		FieldCategory:    {"category"},
		FieldSubCategory: {"sub category", "sub-category"},

		FieldCourtNumberAndName: {"court number and name"},
		FieldCaseNumberAndYear:  {"case number and year"},
	}
}

// labelFile is the on-disk shape of a label override file.
type labelFile struct {
	Fields map[string][]string `yaml:"fields" validate:"required,min=1,dive,min=1,dive,required"`
}

var labelValidate = validator.New()

// LoadLabels reads a YAML label file and merges it over the defaults:
// fields named in the file replace the default synonym list for that field,
// unnamed fields keep theirs. The result is validated before use so a bad
// table fails at load time, not mid-parse.
//
//	fields:
//	  filing_number: ["filing number", "filing no", "fil. no"]
func LoadLabels(path string) (LabelTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read label file: %w", err)
	}

	var f labelFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse label file: %w", err)
	}
	if err := labelValidate.Struct(f); err != nil {
		return nil, fmt.Errorf("invalid label file %s: %w", path, err)
	}

	table := DefaultLabels()
	for field, synonyms := range f.Fields {
		table[field] = synonyms
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}

// Validate checks that every field has at least one non-empty synonym.
func (t LabelTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("label table is empty")
	}
	for field, synonyms := range t {
		if len(synonyms) == 0 {
			return fmt.Errorf("label table: field %q has no synonyms", field)
		}
		for _, s := range synonyms {
			if s == "" {
				return fmt.Errorf("label table: field %q has an empty synonym", field)
			}
		}
	}
	return nil
}

// synonyms returns the synonym list for field, falling back to the field key
// itself so lookups of unknown fields still behave predictably.
func (t LabelTable) synonyms(field string) []string {
	if s, ok := t[field]; ok {
		return s
	}
	return []string{field}
}
