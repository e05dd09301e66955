package casehistory

import (
	"errors"
	"fmt"
	"strings"
)

// Classification sentinels for pre-parse detection failures. Callers match
// with errors.Is; the concrete error is a *DetectionError carrying the
// signature that fired.
var (
	// ErrServerSQL marks a document that is a disguised server-side SQL
	// error page. The parse is unusable; the caller should retry the
	// upstream request rather than re-parse.
	ErrServerSQL = errors.New("server returned an SQL error page")

	// ErrEmptyResult marks a document that explicitly states no matching
	// record exists. This is a valid outcome, not a defect.
	ErrEmptyResult = errors.New("no matching record found")

	// ErrMalformedMarkup marks a document lacking the minimal structural
	// anchors of a case-history page.
	ErrMalformedMarkup = errors.New("document has no recognizable case structure")
)

// DetectionError is returned by Detect when a document matches a known
// server-error signature or lacks case structure. It unwraps to one of the
// classification sentinels.
type DetectionError struct {
	Class     error  // ErrServerSQL, ErrEmptyResult, or ErrMalformedMarkup
	Signature string // the matched signature, empty for ErrMalformedMarkup
}

func (e *DetectionError) Error() string {
	if e.Signature == "" {
		return e.Class.Error()
	}
	return fmt.Sprintf("%s (matched %q)", e.Class.Error(), e.Signature)
}

func (e *DetectionError) Unwrap() error { return e.Class }

// IncompleteRecordError reports that structural parsing succeeded but one or
// more mandatory sections could not be extracted. Missing lists the section
// names, in a fixed order, for diagnosability.
type IncompleteRecordError struct {
	Missing []string
}

func (e *IncompleteRecordError) Error() string {
	return fmt.Sprintf("incomplete record: missing mandatory section(s) %s",
		strings.Join(e.Missing, ", "))
}
