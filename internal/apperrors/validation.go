package apperrors

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Code identifies a class of user-correctable validation failure.
type Code string

const (
	CodeMissingTotal      Code = "missing_total"
	CodeUnbalancedJournal Code = "unbalanced_journal"
	CodeZeroLine          Code = "zero_line"
	CodeMatchRange        Code = "match_range"
	CodeConcurrentEdit    Code = "concurrent_edit_conflict"
	CodeInvalidReference  Code = "invalid_reference"
	CodeRuleViolation     Code = "rule_violation"
)

// ValidationError is implemented by every member of an ErrorList.
type ValidationError interface {
	error
	Code() Code
	// Field names the payload location the error refers to, or "" for the whole submission.
	Field() string
}

// MissingTotalError is raised when a journal arrives without a total.
type MissingTotalError struct{}

func (e *MissingTotalError) Error() string {
	return "No total entered.  This should be the total value of the debit side of the journal i.e. the total of the positive values"
}
func (e *MissingTotalError) Code() Code    { return CodeMissingTotal }
func (e *MissingTotalError) Field() string { return "total" }

// UnbalancedJournalError covers both journal balance checks: the lines must net
// to zero and the debit side must equal the entered total.
type UnbalancedJournalError struct {
	Debits  decimal.Decimal
	Credits decimal.Decimal
	Entered decimal.Decimal
	// NonZeroNet is set when debits and credits do not cancel out.
	NonZeroNet bool
}

func (e *UnbalancedJournalError) Error() string {
	if e.NonZeroNet {
		return fmt.Sprintf(
			"Debits and credits must total zero.  Total debits entered i.e. positives values entered is %s, and total credits entered i.e. negative values entered, is %s.  This gives a non-zero total of %s",
			e.Debits.String(), e.Credits.String(), e.Debits.Add(e.Credits).String(),
		)
	}
	return "The total of the debits does not equal the total you entered."
}
func (e *UnbalancedJournalError) Code() Code { return CodeUnbalancedJournal }
func (e *UnbalancedJournalError) Field() string {
	if e.NonZeroNet {
		return "lines"
	}
	return "total"
}

// ZeroLineError is raised for an analysis line whose goods and vat are both zero.
type ZeroLineError struct {
	// Index is the 0-based position of the line in the submitted payload.
	Index int
}

func (e *ZeroLineError) Error() string { return "Goods and Vat cannot both be zero." }
func (e *ZeroLineError) Code() Code    { return CodeZeroLine }
func (e *ZeroLineError) Field() string { return fmt.Sprintf("lines[%d]", e.Index) }

// MatchRangeError reports a match that would leave a header's due outside the
// closed interval between zero and Upper.
type MatchRangeError struct {
	HeaderID int64
	Ref      string
	Upper    decimal.Decimal
	// Aggregate is set when the header being posted is out of range rather than a counterparty.
	Aggregate bool
	Index     int
}

func (e *MatchRangeError) Error() string {
	msg := fmt.Sprintf("Please ensure the total of the transactions you are matching is between 0 and %s", e.Upper.StringFixed(2))
	if e.Aggregate {
		return msg
	}
	return fmt.Sprintf("%s for transaction %s", msg, e.Ref)
}
func (e *MatchRangeError) Code() Code { return CodeMatchRange }
func (e *MatchRangeError) Field() string {
	if e.Aggregate {
		return "matches"
	}
	return fmt.Sprintf("matches[%d].value", e.Index)
}

// ConcurrentEditConflict is raised when a counterparty's due moved since the
// client computed its match against it.
type ConcurrentEditConflict struct {
	HeaderID int64
	Ref      string
	Expected decimal.Decimal
	Actual   decimal.Decimal
	Index    int
}

func (e *ConcurrentEditConflict) Error() string {
	return fmt.Sprintf("Transaction %s has changed since it was loaded: due is now %s, expected %s",
		e.Ref, e.Actual.StringFixed(2), e.Expected.StringFixed(2))
}
func (e *ConcurrentEditConflict) Code() Code    { return CodeConcurrentEdit }
func (e *ConcurrentEditConflict) Field() string { return fmt.Sprintf("matches[%d]", e.Index) }

// ReferenceError reports an id in the payload that does not resolve.
type ReferenceError struct {
	Path string
	Kind string
	ID   int64
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s %d does not exist", e.Kind, e.ID)
}
func (e *ReferenceError) Code() Code    { return CodeInvalidReference }
func (e *ReferenceError) Field() string { return e.Path }

// RuleError is a business rule violation with a free-form message.
type RuleError struct {
	Path    string
	Message string
}

func (e *RuleError) Error() string { return e.Message }
func (e *RuleError) Code() Code    { return CodeRuleViolation }
func (e *RuleError) Field() string { return e.Path }

// ErrorList collects every validation failure of one submission.
type ErrorList []ValidationError

func (l ErrorList) Error() string {
	msgs := make([]string, 0, len(l))
	for _, e := range l {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// Is lets callers test the whole list with errors.Is(err, ErrValidation).
func (l ErrorList) Is(target error) bool {
	return target == ErrValidation
}

// Unwrap exposes the members to errors.As.
func (l ErrorList) Unwrap() []error {
	errs := make([]error, 0, len(l))
	for _, e := range l {
		errs = append(errs, e)
	}
	return errs
}

// Add appends a failure.
func (l *ErrorList) Add(err ValidationError) {
	*l = append(*l, err)
}

// Merge appends every failure of other.
func (l *ErrorList) Merge(other ErrorList) {
	*l = append(*l, other...)
}

// Err returns nil for an empty list so callers can write `if err := errs.Err(); err != nil`.
func (l ErrorList) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}
