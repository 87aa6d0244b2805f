package isograph

import "errors"

// ErrBudgetExceeded is the sentinel underlying LabelingError{Reason:
// BudgetExceeded}. Reachable only when the trial-branching safeguard
// (Options.MaxBranches) is exhausted before a tie is resolved — the
// labeler is otherwise total on well-formed input.
var ErrBudgetExceeded = errors.New("isograph: trial-branching budget exceeded")

// LabelingReason identifies why labeling could not complete.
type LabelingReason string

// BudgetExceeded is the only LabelingReason currently produced.
const BudgetExceeded LabelingReason = "BUDGET_EXCEEDED"

// LabelingError reports that the canonical labeler could not reach a
// decision within its configured trial-branching budget.
type LabelingError struct {
	Reason LabelingReason
	Err    error
}

func (e *LabelingError) Error() string {
	if e.Err != nil {
		return "isograph: labeling failed: " + e.Err.Error()
	}
	return "isograph: labeling failed: " + string(e.Reason)
}

func (e *LabelingError) Unwrap() error { return e.Err }

func newBudgetExceeded() *LabelingError {
	return &LabelingError{Reason: BudgetExceeded, Err: ErrBudgetExceeded}
}
