package roster

import (
	"github.com/shivamudipelly/aora/core"
)

// ClassKey identifies one roster-and-ledger aggregate. Subject and
// BranchSection are stored normalized (lower-cased, internal whitespace
// replaced with underscores) so that equivalent user inputs address the same
// physical rows.
type ClassKey struct {
	Subject       string `json:"subject"`
	BranchSection string `json:"branch_section"`
}

// NewClassKey builds a normalized key from free-text subject, branch and
// section inputs. Branch and section are concatenated into one token
// ("cse" + "a" -> "csea"), matching the stored branch_section shape.
func NewClassKey(subject, branch, section string) ClassKey {
	return ClassKey{
		Subject:       core.NormalizeName(subject),
		BranchSection: core.NormalizeName(branch) + core.NormalizeName(section),
	}
}

// Key normalizes an already-concatenated subject/branchSection pair.
func Key(subject, branchSection string) ClassKey {
	return ClassKey{
		Subject:       core.NormalizeName(subject),
		BranchSection: core.NormalizeName(branchSection),
	}
}

// EnrollFailure records one roll number that could not be enrolled, with the
// error that rejected it.
type EnrollFailure struct {
	RollNumber string `json:"roll_number"`
	Error      string `json:"error"`
}

// EnrollResult is the structured outcome of a batch enrollment: per-row
// failures do not abort the remaining insertions, so callers inspect the
// result rather than a single error.
type EnrollResult struct {
	Enrolled []string        `json:"enrolled"`
	Failed   []EnrollFailure `json:"failed,omitempty"`
}

func (res EnrollResult) AllEnrolled() bool {
	return len(res.Failed) == 0
}
