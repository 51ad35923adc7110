package types

import "fmt"

// RuleKind identifies what a rule does with a matched file.
type RuleKind string

const (
	// KindCopy copies the matched file, leaving the source intact.
	KindCopy RuleKind = "copy"

	// KindMove copies the matched file and removes the source after
	// the copy succeeds.
	KindMove RuleKind = "move"
)

// Action is a fully resolved copy or move operation derived from matching
// one rule against one file. Both paths are computed at plan time; the
// executor never resolves paths itself.
type Action struct {
	Kind   RuleKind
	Source string // resolved path of the file in the source directory
	Dest   string // resolved path under the destination root
}

// Description returns a human-readable summary of the action.
func (a Action) Description() string {
	switch a.Kind {
	case KindMove:
		return fmt.Sprintf("move %s -> %s", a.Source, a.Dest)
	default:
		return fmt.Sprintf("copy %s -> %s", a.Source, a.Dest)
	}
}

// ActionStatus describes the outcome of executing a single action.
type ActionStatus string

const (
	// StatusDone means the action mutated the filesystem successfully.
	StatusDone ActionStatus = "done"

	// StatusSkipped means the action was reported but not performed (dry run).
	StatusSkipped ActionStatus = "skipped"

	// StatusFailed means the action halted execution.
	StatusFailed ActionStatus = "failed"
)

// ActionResult records the outcome of one executed action.
type ActionResult struct {
	Action Action
	Status ActionStatus
	Err    error
}
