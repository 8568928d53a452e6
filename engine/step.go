package engine

import "github.com/crustimoney-go/crustimoney/grammar"

// notDone is the sentinel EndPos value meaning "has not matched yet in
// the current parse".
const notDone = -1

// Step is one frame of the reified parse stack: which rule, at what
// input position, how far into a sequence, whether it finished, and
// with what captured text.
//
// Two Steps are considered equal for memoization purposes when their
// Rule pointer is equal and their Pos is equal; RuleIndex, EndPos and
// Value do not participate in identity.
type Step struct {
	// Rule is the grammar rule this frame represents. Immutable for the
	// frame's lifetime; its address is the memo identity.
	Rule *grammar.Rule
	// Pos is the starting input offset when this frame was opened.
	Pos int
	// RuleIndex is, for Sequence rules, the 0-based index into the
	// rule's flattened alternative encoding currently being matched.
	// -1 for non-sequence rules, and for sequence rules not yet entered.
	RuleIndex int
	// EndPos is the exclusive input offset at which this frame
	// completed matching. notDone (-1) means not yet done.
	EndPos int
	// Value is the captured substring when Rule is a terminal that
	// matched. HasValue distinguishes an empty match from no match yet.
	Value    string
	HasValue bool
}

// Done reports whether the step has completed matching.
func (s Step) Done() bool {
	return s.EndPos != notDone
}

// stepKey is the identity used for memoization: the rule's address plus
// the position the frame started at.
type stepKey struct {
	rule *grammar.Rule
	pos  int
}

func (s Step) key() stepKey {
	return stepKey{rule: s.Rule, pos: s.Pos}
}

// newStep returns a freshly opened, not-yet-done frame for rule at pos.
func newStep(rule *grammar.Rule, pos int) Step {
	return Step{Rule: rule, Pos: pos, RuleIndex: notDone, EndPos: notDone}
}

// cloneSteps returns an independent copy of a step slice, so that steps
// resurrected from the memo cache can be mutated without corrupting the
// cached entry.
func cloneSteps(steps []Step) []Step {
	out := make([]Step, len(steps))
	copy(out, steps)
	return out
}
