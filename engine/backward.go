package engine

import "github.com/crustimoney-go/crustimoney/grammar"

// backward is invoked after a terminal mismatch, or by forward upon a
// leftover-input EOF failure. It records the expectation at the failing
// step's position, then unwinds the step list looking for the nearest
// enclosing sequence with an untried alternative. Completed steps
// discovered along the way are memoized (each keyed on itself, so a
// memo hit later can replay its own resolved span, not just what
// followed it) before being discarded, since they belong to the branch
// being abandoned only in the sense that they sit above the chosen
// backtrack point — the steps themselves genuinely matched.
//
// pack holds those completed steps in array order (left to right, the
// same order the original parse produced them in), which is NOT the
// same as ancestor/descendant order: two consecutive pack entries can
// be siblings under the same enclosing sequence rather than one nested
// inside the other. A memo entry must only ever replay genuine
// descendants of its key, so each key's stored tail is cut off as soon
// as a later pack entry falls outside the key's own [Pos, EndPos) span
// — the same containment check increment.go uses when rebuilding memo
// across an edit.
func (s *State) backward(message string) {
	top := &s.steps[len(s.steps)-1]
	s.addExpectation(top.Pos, message)

	var pack []Step
	for i := len(s.steps) - 1; i >= 0; i-- {
		st := &s.steps[i]

		if st.Rule.Kind == grammar.KindSequence && !st.Done() {
			flat := st.Rule.flat
			sep := -1
			for k := st.RuleIndex; k < len(flat); k++ {
				if flat[k].separator {
					sep = k
					break
				}
			}
			if sep >= 0 {
				st.RuleIndex = sep
				s.steps = s.steps[:i+1]

				for j := range pack {
					key := pack[j]
					entry := []Step{key}
					for _, cand := range pack[j+1:] {
						if cand.Pos < key.Pos || cand.EndPos > key.EndPos {
							break
						}
						entry = append(entry, cand)
					}
					s.memo[key.key()] = entry
				}

				s.forward(nil)
				return
			}
			continue
		}

		if st.Done() {
			pack = append([]Step{*st}, pack...)
		}
	}

	// Exhausted every enclosing sequence with no live alternative left.
	s.done = true
}
