package engine

import "github.com/crustimoney-go/crustimoney/grammar"

// forward is invoked after a terminal match (value present) or, from
// backward, to resume an enclosing sequence at its alternative
// separator (value nil). It records the match on the current top step,
// then continues the forward scan from there.
func (s *State) forward(value *string) {
	top := &s.steps[len(s.steps)-1]
	newPos := top.Pos
	if value != nil {
		top.Value = *value
		top.HasValue = true
		newPos = top.Pos + len(*value)
	}
	s.scanForward(newPos)
}

// scanForward walks the step list from the top downward. For a Sequence
// step with another non-separator sub-rule still to try, it advances
// RuleIndex and pushes a child for it, then returns. Otherwise, for any
// not-yet-done step, it marks it done at newPos and continues scanning
// the step below. If the scan runs off the bottom, the outermost rule
// has finished: success if newPos reaches the end of input, otherwise a
// trailing-input failure.
func (s *State) scanForward(newPos int) {
	for i := len(s.steps) - 1; i >= 0; i-- {
		st := &s.steps[i]
		if st.Rule.Kind == grammar.KindSequence {
			flat := st.Rule.flat
			if st.RuleIndex+1 < len(flat) && !flat[st.RuleIndex+1].separator {
				st.RuleIndex++
				s.pushChild(flat[st.RuleIndex].rule, newPos)
				return
			}
		}
		if !st.Done() {
			st.EndPos = newPos
		}
	}

	if newPos == len(s.input) {
		s.errors = nil
		s.errorsPos = notDone
		s.done = true
		return
	}
	s.backward("Expected EOF")
}
