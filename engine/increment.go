package engine

import "github.com/crustimoney-go/crustimoney/grammar"

// Increment splices replacement into the input at [at, at+length) and
// resets the step list to a fresh root frame, rebuilding the memo cache
// from whatever the prior parse's step list can still vouch for.
//
// Each step from the prior parse is classified against the edit: one
// lying strictly after it is kept but shifted into the new coordinate
// space; one lying strictly before it (ending at or before the edit
// start) is kept unchanged; one overlapping the edit is dropped. Memo
// entries are then rebuilt only at Reference-ruled survivors, each
// keyed on itself and holding that step followed by the maximal run of
// subsequent survivors nested within its own span (installed only when
// that run is non-empty) — the same self-plus-continuation form backward
// records, which Advance relies on when it replaces the top frame with a
// memo entry. The keys are narrower than the unrestricted keys
// backward records mid-parse, which bounds the rebuilt cache to the
// named-rule join points that are the only ones whose identity is
// stable across edits.
func (s *State) Increment(replacement string, at, length int) {
	shift := len(replacement) - length

	survivors := make([]Step, 0, len(s.steps))
	for _, st := range s.steps {
		switch {
		case st.Pos > at+length:
			st.Pos += shift
			if st.EndPos != notDone {
				st.EndPos += shift
			}
			survivors = append(survivors, st)
		case st.Done() && st.EndPos <= at:
			survivors = append(survivors, st)
		default:
			// Overlaps the edited region: no longer valid.
		}
	}

	next := make(map[stepKey][]Step, len(survivors))
	for i, st := range survivors {
		if st.Rule.Kind != grammar.KindReference || !st.Done() {
			continue
		}
		var tail []Step
		for _, cand := range survivors[i+1:] {
			if cand.Pos < st.Pos || !cand.Done() || cand.EndPos > st.EndPos {
				break
			}
			tail = append(tail, cand)
		}
		if len(tail) > 0 {
			next[st.key()] = append([]Step{st}, tail...)
		}
	}

	s.input = s.input[:at] + replacement + s.input[at+length:]
	s.memo = next
	s.steps = []Step{newStep(s.startRef, 0)}
	s.errors = nil
	s.errorsPos = notDone
	s.done = false
}
