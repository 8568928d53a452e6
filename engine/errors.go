package engine

import (
	"sort"

	"github.com/pkg/errors"
)

// ErrUnknownRule is the sentinel cause wrapped (via github.com/pkg/errors,
// with the missing rule's name as extra context) when a Reference names a
// rule absent from the
// grammar. Unlike ordinary expectation errors, this is fatal: it is not
// something backtracking can route around, so it is surfaced as a Go
// error from Advance rather than folded into the error set.
//
// Use errors.Cause(err) == ErrUnknownRule, or errors.Is, to detect it.
var ErrUnknownRule = errors.New("unknown rule")

// Errors returns the current expectation-error set and the position it
// was recorded at. The position is -1 when no error has been recorded
// yet. The returned slice is sorted for deterministic output; the
// underlying set is otherwise unordered, matching the data model.
func (s *State) Errors() ([]string, int) {
	if s.errorsPos == notDone {
		return nil, notDone
	}
	out := make([]string, 0, len(s.errors))
	for msg := range s.errors {
		out = append(out, msg)
	}
	sort.Strings(out)
	return out, s.errorsPos
}

// addExpectation records message as an expectation error at pos,
// clearing the set first if pos is farther than anything seen so far
// and leaving it alone (but still inserting message) if pos matches the
// current furthest position. Errors at a position that retreats (closer
// to the start than errorsPos) are dropped entirely, per the
// coalescing rule.
func (s *State) addExpectation(pos int, message string) {
	if pos < s.errorsPos && s.errorsPos != notDone {
		return
	}
	if pos != s.errorsPos {
		s.errors = map[string]struct{}{}
		s.errorsPos = pos
	}
	s.errors[message] = struct{}{}
}
