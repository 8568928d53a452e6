package engine

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/crustimoney-go/crustimoney/grammar"
	"github.com/pkg/errors"
)

// Advance performs a single step of the parse. Precondition: the state
// is not done and Steps is non-empty; calling Advance on a done State
// is a programming error and panics rather than re-entering a
// terminated run.
//
// Advance either pushes a child step (for non-terminals), resolves a
// terminal by calling forward or backward, or replays a memoized
// continuation. It returns a non-nil error only for the one fatal,
// non-backtracking condition: a Reference naming a rule absent from the
// grammar.
func (s *State) Advance() error {
	if s.done {
		panic("engine: Advance called on a done State")
	}
	if len(s.steps) == 0 {
		panic("engine: Advance called with an empty step list")
	}

	top := &s.steps[len(s.steps)-1]
	s.opts.logger.Debug().
		Str("kind", top.Rule.Kind.String()).
		Int("pos", top.Pos).
		Int("steps", len(s.steps)).
		Msg("advance")

	// Priority 1: a memoized continuation, regardless of rule kind. The
	// resurrected chain's first element is itself the completed version
	// of top (same rule, same pos), so it replaces top on the stack
	// rather than stacking beneath it — leaving the stale, not-yet-done
	// top in place would duplicate that frame in the final step
	// sequence once scanForward climbs back through it.
	if tail, ok := s.memo[top.key()]; ok {
		resurrected := cloneSteps(tail)
		s.steps = append(s.steps[:len(s.steps)-1], resurrected...)
		s.scanForward(resurrected[len(resurrected)-1].EndPos)
		return nil
	}

	switch top.Rule.Kind {
	case grammar.KindSequence:
		return s.advanceSequence(top)
	case grammar.KindReference:
		return s.advanceReference(top)
	case grammar.KindRegex:
		s.advanceRegex(top)
		return nil
	case grammar.KindString:
		s.advanceString(top)
		return nil
	case grammar.KindChar:
		s.advanceChar(top)
		return nil
	default:
		panic(fmt.Sprintf("engine: unknown rule kind %v", top.Rule.Kind))
	}
}

func (s *State) advanceSequence(top *Step) error {
	flat := top.Rule.flat
	if len(flat) == 0 || flat[0].separator {
		// An empty alternative, or an empty sequence altogether: grammar
		// well-formedness is explicitly out of scope, so surface it as
		// an ordinary backtracking failure rather than special-casing it.
		s.backward("Expected match of empty sequence")
		return nil
	}
	top.RuleIndex = 0
	s.pushChild(flat[0].rule, top.Pos)
	return nil
}

func (s *State) advanceReference(top *Step) error {
	referenced, ok := s.Grammar[top.Rule.Name]
	if !ok {
		s.done = true
		return errors.Wrapf(ErrUnknownRule, "rule %q", top.Rule.Name)
	}
	s.pushChild(referenced, top.Pos)
	return nil
}

func (s *State) advanceRegex(top *Step) {
	rest := s.input[top.Pos:]
	loc := top.Rule.Pattern.FindStringIndex(rest)
	if loc != nil && loc[0] == 0 {
		v := rest[:loc[1]]
		s.forward(&v)
		return
	}
	s.backward(fmt.Sprintf("Expected match of %s", top.Rule.Source))
}

func (s *State) advanceString(top *Step) {
	rest := s.input[top.Pos:]
	if strings.HasPrefix(rest, top.Rule.Literal) {
		v := top.Rule.Literal
		s.forward(&v)
		return
	}
	s.backward(fmt.Sprintf("Expected string '%s'", top.Rule.Literal))
}

func (s *State) advanceChar(top *Step) {
	r, size := utf8.DecodeRuneInString(s.input[top.Pos:])
	if size > 0 && r == top.Rule.Char {
		v := string(top.Rule.Char)
		s.forward(&v)
		return
	}
	s.backward(fmt.Sprintf("Expected character '%c'", top.Rule.Char))
}

// pushChild opens a new, not-yet-done frame for rule at pos on top of
// the step list.
func (s *State) pushChild(rule *grammar.Rule, pos int) {
	s.steps = append(s.steps, newStep(rule, pos))
}
