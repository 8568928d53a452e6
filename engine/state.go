// Package engine implements the iterative, stack-free parse engine: an
// explicit State, a single-step Advance transition, the forward/backward
// bookkeeping that implements prioritized-choice backtracking, the
// memoization cache that accelerates normal and incremental parsing, and
// the incremental-reparse protocol that invalidates affected work after
// an edit.
//
// The engine owns no I/O, no concurrency and no persisted state (see
// State): a driver calls Advance repeatedly until IsDone reports true,
// then inspects Steps and Errors. Building a Grammar from text, resolving
// rule names from host-language symbols, shaping the step trace into a
// nested AST, user-facing CLI/REPL wrappers, and line/column translation
// of the raw step output are all left to callers; PosToLineColumn is
// offered as an on-demand query for the last one, not a mandatory
// transform of the output.
package engine

import "github.com/crustimoney-go/crustimoney/grammar"

// State owns a grammar, a start rule, the current input, the reified
// parse stack, the error accumulator, and the memoization cache. A
// State is owned exclusively by its driver: no internal concurrency, no
// resource held across Advance calls, and it remains a valid
// intermediate parse artifact if the driver simply stops calling
// Advance.
type State struct {
	Grammar grammar.Grammar
	Start   string

	input string

	steps []Step

	errors    map[string]struct{}
	errorsPos int

	done bool

	memo map[stepKey][]Step

	// startRef is the synthetic Reference rule used for the root frame
	// (rule=start-reference, pos=0), kept stable across Increment resets
	// so repeated root frames share memo identity.
	startRef *grammar.Rule

	opts Options
}

// NewState initializes a State with a single root step: a reference to
// start at position 0. It does not validate that start, or any rule it
// reaches, actually exists in grammar — an unresolvable reference only
// surfaces as an error from Advance, the first time it is dispatched.
func NewState(g grammar.Grammar, start string, input string, opts ...Option) *State {
	ref := &grammar.Rule{Kind: grammar.KindReference, Name: start}
	s := &State{
		Grammar:   g,
		Start:     start,
		input:     input,
		errorsPos: notDone,
		memo:      map[stepKey][]Step{},
		startRef:  ref,
		opts:      applyOptions(opts),
	}
	s.steps = []Step{newStep(ref, 0)}
	return s
}

// IsDone reports whether the parse has reached a terminal state: success
// (empty Errors), failure (populated Errors), or a fatal unknown-rule
// error returned by Advance (Errors left as they were).
func (s *State) IsDone() bool {
	return s.done
}

// Input returns the current input text.
func (s *State) Input() string {
	return s.input
}

// Steps returns a read-only view of the current step list, the reified
// parse stack, top at the end.
func (s *State) Steps() []Step {
	return s.steps
}
