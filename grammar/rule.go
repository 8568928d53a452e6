// Package grammar defines the rule model consumed by the parse engine:
// a small tagged variant of sequence, reference, regex, string and
// character rules, plus the mapping from rule name to rule that makes up
// a grammar.
//
// Building a Grammar from PEG source text, or from any other textual
// notation, is out of scope here; grammars are assembled directly as Go
// values, the way the generated parsers in pigeon's examples/json build
// a *grammar literal by hand instead of parsing one.
package grammar

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind identifies which variant of Rule a value holds.
type Kind int

const (
	// KindSequence is an ordered list of alternatives, each itself an
	// ordered list of sub-rules. The first alternative that matches in
	// full wins; alternatives are tried left to right.
	KindSequence Kind = iota
	// KindReference names another rule in the owning Grammar.
	KindReference
	// KindRegex matches a regular expression anchored at the current
	// input offset.
	KindRegex
	// KindString matches a literal substring.
	KindString
	// KindChar matches a single literal rune.
	KindChar
)

// String returns a short label for the kind, used in debug output.
func (k Kind) String() string {
	switch k {
	case KindSequence:
		return "sequence"
	case KindReference:
		return "reference"
	case KindRegex:
		return "regex"
	case KindString:
		return "string"
	case KindChar:
		return "char"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// flatElem is one slot of a Sequence's flattened alternative encoding:
// either the alternative separator, or a pointer to a sub-rule living
// inside Rule.Alternatives. The pointer is taken from the backing array
// of Alternatives, so it stays stable for the lifetime of the Rule even
// though Rule values themselves are freely copied.
type flatElem struct {
	separator bool
	rule      *Rule
}

// FlatElem is the exported view of a flattened sequence slot, returned
// by Rule.Flatten for inspection and debugging.
type FlatElem struct {
	Separator bool
	Rule      *Rule
}

// Rule is a tagged value: exactly one of a sequence of alternatives, a
// reference to a named rule, a regex, a string literal or a character
// literal. Which fields are meaningful is determined by Kind.
//
// A Rule's identity for memoization purposes is the address of the Rule
// value itself (see engine.Step), not its contents, so rules must be
// built once and never copied after being wired into a Grammar or a
// Sequence's alternatives.
type Rule struct {
	Kind Kind

	// Reference
	Name string

	// Regex. Pattern is always anchored to match only at the start of
	// the remaining input (start-of-text anchored, wrapped automatically
	// by Rex if the caller's pattern wasn't already anchored). Source
	// keeps the caller's pattern text as given, for error messages.
	Pattern *regexp.Regexp
	Source  string

	// String
	Literal string

	// Char
	Char rune

	// Sequence
	Alternatives [][]Rule
	flat         []flatElem
}

// Ref builds a reference to the rule named name.
func Ref(name string) Rule {
	return Rule{Kind: KindReference, Name: name}
}

// Str builds a literal string matcher.
func Str(lit string) Rule {
	return Rule{Kind: KindString, Literal: lit}
}

// Chr builds a literal character matcher.
func Chr(c rune) Rule {
	return Rule{Kind: KindChar, Char: c}
}

// Rex builds a regex matcher from pattern. pattern is anchored to the
// start of the remaining input if it isn't already; the caller's
// pattern text, as given, is kept for error messages.
func Rex(pattern string) Rule {
	anchored := pattern
	if !strings.HasPrefix(pattern, "^") {
		anchored = "^(?:" + pattern + ")"
	}
	return Rule{
		Kind:    KindRegex,
		Pattern: regexp.MustCompile(anchored),
		Source:  pattern,
	}
}

// Seq builds a sequence rule out of one or more alternatives, each
// itself an ordered list of sub-rules, tried left to right. A single
// alternative (the common case) is sugar for plain concatenation with
// no choice involved.
func Seq(alternatives ...[]Rule) Rule {
	r := Rule{Kind: KindSequence, Alternatives: alternatives}
	r.flat = flatten(r.Alternatives)
	return r
}

// All is sugar for Seq with a single alternative: plain concatenation
// of rules, no choice.
func All(rules ...Rule) Rule {
	return Seq(rules)
}

// flatten produces the interleaved encoding of a sequence's
// alternatives: sub-rules of each alternative in order, with a
// separator slot between consecutive alternatives. Pointers into the
// Alternatives backing arrays are used so the same sub-rule occurrence
// has stable identity across the life of the owning Rule.
func flatten(alts [][]Rule) []flatElem {
	var out []flatElem
	for i := range alts {
		for j := range alts[i] {
			out = append(out, flatElem{rule: &alts[i][j]})
		}
		if i < len(alts)-1 {
			out = append(out, flatElem{separator: true})
		}
	}
	return out
}

// Flatten returns the sequence's flat alternative encoding: sub-rules
// interleaved with separator markers, exactly as described in the data
// model. It panics if Kind is not KindSequence.
func (r *Rule) Flatten() []FlatElem {
	if r.Kind != KindSequence {
		panic("grammar: Flatten called on a non-sequence Rule")
	}
	out := make([]FlatElem, len(r.flat))
	for i, e := range r.flat {
		out[i] = FlatElem{Separator: e.separator, Rule: e.rule}
	}
	return out
}

// String renders a human-readable form of the rule, used in debug
// traces and error messages.
func (r *Rule) String() string {
	switch r.Kind {
	case KindReference:
		return r.Name
	case KindString:
		return fmt.Sprintf("%q", r.Literal)
	case KindChar:
		return fmt.Sprintf("%q", r.Char)
	case KindRegex:
		return r.Source
	case KindSequence:
		var buf strings.Builder
		for i, alt := range r.Alternatives {
			if i > 0 {
				buf.WriteString(" / ")
			}
			for j, sub := range alt {
				if j > 0 {
					buf.WriteString(" ")
				}
				buf.WriteString(sub.String())
			}
		}
		return buf.String()
	default:
		return "<invalid rule>"
	}
}
