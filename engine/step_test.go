package engine

import (
	"testing"

	"github.com/crustimoney-go/crustimoney/grammar"
	"github.com/stretchr/testify/assert"
)

func TestStepIdentityIgnoresMutableFields(t *testing.T) {
	r := grammar.Str("x")
	a := newStep(&r, 4)
	b := a
	b.RuleIndex = 7
	b.EndPos = 9
	b.Value = "xyz"
	b.HasValue = true

	assert.Equal(t, a.key(), b.key())
}

func TestStepIdentityDiffersByPosOrRule(t *testing.T) {
	r1, r2 := grammar.Str("x"), grammar.Str("x")
	a := newStep(&r1, 4)
	assert.NotEqual(t, a.key(), newStep(&r1, 5).key())
	assert.NotEqual(t, a.key(), newStep(&r2, 4).key())
}

func TestDone(t *testing.T) {
	r := grammar.Str("x")
	s := newStep(&r, 0)
	assert.False(t, s.Done())
	s.EndPos = 1
	assert.True(t, s.Done())
}

func TestCloneStepsIsIndependent(t *testing.T) {
	r := grammar.Str("x")
	orig := []Step{newStep(&r, 0)}
	clone := cloneSteps(orig)
	clone[0].EndPos = 1
	assert.Equal(t, notDone, orig[0].EndPos)
}
