package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddExpectationCoalescesAtFurthestPosition(t *testing.T) {
	s := &State{errorsPos: notDone}

	s.addExpectation(2, "a")
	s.addExpectation(2, "b")
	errs, pos := s.Errors()
	require.Equal(t, 2, pos)
	assert.ElementsMatch(t, []string{"a", "b"}, errs)

	// A farther position replaces the set entirely.
	s.addExpectation(5, "c")
	errs, pos = s.Errors()
	require.Equal(t, 5, pos)
	assert.Equal(t, []string{"c"}, errs)

	// A retreat must not evict what's already recorded at the furthest
	// position reached.
	s.addExpectation(3, "d")
	errs, pos = s.Errors()
	require.Equal(t, 5, pos)
	assert.Equal(t, []string{"c"}, errs)
}

func TestErrorsEmptyBeforeAnyRecorded(t *testing.T) {
	s := &State{errorsPos: notDone}
	errs, pos := s.Errors()
	assert.Nil(t, errs)
	assert.Equal(t, notDone, pos)
}
