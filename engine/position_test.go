package engine

import (
	"testing"

	"github.com/crustimoney-go/crustimoney/grammar"
	"github.com/stretchr/testify/assert"
)

func TestPosToLineColumn(t *testing.T) {
	g := grammar.New(map[string]grammar.Rule{"s": grammar.Rex(`.*`)})
	s := NewState(g, "s", "ab\ncd\r\nef\rgh")

	cases := []struct {
		pos        int
		line, col int
	}{
		{0, 1, 1},
		{2, 1, 3},
		{3, 2, 1}, // right after the LF
		{5, 2, 3}, // right before the CRLF
		{7, 3, 1}, // right after the CRLF, counted once
		{9, 3, 3}, // right before the bare CR
		{10, 4, 1}, // right after the bare CR
	}
	for _, c := range cases {
		line, col := s.PosToLineColumn(c.pos)
		assert.Equalf(t, c.line, line, "line at pos %d", c.pos)
		assert.Equalf(t, c.col, col, "col at pos %d", c.pos)
	}
}
