package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRexAnchoring(t *testing.T) {
	r := Rex(`[0-9]+`)
	require.Equal(t, KindRegex, r.Kind)
	assert.Equal(t, `[0-9]+`, r.Source)
	assert.True(t, r.Pattern.MatchString("42"))
	assert.Equal(t, []int{0, 2}, r.Pattern.FindStringIndex("42abc"))
	assert.Nil(t, r.Pattern.FindStringIndex("abc42"))
}

func TestRexAlreadyAnchoredIsKeptAsIs(t *testing.T) {
	r := Rex(`^abc`)
	assert.Equal(t, `^abc`, r.Source)
}

func TestSeqFlatten(t *testing.T) {
	a, b, c, d, e := Str("a"), Str("b"), Str("c"), Str("d"), Str("e")
	r := Seq([]Rule{a, b}, []Rule{c, d}, []Rule{e})

	flat := r.Flatten()
	require.Len(t, flat, 7)

	wantSeparators := []bool{false, false, true, false, false, true, false}
	for i, want := range wantSeparators {
		assert.Equalf(t, want, flat[i].Separator, "index %d", i)
	}

	assert.Equal(t, "a", flat[0].Rule.Literal)
	assert.Equal(t, "b", flat[1].Rule.Literal)
	assert.Equal(t, "c", flat[3].Rule.Literal)
	assert.Equal(t, "d", flat[4].Rule.Literal)
	assert.Equal(t, "e", flat[6].Rule.Literal)
}

func TestAllIsSingleAlternativeSeq(t *testing.T) {
	r := All(Str("a"), Str("b"))
	flat := r.Flatten()
	require.Len(t, flat, 2)
	assert.False(t, flat[0].Separator)
	assert.False(t, flat[1].Separator)
}

func TestFlattenPanicsOnNonSequence(t *testing.T) {
	r := Str("a")
	assert.Panics(t, func() { r.Flatten() })
}

func TestRuleString(t *testing.T) {
	ref, lit, chr, rex := Ref("name"), Str("lit"), Chr('c'), Rex(`[0-9]+`)
	assert.Equal(t, "name", ref.String())
	assert.Equal(t, `"lit"`, lit.String())
	assert.Equal(t, `'c'`, chr.String())
	assert.Equal(t, `[0-9]+`, rex.String())

	seq := Seq([]Rule{Str("a"), Str("b")}, []Rule{Str("c")})
	assert.Equal(t, `"a" "b" / "c"`, seq.String())
}
