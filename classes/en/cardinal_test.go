package en

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/czcorpus/tn-wfst/fst"
	"github.com/czcorpus/tn-wfst/grammar"
)

func apply(t *testing.T, built *fst.Transducer, input string) (string, bool) {
	t.Helper()
	composed := fst.Compose(fst.Accept(input), built)
	return fst.ShortestPath(composed)
}

func TestCardinalTagVerbalizeRoundTrip(t *testing.T) {
	p := grammar.NewProcessor("cardinal")
	c := NewCardinal("itn")
	tagger := c.Tagger(p)
	verbalizer := c.Verbalizer(p)

	cases := []struct{ in, want string }{
		{"zero", "0"},
		{"seven", "7"},
		{"nineteen", "19"},
		{"twenty", "20"},
		{"twenty three", "23"},
	}
	for _, tc := range cases {
		tagged, ok := apply(t, tagger, tc.in)
		assert.True(t, ok, "tagger rejected %q", tc.in)

		out, ok := apply(t, verbalizer, tagged)
		assert.True(t, ok, "verbalizer rejected tagged output %q (from %q)", tagged, tc.in)
		assert.Equal(t, tc.want, out, "round trip of %q via tagged %q", tc.in, tagged)
	}
}

func TestCardinalTN(t *testing.T) {
	p := grammar.NewProcessor("cardinal")
	c := NewCardinal("tn")
	tagger := c.Tagger(p)
	verbalizer := c.Verbalizer(p)

	tagged, ok := apply(t, tagger, "23")
	assert.True(t, ok, "tagger rejected input")

	out, ok := apply(t, verbalizer, tagged)
	assert.True(t, ok, "verbalizer rejected tagged output %q", tagged)
	assert.Equal(t, "twenty three", out)
}
