package ja

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/czcorpus/tn-wfst/classes"
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
		{"三", "3"},
		{"十", "10"},
		{"二十三", "23"},
		{"三百二十", "320"},
	}
	for _, tc := range cases {
		tagged, ok := apply(t, tagger, tc.in)
		assert.True(t, ok, "tagger rejected %q", tc.in)

		out, ok := apply(t, verbalizer, tagged)
		assert.True(t, ok, "verbalizer rejected tagged output %q (from %q)", tagged, tc.in)
		assert.Equal(t, tc.want, out, "round trip of %q via tagged %q", tc.in, tagged)
	}
}

func TestCharFallback(t *testing.T) {
	p := grammar.NewProcessor("char")
	c := NewChar(classes.DefaultOptions())
	tagger := c.Tagger(p)
	verbalizer := c.Verbalizer(p)

	tagged, ok := apply(t, tagger, "呵")
	assert.True(t, ok, "char tagger rejected single character")

	out, ok := apply(t, verbalizer, tagged)
	assert.True(t, ok, "verbalizer rejected tagged output %q", tagged)
	assert.Equal(t, "呵", out)
}
