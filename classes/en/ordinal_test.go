package en

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/czcorpus/tn-wfst/grammar"
)

func TestOrdinalTagVerbalizeAndSuffix(t *testing.T) {
	p := grammar.NewProcessor("ordinal")
	o := NewOrdinal()
	tagger := o.Tagger(p)
	verbalizer := o.Verbalizer(p)

	cases := []struct{ in, wantPlain, wantSuffixed string }{
		{"one", "1", "1st"},
		{"two", "2", "2nd"},
		{"three", "3", "3rd"},
		{"eleven", "11", "11th"},
		{"twenty three", "23", "23rd"},
	}
	for _, tc := range cases {
		tagged, ok := apply(t, tagger, tc.in)
		assert.True(t, ok, "tagger rejected %q", tc.in)

		out, ok := apply(t, verbalizer, tagged)
		assert.True(t, ok, "verbalizer rejected tagged output %q (from %q)", tagged, tc.in)
		assert.Equal(t, tc.wantPlain, out, "verbalized %q", tc.in)
		assert.Equal(t, tc.wantSuffixed, o.ApplySuffix(out), "ApplySuffix(%q)", out)
	}
}
