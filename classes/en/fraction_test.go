package en

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/czcorpus/tn-wfst/grammar"
)

func TestFractionTagVerbalize(t *testing.T) {
	p := grammar.NewProcessor("fraction")
	f := NewFraction()
	tagger := f.Tagger(p)
	verbalizer := f.Verbalizer(p)

	tagged, ok := apply(t, tagger, "3/4")
	assert.True(t, ok, "tagger rejected input")

	out, ok := apply(t, verbalizer, tagged)
	assert.True(t, ok, "verbalizer rejected tagged output %q", tagged)
	assert.Equal(t, "three fourths", out)
}
