package zh

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/czcorpus/tn-wfst/grammar"
	"github.com/czcorpus/tn-wfst/token"
)

func TestFractionTagVerbalizeRoundTrip(t *testing.T) {
	p := grammar.NewProcessor("fraction")
	f := NewFraction("itn")
	tagger := f.Tagger(p)
	verbalizer := f.Verbalizer(p)

	tagged, ok := apply(t, tagger, "三分之二")
	assert.True(t, ok, "tagger rejected input")

	reordered, err := token.Reorder("itn", tagged)
	assert.NoError(t, err, "reorder failed for %q", tagged)

	out, ok := apply(t, verbalizer, reordered)
	assert.True(t, ok, "verbalizer rejected tagged output %q", reordered)
	assert.Equal(t, "2/3", out)
}

func TestFractionTN(t *testing.T) {
	p := grammar.NewProcessor("fraction")
	f := NewFraction("tn")
	tagger := f.Tagger(p)
	verbalizer := f.Verbalizer(p)

	tagged, ok := apply(t, tagger, "2/3")
	assert.True(t, ok, "tagger rejected input")

	reordered, err := token.Reorder("tn", tagged)
	assert.NoError(t, err, "reorder failed for %q", tagged)

	out, ok := apply(t, verbalizer, reordered)
	assert.True(t, ok, "verbalizer rejected tagged output %q", reordered)
	assert.Equal(t, "三分之二", out)
}
