package zh

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/czcorpus/tn-wfst/grammar"
)

func TestMathTagVerbalizeRoundTrip(t *testing.T) {
	p := grammar.NewProcessor("math")
	m := NewMath("itn")
	tagger := m.Tagger(p)
	verbalizer := m.Verbalizer(p)

	tagged, ok := apply(t, tagger, "三加五等于八")
	assert.True(t, ok, "tagger rejected input")

	out, ok := apply(t, verbalizer, tagged)
	assert.True(t, ok, "verbalizer rejected tagged output %q", tagged)
	assert.Equal(t, "3+5=8", out)
}

func TestMathTN(t *testing.T) {
	p := grammar.NewProcessor("math")
	m := NewMath("tn")
	tagger := m.Tagger(p)
	verbalizer := m.Verbalizer(p)

	tagged, ok := apply(t, tagger, "3+5=8")
	assert.True(t, ok, "tagger rejected input")

	out, ok := apply(t, verbalizer, tagged)
	assert.True(t, ok, "verbalizer rejected tagged output %q", tagged)
	assert.Equal(t, "三加五等于八", out)
}
