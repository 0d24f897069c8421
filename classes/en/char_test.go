package en

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/czcorpus/tn-wfst/classes"
	"github.com/czcorpus/tn-wfst/grammar"
)

func TestCharTagVerbalizeRoundTrip(t *testing.T) {
	p := grammar.NewProcessor("char")
	c := NewChar(classes.DefaultOptions())
	tagger := c.Tagger(p)
	verbalizer := c.Verbalizer(p)

	tagged, ok := apply(t, tagger, "hello")
	assert.True(t, ok, "tagger rejected input")

	out, ok := apply(t, verbalizer, tagged)
	assert.True(t, ok, "verbalizer rejected tagged output %q", tagged)
	assert.Equal(t, "hello", out)
}

func TestCharTagOOV(t *testing.T) {
	p := grammar.NewProcessor("char")
	opts := classes.DefaultOptions()
	opts.TagOOV = true
	c := NewChar(opts)
	tagger := c.Tagger(p)
	verbalizer := c.Verbalizer(p)

	tagged, ok := apply(t, tagger, "hello")
	assert.True(t, ok, "tagger rejected input")
	assert.Contains(t, tagged, `oov: "true"`)

	out, ok := apply(t, verbalizer, tagged)
	assert.True(t, ok, "verbalizer rejected tagged output %q", tagged)
	assert.Equal(t, "hello", out)
}
