package zh

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/czcorpus/tn-wfst/grammar"
	"github.com/czcorpus/tn-wfst/token"
)

func TestMeasureTagVerbalizeRoundTrip(t *testing.T) {
	p := grammar.NewProcessor("measure")
	m := NewMeasure()
	tagger := m.Tagger(p)
	verbalizer := m.Verbalizer(p)

	tagged, ok := apply(t, tagger, "百分之三十到四十")
	assert.True(t, ok, "tagger rejected input")

	reordered, err := token.Reorder("itn", tagged)
	assert.NoError(t, err, "reorder failed for %q", tagged)

	out, ok := apply(t, verbalizer, reordered)
	assert.True(t, ok, "verbalizer rejected tagged output %q", reordered)
	assert.Equal(t, "30%~40%", out)
}
