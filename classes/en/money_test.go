package en

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/czcorpus/tn-wfst/grammar"
	"github.com/czcorpus/tn-wfst/token"
)

func TestMoneyTagVerbalizeRoundTrip(t *testing.T) {
	p := grammar.NewProcessor("money")
	m := NewMoney("itn")
	tagger := m.Tagger(p)
	verbalizer := m.Verbalizer(p)

	tagged, ok := apply(t, tagger, "three dollars")
	assert.True(t, ok, "tagger rejected input")

	reordered, err := token.Reorder("itn", tagged)
	assert.NoError(t, err, "reorder failed for %q", tagged)

	out, ok := apply(t, verbalizer, reordered)
	assert.True(t, ok, "verbalizer rejected tagged output %q", reordered)
	assert.Equal(t, "$3", out)
}
