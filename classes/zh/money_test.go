package zh

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/czcorpus/tn-wfst/classes"
	"github.com/czcorpus/tn-wfst/grammar"
	"github.com/czcorpus/tn-wfst/token"
)

func TestMoneyTagVerbalizeRoundTrip(t *testing.T) {
	p := grammar.NewProcessor("money")
	m := NewMoney("itn", classes.DefaultOptions())
	tagger := m.Tagger(p)
	verbalizer := m.Verbalizer(p)

	tagged, ok := apply(t, tagger, "三十五美元")
	assert.True(t, ok, "tagger rejected input")

	reordered, err := token.Reorder("itn", tagged)
	assert.NoError(t, err, "reorder failed for %q", tagged)

	out, ok := apply(t, verbalizer, reordered)
	assert.True(t, ok, "verbalizer rejected tagged output %q", reordered)
	assert.Equal(t, "dollar35", out)
}

func TestMoneyTN(t *testing.T) {
	p := grammar.NewProcessor("money")
	m := NewMoney("tn", classes.DefaultOptions())
	tagger := m.Tagger(p)
	verbalizer := m.Verbalizer(p)

	tagged, ok := apply(t, tagger, "35dollar")
	assert.True(t, ok, "tagger rejected input")

	reordered, err := token.Reorder("tn", tagged)
	assert.NoError(t, err, "reorder failed for %q", tagged)

	out, ok := apply(t, verbalizer, reordered)
	assert.True(t, ok, "verbalizer rejected tagged output %q", reordered)
	assert.Equal(t, "三十五美元", out)
}
