package zh

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/czcorpus/tn-wfst/grammar"
	"github.com/czcorpus/tn-wfst/token"
)

func TestTimeTagVerbalizeRoundTrip(t *testing.T) {
	p := grammar.NewProcessor("time")
	tm := NewTime("itn")
	tagger := tm.Tagger(p)
	verbalizer := tm.Verbalizer(p)

	tagged, ok := apply(t, tagger, "三点二十分")
	assert.True(t, ok, "tagger rejected input")

	reordered, err := token.Reorder("itn", tagged)
	assert.NoError(t, err, "reorder failed for %q", tagged)

	out, ok := apply(t, verbalizer, reordered)
	assert.True(t, ok, "verbalizer rejected tagged output %q", reordered)
	assert.Equal(t, "3:20", out)
}

func TestTimeTN(t *testing.T) {
	p := grammar.NewProcessor("time")
	tm := NewTime("tn")
	tagger := tm.Tagger(p)
	verbalizer := tm.Verbalizer(p)

	tagged, ok := apply(t, tagger, "3:20")
	assert.True(t, ok, "tagger rejected input")

	reordered, err := token.Reorder("tn", tagged)
	assert.NoError(t, err, "reorder failed for %q", tagged)

	out, ok := apply(t, verbalizer, reordered)
	assert.True(t, ok, "verbalizer rejected tagged output %q", reordered)
	assert.Equal(t, "三点二十分", out)
}
