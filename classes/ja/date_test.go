package ja

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/czcorpus/tn-wfst/grammar"
	"github.com/czcorpus/tn-wfst/token"
)

func TestDateTagVerbalizeRoundTrip(t *testing.T) {
	p := grammar.NewProcessor("date")
	d := NewDate("itn")
	tagger := d.Tagger(p)
	verbalizer := d.Verbalizer(p)

	tagged, ok := apply(t, tagger, "二千二十四年十月一日")
	assert.True(t, ok, "tagger rejected input")

	reordered, err := token.Reorder("itn", tagged)
	assert.NoError(t, err, "reorder failed for %q", tagged)

	out, ok := apply(t, verbalizer, reordered)
	assert.True(t, ok, "verbalizer rejected tagged output %q", reordered)
	assert.Equal(t, "2024年10月1日", out)
}
