package zh

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/czcorpus/tn-wfst/grammar"
)

func TestWhitelistTagVerbalizeRoundTrip(t *testing.T) {
	p := grammar.NewProcessor("whitelist")
	w := NewWhitelist()
	tagger := w.Tagger(p)
	verbalizer := w.Verbalizer(p)

	tagged, ok := apply(t, tagger, "Wi-Fi")
	assert.True(t, ok, "tagger rejected input")

	out, ok := apply(t, verbalizer, tagged)
	assert.True(t, ok, "verbalizer rejected tagged output %q", tagged)
	assert.Equal(t, "Wi-Fi", out)
}
