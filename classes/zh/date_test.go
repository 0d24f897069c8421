package zh

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

	tagged, ok := apply(t, tagger, "二零二三年十一月二十八日")
	assert.True(t, ok, "tagger rejected input")

	reordered, err := token.Reorder("itn", tagged)
	assert.NoError(t, err, "reorder failed for %q", tagged)

	out, ok := apply(t, verbalizer, reordered)
	assert.True(t, ok, "verbalizer rejected tagged output %q", reordered)
	assert.Equal(t, "2023年11月28日", out)
}

func TestDateMonthDayOnly(t *testing.T) {
	p := grammar.NewProcessor("date")
	d := NewDate("itn")
	tagger := d.Tagger(p)
	verbalizer := d.Verbalizer(p)

	tagged, ok := apply(t, tagger, "三月五日")
	assert.True(t, ok, "tagger rejected input")

	reordered, err := token.Reorder("itn", tagged)
	assert.NoError(t, err, "reorder failed for %q", tagged)

	out, ok := apply(t, verbalizer, reordered)
	assert.True(t, ok, "verbalizer rejected tagged output %q", reordered)
	assert.Equal(t, "3月5日", out)
}

func TestDateTN(t *testing.T) {
	p := grammar.NewProcessor("date")
	d := NewDate("tn")
	tagger := d.Tagger(p)
	verbalizer := d.Verbalizer(p)

	tagged, ok := apply(t, tagger, "2008年8月8日")
	assert.True(t, ok, "tagger rejected input")

	reordered, err := token.Reorder("tn", tagged)
	assert.NoError(t, err, "reorder failed for %q", tagged)

	out, ok := apply(t, verbalizer, reordered)
	assert.True(t, ok, "verbalizer rejected tagged output %q", reordered)
	assert.Equal(t, "二零零八年八月八日", out)
}
