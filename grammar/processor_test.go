package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/czcorpus/tn-wfst/fst"
)

func TestBuildRuleGlobalReplace(t *testing.T) {
	p := NewProcessor("test")
	rule := p.BuildRule(fst.Cross(" ", "_"), nil, nil)
	composed := fst.Compose(fst.Accept("a b"), rule)
	out, ok := fst.ShortestPath(composed)
	assert.True(t, ok)
	assert.Equal(t, "a_b", out)
}

func TestAddDeleteTokensRoundTrip(t *testing.T) {
	p := NewProcessor("cardinal")
	tagger := p.AddTokens(fst.Insert(`value: "5"`))
	out, ok := fst.ShortestPath(fst.Compose(fst.Accept(""), tagger))
	assert.True(t, ok)
	assert.Equal(t, `cardinal { value: "5" } `, out)

	verbalizer := p.DefaultVerbalizer()
	out2, ok2 := fst.ShortestPath(fst.Compose(fst.Accept(out), verbalizer))
	assert.True(t, ok2)
	assert.Equal(t, "5", out2)
}
