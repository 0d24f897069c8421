package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSimpleToken(t *testing.T) {
	toks, err := Parse(`cardinal { integer: "23" }`)
	assert.NoError(t, err)
	assert.Len(t, toks, 1)
	assert.Equal(t, "cardinal", toks[0].Name)

	v, ok := toks[0].Fields.Get("integer")
	assert.True(t, ok)
	assert.Equal(t, "23", v)
}

func TestParseMultipleTokensAndEscape(t *testing.T) {
	toks, err := Parse(`money { currency: "\"dollar\"" value: "5" } cardinal { integer: "1" }`)
	assert.NoError(t, err)
	assert.Len(t, toks, 2)

	v, _ := toks[0].Fields.Get("currency")
	assert.Equal(t, `"dollar"`, v)
}

func TestCanonicalReorder(t *testing.T) {
	out, err := Reorder("itn", `date { day: "5" year: "2024" month: "3" }`)
	assert.NoError(t, err)
	assert.Equal(t, `date { year: "2024" month: "3" day: "5" }`, out)
}

func TestPreserveOrderEscapeHatch(t *testing.T) {
	out, err := Reorder("itn", `date { day: "5" year: "2024" preserve_order: "true" }`)
	assert.NoError(t, err)
	assert.Equal(t, `date { day: "5" year: "2024" }`, out)
}
