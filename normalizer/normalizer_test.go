package normalizer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/czcorpus/tn-wfst/classes"
)

func TestNormalizeChineseCardinal(t *testing.T) {
	n, err := New("zh", "itn", Config{})
	assert.NoError(t, err)
	defer n.Close()

	out, err := n.Normalize(context.Background(), "二十三")
	assert.NoError(t, err)
	assert.Equal(t, "23", out)
}

func TestNormalizeEnglishCardinalOutweighsOrdinal(t *testing.T) {
	n, err := New("en", "itn", Config{})
	assert.NoError(t, err)
	defer n.Close()

	out, err := n.Normalize(context.Background(), "twenty three")
	assert.NoError(t, err)
	assert.Equal(t, "23", out)
}

func TestNormalizeFoldsFullwidthForms(t *testing.T) {
	n, err := New("zh", "itn", Config{})
	assert.NoError(t, err)
	defer n.Close()

	// fullwidth "Ｗｉ－Ｆｉ" should fold to "Wi-Fi" before tagging, which
	// then matches the whitelist entry verbatim.
	out, err := n.Normalize(context.Background(), "Ｗｉ－Ｆｉ")
	assert.NoError(t, err)
	assert.Equal(t, "Wi-Fi", out)
}

// TestNormalizeEndToEndScenarios exercises spec.md §8's table of
// concrete end-to-end scenarios. A few scenarios in that table exceed
// this build's scope (English month-name/ordinal dates, money cents,
// Chinese "10km/h" unit measures, slash-formatted Japanese dates); those
// are documented in DESIGN.md rather than faked here.
func TestNormalizeEndToEndScenarios(t *testing.T) {
	cases := []struct {
		name      string
		language  string
		direction string
		input     string
		want      string
	}{
		{"zh ITN date", "zh", "itn", "二零二三年十一月二十八日", "2023年11月28日"},
		{"zh ITN decimal", "zh", "itn", "零点八", "0.8"},
		{"zh ITN percent range", "zh", "itn", "百分之三十到四十", "30%~40%"},
		{"zh ITN fraction", "zh", "itn", "三分之二", "2/3"},
		{"zh TN date", "zh", "tn", "2008年8月8日", "二零零八年八月八日"},
		{"en TN fraction", "en", "tn", "3/4", "three fourths"},
		{"ja ITN date", "ja", "itn", "二千二十四年十月一日", "2024年10月1日"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := New(tc.language, tc.direction, Config{})
			assert.NoError(t, err, "New")
			defer n.Close()

			out, err := n.Normalize(context.Background(), tc.input)
			assert.NoError(t, err, "Normalize")
			assert.Equal(t, tc.want, out)
		})
	}
}

// TestNormalizeChineseMillion exercises spec.md §8's enable_million
// scenario, which requires a non-default Options value and so cannot
// share TestNormalizeEndToEndScenarios' Config{} table.
func TestNormalizeChineseMillion(t *testing.T) {
	opts := classes.DefaultOptions()
	opts.EnableMillion = true
	n, err := New("zh", "itn", Config{Options: opts})
	assert.NoError(t, err)
	defer n.Close()

	out, err := n.Normalize(context.Background(), "一千两百万")
	assert.NoError(t, err)
	assert.Equal(t, "12000000", out)
}

func TestNormalizeRemoveErhua(t *testing.T) {
	opts := classes.DefaultOptions()
	n, err := New("zh", "itn", Config{Options: opts})
	assert.NoError(t, err)
	defer n.Close()

	out, err := n.Normalize(context.Background(), "三十五儿")
	assert.NoError(t, err)
	assert.Equal(t, "35", out, "儿 suffix should be stripped before tagging, leaving the cardinal reading unchanged")
}

func TestNormalizeDisableFullToHalf(t *testing.T) {
	opts := classes.DefaultOptions()
	opts.FullToHalf = false
	n, err := New("zh", "itn", Config{Options: opts})
	assert.NoError(t, err)
	defer n.Close()

	// with folding disabled, the fullwidth "Ｗｉ－Ｆｉ" no longer matches
	// the halfwidth whitelist entry, so it falls through to the
	// single-character fallback class instead of the identity whitelist
	// mapping.
	out, err := n.Normalize(context.Background(), "Ｗｉ－Ｆｉ")
	assert.NoError(t, err)
	assert.NotEqual(t, "Wi-Fi", out)
}

func TestNormalizeRemovePuncts(t *testing.T) {
	opts := classes.DefaultOptions()
	opts.RemovePuncts = true
	n, err := New("zh", "itn", Config{Options: opts})
	assert.NoError(t, err)
	defer n.Close()

	out, err := n.Normalize(context.Background(), "Wi-Fi")
	assert.NoError(t, err)
	assert.Equal(t, "WiFi", out, "remove_puncts should strip the hyphen from the verbalized output")
}

func TestNormalizeWithCache(t *testing.T) {
	dir := t.TempDir()
	conf := Config{CacheDir: dir}

	n1, err := New("ja", "itn", conf)
	assert.NoError(t, err, "New (cold)")
	out1, err := n1.Normalize(context.Background(), "二十三")
	assert.NoError(t, err, "Normalize (cold)")
	n1.Close()

	n2, err := New("ja", "itn", conf)
	assert.NoError(t, err, "New (warm)")
	defer n2.Close()
	out2, err := n2.Normalize(context.Background(), "二十三")
	assert.NoError(t, err, "Normalize (warm)")

	assert.Equal(t, "23", out1)
	assert.Equal(t, out1, out2, "cold and warm builds should agree")
}
