package zh

import "github.com/czcorpus/tn-wfst/classes"

// BuildRegistry returns the Chinese class registry for the requested
// direction, with tagger weights carried over from
// original_source/itn/chinese/rules/__init__.py's InverseNormalizer
// (Date@1.02, Whitelist@1.01, Fraction@1.05, Measure@1.05, Money@1.05,
// Time@1.05, Cardinal@1.06, Math@1.10, Char@100). TN reuses the same
// weights for the classes it shares with ITN. Whitelist is ITN-only
// (its entries are fixed spoken-form substitutions with no TN reverse);
// Measure is ITN-only for now (see DESIGN.md).
func BuildRegistry(direction string, opts classes.Options) *classes.Registry {
	r := classes.NewRegistry()
	r.Register(NewDate(direction), 1.02)
	if direction != "tn" {
		r.Register(NewWhitelist(), 1.01)
	}
	r.Register(NewMoney(direction, opts), 1.05)
	r.Register(NewCardinal(direction, opts), 1.06)
	r.Register(NewFraction(direction), 1.05)
	if direction != "tn" {
		r.Register(NewMeasure(), 1.05)
	}
	r.Register(NewTime(direction), 1.05)
	r.Register(NewMath(direction), 1.10)
	r.Register(NewChar(opts), 100)
	return r
}
