package ja

import "github.com/czcorpus/tn-wfst/classes"

// BuildRegistry returns the Japanese class registry for the requested
// direction. Weights mirror original_source/itn/japanese/inverse_
// normalizer.py's build_tagger ordering (Date@1.02, Fraction@1.05,
// Measure@1.05, Money@1.05, Time@1.05, Cardinal@1.06, Char@100).
// Ordinal/Whitelist/Math are out of scope for Japanese (see DESIGN.md);
// Measure is ITN-only for now, mirroring the same scope choice made for
// Chinese.
func BuildRegistry(direction string, opts classes.Options) *classes.Registry {
	r := classes.NewRegistry()
	r.Register(NewDate(direction), 1.02)
	r.Register(NewMoney(direction), 1.05)
	r.Register(NewCardinal(direction), 1.06)
	r.Register(NewFraction(direction), 1.05)
	if direction != "tn" {
		r.Register(NewMeasure(), 1.05)
	}
	r.Register(NewTime(direction), 1.05)
	r.Register(NewChar(opts), 100)
	return r
}
