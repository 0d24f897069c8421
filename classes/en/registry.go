package en

import "github.com/czcorpus/tn-wfst/classes"

// BuildRegistry returns the English class registry for the requested
// direction. ITN covers date/time/money/cardinal/ordinal per
// original_source/itn/english/rules/__init__.py's InverseNormalizer;
// TN covers date/time/money/cardinal plus fraction/whitelist, mirroring
// NeMo's TN-only fraction and whitelist grammars, and has no ordinal
// class. Both directions end with the char fallback. Measure is out of scope for English
// (see DESIGN.md).
func BuildRegistry(direction string, opts classes.Options) *classes.Registry {
	r := classes.NewRegistry()
	r.Register(NewDate(direction), 1.02)
	r.Register(NewMoney(direction), 1.05)
	r.Register(NewTime(direction), 1.05)
	r.Register(NewCardinal(direction), 1.0)
	if direction != "tn" {
		r.Register(NewOrdinal(), 1.04)
	}
	if direction == "tn" {
		r.Register(NewFraction(), 1.05)
		r.Register(NewWhitelist(), 1.01)
	}
	r.Register(NewChar(opts), 100)
	return r
}
