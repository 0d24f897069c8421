package en

import (
	"github.com/czcorpus/tn-wfst/fst"
	"github.com/czcorpus/tn-wfst/grammar"
)

// Fraction implements the TN-only "3/4" -> "three fourths" reading
// (ITN's reverse "three fourths" -> "3/4" is out of scope for now, see
// DESIGN.md), grounded on original_source/tn/english/rules/fraction.py.
// "fraction" has no en_tn order-table entry, so its numerator/denominator
// fields verbalize exactly as tagged, with no reordering.
type Fraction struct{}

func NewFraction() *Fraction { return &Fraction{} }

func (f *Fraction) Name() string { return "fraction" }

func (f *Fraction) number() *fst.Transducer {
	return (&Cardinal{}).number()
}

// Tagger consumes "<numerator>/<denominator>" and spells the numerator
// as a cardinal word and the denominator as a plural ordinal word (e.g.
// "3/4" -> numerator "three", denominator "fourths"). Numerator 1 is not
// special-cased to the singular "a" form, a deliberate simplification.
func (f *Fraction) Tagger(p *grammar.Processor) *fst.Transducer {
	spokenNumerator := fst.Invert(f.number())
	numerator := fst.Concat(fst.Insert(`numerator: "`), fst.Concat(spokenNumerator, fst.Concat(fst.Delete("/"), fst.Insert(`" `))))
	denominator := fst.Concat(fst.Insert(`denominator: "`), fst.Concat(ordinalWordLex(), fst.Insert(`"`)))
	return p.AddTokens(fst.Concat(numerator, denominator))
}

func (f *Fraction) Verbalizer(p *grammar.Processor) *fst.Transducer {
	numerator := fst.Concat(fst.Delete(`numerator: "`), fst.Concat(p.Sigma, fst.Delete(`" `)))
	denominator := fst.Concat(fst.Delete(`denominator: "`), fst.Concat(p.Sigma, fst.Delete(`"`)))
	verbalizer := fst.Concat(numerator, fst.Concat(fst.Insert(" "), denominator))
	return p.DeleteTokens(verbalizer)
}
