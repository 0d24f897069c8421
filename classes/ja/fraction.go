package ja

import (
	"github.com/czcorpus/tn-wfst/fst"
	"github.com/czcorpus/tn-wfst/grammar"
)

// Fraction implements the Japanese fraction class: 分の-style spoken
// fractions (denominator spoken first, then the numerator, e.g. 三分の二
// "two thirds"), mirroring classes/zh's Fraction with の in place of之.
// Grounded on original_source/itn/japanese/rules/fraction.py.
type Fraction struct {
	Direction string
}

func NewFraction(direction string) *Fraction { return &Fraction{Direction: direction} }

func (f *Fraction) Name() string { return "fraction" }

func (f *Fraction) number() *fst.Transducer {
	return (&Cardinal{EnableStandaloneNumber: true}).number()
}

func (f *Fraction) Tagger(p *grammar.Processor) *fst.Transducer {
	if f.Direction == "tn" {
		return f.taggerTN(p)
	}
	return f.taggerITN(p)
}

// taggerITN consumes "<denominator>分の<numerator>", tagging denominator
// then numerator in that as-parsed order; the canonical itn order
// (numerator, denominator) is restored by Reorder before verbalizing.
func (f *Fraction) taggerITN(p *grammar.Processor) *fst.Transducer {
	number := f.number()
	denominator := fst.Concat(fst.Insert(`denominator: "`), fst.Concat(number, fst.Concat(fst.Delete("分の"), fst.Insert(`" `))))
	numerator := fst.Concat(fst.Insert(`numerator: "`), fst.Concat(number, fst.Insert(`"`)))
	return p.AddTokens(fst.Concat(denominator, numerator))
}

// taggerTN consumes "<numerator>/<denominator>" (Western notation).
func (f *Fraction) taggerTN(p *grammar.Processor) *fst.Transducer {
	spoken := fst.Invert(f.number())
	numerator := fst.Concat(fst.Insert(`numerator: "`), fst.Concat(spoken, fst.Concat(fst.Delete("/"), fst.Insert(`" `))))
	denominator := fst.Concat(fst.Insert(`denominator: "`), fst.Concat(spoken, fst.Insert(`"`)))
	return p.AddTokens(fst.Concat(numerator, denominator))
}

func (f *Fraction) Verbalizer(p *grammar.Processor) *fst.Transducer {
	if f.Direction == "tn" {
		return f.verbalizerTN(p)
	}
	return f.verbalizerITN(p)
}

// verbalizerITN matches the post-reorder sequence numerator, denominator
// and renders "<numerator>/<denominator>".
func (f *Fraction) verbalizerITN(p *grammar.Processor) *fst.Transducer {
	numerator := fst.Concat(fst.Delete(`numerator: "`), fst.Concat(p.Sigma, fst.Delete(`"`)))
	denominator := fst.Concat(fst.Delete(` denominator: "`), fst.Concat(p.Sigma, fst.Delete(`"`)))
	verbalizer := fst.Concat(numerator, fst.Concat(fst.Insert("/"), denominator))
	return p.DeleteTokens(verbalizer)
}

// verbalizerTN matches the post-reorder sequence denominator, numerator
// and renders "<denominator>分の<numerator>".
func (f *Fraction) verbalizerTN(p *grammar.Processor) *fst.Transducer {
	denominator := fst.Concat(fst.Delete(`denominator: "`), fst.Concat(p.Sigma, fst.Delete(`"`)))
	numerator := fst.Concat(fst.Delete(` numerator: "`), fst.Concat(p.Sigma, fst.Delete(`"`)))
	verbalizer := fst.Concat(denominator, fst.Concat(fst.Insert("分の"), numerator))
	return p.DeleteTokens(verbalizer)
}
