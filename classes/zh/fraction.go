package zh

import (
	"github.com/czcorpus/tn-wfst/fst"
	"github.com/czcorpus/tn-wfst/grammar"
)

// Fraction implements the Chinese fraction class: 分之-style spoken
// fractions (denominator spoken first, then the numerator) in ITN, and
// their Western "numerator/denominator" digit form in TN. Grounded on
// original_source/itn/chinese/rules/fraction.py; the optional leading
// sign handles 负/正-prefixed fractions per spec.md §4.4's itn order
// table (sign, numerator, denominator).
type Fraction struct {
	Direction string
}

func NewFraction(direction string) *Fraction { return &Fraction{Direction: direction} }

func (f *Fraction) Name() string { return "fraction" }

func (f *Fraction) number() *fst.Transducer {
	return (&Cardinal{EnableStandaloneNumber: true, Enable0To9: true}).number()
}

func (f *Fraction) Tagger(p *grammar.Processor) *fst.Transducer {
	if f.Direction == "tn" {
		return f.taggerTN(p)
	}
	return f.taggerITN(p)
}

// taggerITN consumes "<denominator>分之<numerator>" (e.g. 三分之二),
// tagging sign?, denominator, numerator in that as-parsed order; the
// canonical itn order (sign, numerator, denominator) is restored by
// Reorder before verbalizing.
func (f *Fraction) taggerITN(p *grammar.Processor) *fst.Transducer {
	number := f.number()
	sign := fst.Ques(fst.Concat(fst.Insert(`sign: "`), fst.Concat(signLex(), fst.Insert(`" `))))
	denominator := fst.Concat(fst.Insert(`denominator: "`), fst.Concat(number, fst.Concat(fst.Delete("分之"), fst.Insert(`" `))))
	numerator := fst.Concat(fst.Insert(`numerator: "`), fst.Concat(number, fst.Insert(`"`)))

	tagger := fst.Concat(sign, fst.Concat(denominator, numerator))
	return p.AddTokens(tagger)
}

// taggerTN consumes "<numerator>/<denominator>" (Western notation),
// tagging numerator, denominator in that as-parsed order.
func (f *Fraction) taggerTN(p *grammar.Processor) *fst.Transducer {
	spoken := fst.Invert(f.number())
	numerator := fst.Concat(fst.Insert(`numerator: "`), fst.Concat(spoken, fst.Concat(fst.Delete("/"), fst.Insert(`" `))))
	denominator := fst.Concat(fst.Insert(`denominator: "`), fst.Concat(spoken, fst.Insert(`"`)))

	tagger := fst.Concat(numerator, denominator)
	return p.AddTokens(tagger)
}

func (f *Fraction) Verbalizer(p *grammar.Processor) *fst.Transducer {
	if f.Direction == "tn" {
		return f.verbalizerTN(p)
	}
	return f.verbalizerITN(p)
}

// verbalizerITN matches the post-reorder sequence sign?, numerator,
// denominator, and renders "<numerator>/<denominator>" (sign prefixed).
func (f *Fraction) verbalizerITN(p *grammar.Processor) *fst.Transducer {
	sign := fst.Concat(fst.Delete(`sign: "`), fst.Concat(p.Sigma, fst.Delete(`"`)))
	numeratorFirst := fst.Concat(fst.Delete(`numerator: "`), fst.Concat(p.Sigma, fst.Delete(`"`)))
	numeratorAfterSign := fst.Concat(fst.Delete(` numerator: "`), fst.Concat(p.Sigma, fst.Delete(`"`)))
	denominator := fst.Concat(fst.Delete(` denominator: "`), fst.Concat(p.Sigma, fst.Delete(`"`)))

	withSign := fst.Concat(sign, fst.Concat(numeratorAfterSign, fst.Concat(fst.Insert("/"), denominator)))
	withoutSign := fst.Concat(numeratorFirst, fst.Concat(fst.Insert("/"), denominator))
	return p.DeleteTokens(fst.Union(withSign, withoutSign))
}

// verbalizerTN matches the post-reorder sequence denominator, numerator
// (spec.md §4.4's tn fraction order), rendering "<denominator>分之<numerator>".
func (f *Fraction) verbalizerTN(p *grammar.Processor) *fst.Transducer {
	denominator := fst.Concat(fst.Delete(`denominator: "`), fst.Concat(p.Sigma, fst.Delete(`"`)))
	numerator := fst.Concat(fst.Delete(` numerator: "`), fst.Concat(p.Sigma, fst.Delete(`"`)))
	verbalizer := fst.Concat(denominator, fst.Concat(fst.Insert("分之"), numerator))
	return p.DeleteTokens(verbalizer)
}
