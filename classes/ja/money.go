package ja

import (
	"github.com/czcorpus/tn-wfst/fst"
	"github.com/czcorpus/tn-wfst/grammar"
)

// Money implements the Japanese money class, grounded on
// original_source/itn/japanese/rules/money.py: a cardinal value
// followed by a currency unit from the embedded currency lexicon (no
// decimal tail, see DESIGN.md).
type Money struct {
	Direction string
}

func NewMoney(direction string) *Money { return &Money{Direction: direction} }

func (m *Money) Name() string { return "money" }

func (m *Money) number() *fst.Transducer {
	return (&Cardinal{EnableStandaloneNumber: true}).number()
}

func (m *Money) Tagger(p *grammar.Processor) *fst.Transducer {
	if m.Direction == "tn" {
		return m.taggerTN(p)
	}
	return m.taggerITN(p)
}

func (m *Money) taggerITN(p *grammar.Processor) *fst.Transducer {
	number := m.number()
	tagger := fst.Concat(fst.Insert(`value: "`), fst.Concat(number, fst.Concat(fst.Insert(`"`),
		fst.Concat(fst.Insert(` currency: "`), fst.Concat(currencyLex(), fst.Insert(`"`))))))
	return p.AddTokens(tagger)
}

func (m *Money) taggerTN(p *grammar.Processor) *fst.Transducer {
	spokenValue := fst.Invert(m.number())
	spokenCurrency := fst.Invert(currencyLex())
	tagger := fst.Concat(fst.Insert(`value: "`), fst.Concat(spokenValue, fst.Concat(fst.Insert(`"`),
		fst.Concat(fst.Insert(` currency: "`), fst.Concat(spokenCurrency, fst.Insert(`"`))))))
	return p.AddTokens(tagger)
}

func (m *Money) Verbalizer(p *grammar.Processor) *fst.Transducer {
	if m.Direction == "tn" {
		return m.verbalizerTN(p)
	}
	return m.verbalizerITN(p)
}

// verbalizerITN matches the post-reorder field sequence currency,value
// (the generic itn money order table).
func (m *Money) verbalizerITN(p *grammar.Processor) *fst.Transducer {
	currency := fst.Concat(fst.Delete(`currency: "`), fst.Concat(p.Sigma, fst.Delete(`"`)))
	value := fst.Concat(fst.Delete(` value: "`), fst.Concat(p.Sigma, fst.Delete(`"`)))
	verbalizer := fst.Concat(currency, value)
	return p.DeleteTokens(verbalizer)
}

// verbalizerTN matches the post-reorder field sequence value,currency
// (the generic tn money order table).
func (m *Money) verbalizerTN(p *grammar.Processor) *fst.Transducer {
	value := fst.Concat(fst.Delete(`value: "`), fst.Concat(p.Sigma, fst.Delete(`"`)))
	currency := fst.Concat(fst.Delete(` currency: "`), fst.Concat(p.Sigma, fst.Delete(`"`)))
	verbalizer := fst.Concat(value, currency)
	return p.DeleteTokens(verbalizer)
}
