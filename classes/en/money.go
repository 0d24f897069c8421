package en

import (
	"github.com/czcorpus/tn-wfst/fst"
	"github.com/czcorpus/tn-wfst/grammar"
)

// Money implements the English money class: "<value> <currency>" <->
// "<currency symbol><value>", grounded on
// original_source/tn/english/rules/money.py (no decimal cents tail, see
// DESIGN.md).
type Money struct {
	Direction string
}

func NewMoney(direction string) *Money { return &Money{Direction: direction} }

func (m *Money) Name() string { return "money" }

func (m *Money) number() *fst.Transducer {
	return (&Cardinal{}).number()
}

func (m *Money) Tagger(p *grammar.Processor) *fst.Transducer {
	if m.Direction == "tn" {
		return m.taggerTN(p)
	}
	return m.taggerITN(p)
}

// taggerITN consumes "<value> <currency word>" and emits value,currency
// in that as-parsed order; Reorder rearranges to the generic itn money
// order (currency, value).
func (m *Money) taggerITN(p *grammar.Processor) *fst.Transducer {
	number := m.number()
	value := fst.Concat(fst.Insert(`value: "`), fst.Concat(number, fst.Concat(fst.DeleteSpace(), fst.Insert(`" `))))
	currency := fst.Concat(fst.Insert(`currency: "`), fst.Concat(currencyLex(), fst.Insert(`"`)))
	return p.AddTokens(fst.Concat(value, currency))
}

// taggerTN consumes "<currency symbol><digit value>" (e.g. "$3") and
// emits the same field shape by inverting the same compositions
// taggerITN reads through.
func (m *Money) taggerTN(p *grammar.Processor) *fst.Transducer {
	spokenCurrency := fst.Invert(currencyLex())
	spokenValue := fst.Invert(m.number())
	currency := fst.Concat(fst.Insert(`currency: "`), fst.Concat(spokenCurrency, fst.Insert(`" `)))
	value := fst.Concat(fst.Insert(`value: "`), fst.Concat(spokenValue, fst.Insert(`"`)))
	return p.AddTokens(fst.Concat(currency, value))
}

func (m *Money) Verbalizer(p *grammar.Processor) *fst.Transducer {
	if m.Direction == "tn" {
		return m.verbalizerTN(p)
	}
	return m.verbalizerITN(p)
}

// verbalizerITN matches the post-reorder sequence currency,value and
// renders "<currency symbol><value>" with no space, e.g. "$3".
func (m *Money) verbalizerITN(p *grammar.Processor) *fst.Transducer {
	currency := fst.Concat(fst.Delete(`currency: "`), fst.Concat(p.Sigma, fst.Delete(`"`)))
	value := fst.Concat(fst.Delete(` value: "`), fst.Concat(p.Sigma, fst.Delete(`"`)))
	return p.DeleteTokens(fst.Concat(currency, value))
}

// verbalizerTN matches the post-reorder sequence value,currency and
// renders "<value> <currency word>".
func (m *Money) verbalizerTN(p *grammar.Processor) *fst.Transducer {
	value := fst.Concat(fst.Delete(`value: "`), fst.Concat(p.Sigma, fst.Delete(`"`)))
	currency := fst.Concat(fst.Delete(` currency: "`), fst.Concat(p.Sigma, fst.Delete(`"`)))
	return p.DeleteTokens(fst.Concat(value, fst.Concat(fst.Insert(" "), currency)))
}
