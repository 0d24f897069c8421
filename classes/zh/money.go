package zh

import (
	"github.com/czcorpus/tn-wfst/classes"
	"github.com/czcorpus/tn-wfst/fst"
	"github.com/czcorpus/tn-wfst/grammar"
)

// Money implements the Chinese money class, grounded on
// original_source/itn/chinese/rules/money.py: a cardinal value, a
// currency unit drawn from the embedded currency lexicon, and an
// optional jiao/fen decimal tail. Direction "tn" inverts the same
// cardinal/currency compositions to read a digit amount back into
// spoken Chinese (no decimal tail on that side, per spec.md §4.4's
// tn money order table).
type Money struct {
	Enable0To9 bool
	Direction  string
}

func NewMoney(direction string, opts classes.Options) *Money {
	return &Money{Enable0To9: opts.Enable0To9, Direction: direction}
}

func (m *Money) Name() string { return "money" }

func (m *Money) Tagger(p *grammar.Processor) *fst.Transducer {
	if m.Direction == "tn" {
		return m.taggerTN(p)
	}
	return m.taggerITN(p)
}

func (m *Money) taggerITN(p *grammar.Processor) *fst.Transducer {
	cardinal := (&Cardinal{EnableStandaloneNumber: true, Enable0To9: m.Enable0To9}).number()
	digit := digitLex()
	number := fst.Union(cardinal, fst.Concat(digit, fst.Concat(fst.Insert("~"), digit)))

	decimal := fst.Ques(fst.Concat(fst.Insert("."), fst.Concat(fenDigit(),
		fst.Ques(fst.Concat(digit, fst.Delete("分"))))))

	tagger := fst.Concat(fst.Insert(`value: "`), fst.Concat(number, fst.Concat(fst.Insert(`"`),
		fst.Concat(fst.Insert(` currency: "`), fst.Concat(currencyLex(), fst.Concat(fst.Insert(`"`),
			fst.Concat(fst.Insert(` decimal: "`), fst.Concat(decimal, fst.Insert(`"`)))))))))
	return p.AddTokens(tagger)
}

// taggerTN reads a digit amount plus its (English, per currencyLex's
// ITN output convention) currency word and emits the spoken-Chinese
// reading, with no decimal tail.
func (m *Money) taggerTN(p *grammar.Processor) *fst.Transducer {
	cardinal := (&Cardinal{EnableStandaloneNumber: true, Enable0To9: m.Enable0To9}).number()
	spokenValue := fst.Invert(cardinal)
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

// verbalizerITN matches the post-reorder field sequence
// currency,value,decimal (spec.md §4.4's itn money order).
func (m *Money) verbalizerITN(p *grammar.Processor) *fst.Transducer {
	currency := fst.Concat(fst.Delete(`currency: "`), fst.Concat(p.Sigma, fst.Delete(`"`)))
	value := fst.Concat(fst.Delete(` value: "`), fst.Concat(p.Sigma, fst.Delete(`"`)))
	decimal := fst.Concat(fst.Delete(` decimal: "`), fst.Concat(p.Sigma, fst.Delete(`"`)))
	verbalizer := fst.Concat(currency, fst.Concat(value, decimal))
	return p.DeleteTokens(verbalizer)
}

// verbalizerTN matches the post-reorder field sequence value,currency
// (spec.md §4.4's tn money order; no decimal field on this side).
func (m *Money) verbalizerTN(p *grammar.Processor) *fst.Transducer {
	value := fst.Concat(fst.Delete(`value: "`), fst.Concat(p.Sigma, fst.Delete(`"`)))
	currency := fst.Concat(fst.Delete(` currency: "`), fst.Concat(p.Sigma, fst.Delete(`"`)))
	verbalizer := fst.Concat(value, currency)
	return p.DeleteTokens(verbalizer)
}
