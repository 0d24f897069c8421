package zh

import (
	"github.com/czcorpus/tn-wfst/fst"
	"github.com/czcorpus/tn-wfst/grammar"
)

// Math implements a minimal Chinese arithmetic-expression class
// (三加五等于八 <-> 3+5=8), grounded on
// original_source/itn/chinese/rules/math.py. "math" has no entry in
// spec.md §4.4's order table, so its fields are verbalized exactly as
// tagged (left, op, right, result?) with no canonical reordering.
type Math struct {
	Direction string
}

func NewMath(direction string) *Math { return &Math{Direction: direction} }

func (m *Math) Name() string { return "math" }

func (m *Math) number() *fst.Transducer {
	return (&Cardinal{EnableStandaloneNumber: true, Enable0To9: true}).number()
}

func (m *Math) Tagger(p *grammar.Processor) *fst.Transducer {
	if m.Direction == "tn" {
		return m.taggerTN(p)
	}
	return m.taggerITN(p)
}

func (m *Math) taggerITN(p *grammar.Processor) *fst.Transducer {
	number := m.number()
	left := fst.Concat(fst.Insert(`left: "`), fst.Concat(number, fst.Insert(`" `)))
	op := fst.Concat(fst.Insert(`op: "`), fst.Concat(operatorLex(), fst.Insert(`" `)))
	right := fst.Concat(fst.Insert(`right: "`), fst.Concat(number, fst.Insert(`"`)))
	result := fst.Ques(fst.Concat(fst.Insert(` result: "`), fst.Concat(fst.Delete("等于"), fst.Concat(number, fst.Insert(`"`)))))

	tagger := fst.Concat(left, fst.Concat(op, fst.Concat(right, result)))
	return p.AddTokens(tagger)
}

func (m *Math) taggerTN(p *grammar.Processor) *fst.Transducer {
	spoken := fst.Invert(m.number())
	left := fst.Concat(fst.Insert(`left: "`), fst.Concat(spoken, fst.Insert(`" `)))
	op := fst.Concat(fst.Insert(`op: "`), fst.Concat(fst.Invert(operatorLex()), fst.Insert(`" `)))
	right := fst.Concat(fst.Insert(`right: "`), fst.Concat(spoken, fst.Insert(`"`)))
	result := fst.Ques(fst.Concat(fst.Insert(` result: "`), fst.Concat(fst.Delete("="), fst.Concat(spoken, fst.Insert(`"`)))))

	tagger := fst.Concat(left, fst.Concat(op, fst.Concat(right, result)))
	return p.AddTokens(tagger)
}

func (m *Math) Verbalizer(p *grammar.Processor) *fst.Transducer {
	if m.Direction == "tn" {
		return m.verbalizerTN(p)
	}
	return m.verbalizerITN(p)
}

func (m *Math) verbalizerITN(p *grammar.Processor) *fst.Transducer {
	left := fst.Concat(fst.Delete(`left: "`), fst.Concat(p.Sigma, fst.Delete(`" `)))
	op := fst.Concat(fst.Delete(`op: "`), fst.Concat(p.Sigma, fst.Delete(`" `)))
	right := fst.Concat(fst.Delete(`right: "`), fst.Concat(p.Sigma, fst.Delete(`"`)))
	result := fst.Ques(fst.Concat(fst.Delete(` result: "`), fst.Concat(fst.Insert("="), fst.Concat(p.Sigma, fst.Delete(`"`)))))

	verbalizer := fst.Concat(left, fst.Concat(op, fst.Concat(right, result)))
	return p.DeleteTokens(verbalizer)
}

func (m *Math) verbalizerTN(p *grammar.Processor) *fst.Transducer {
	left := fst.Concat(fst.Delete(`left: "`), fst.Concat(p.Sigma, fst.Delete(`" `)))
	op := fst.Concat(fst.Delete(`op: "`), fst.Concat(p.Sigma, fst.Delete(`" `)))
	right := fst.Concat(fst.Delete(`right: "`), fst.Concat(p.Sigma, fst.Delete(`"`)))
	result := fst.Ques(fst.Concat(fst.Delete(` result: "`), fst.Concat(fst.Insert("等于"), fst.Concat(p.Sigma, fst.Delete(`"`)))))

	verbalizer := fst.Concat(left, fst.Concat(op, fst.Concat(right, result)))
	return p.DeleteTokens(verbalizer)
}
