package zh

import (
	"github.com/czcorpus/tn-wfst/fst"
	"github.com/czcorpus/tn-wfst/grammar"
)

// Measure implements the Chinese percent-range measure class (ITN only
// for now, see DESIGN.md): 百分之X到Y => X%~Y%. The denominator field is
// synthetically fixed at "100" (percent always implies /100) rather than
// scanned from input, matching spec.md §4.4's itn measure order
// (numerator, denominator, value) while keeping the denominator silent
// in the rendered output. Grounded on
// original_source/itn/chinese/rules/measure.py's percentage branch.
type Measure struct{}

func NewMeasure() *Measure { return &Measure{} }

func (m *Measure) Name() string { return "measure" }

func (m *Measure) number() *fst.Transducer {
	return (&Cardinal{EnableStandaloneNumber: true, Enable0To9: true}).number()
}

func (m *Measure) Tagger(p *grammar.Processor) *fst.Transducer {
	number := m.number()
	numerator := fst.Concat(fst.Insert(`numerator: "`), fst.Concat(number, fst.Insert(`"`)))
	denominator := fst.Insert(` denominator: "100"`)
	value := fst.Concat(fst.Insert(` value: "`), fst.Concat(number, fst.Insert(`"`)))

	tagger := fst.Concat(fst.Delete("百分之"), fst.Concat(numerator,
		fst.Concat(denominator, fst.Concat(fst.Delete("到"), value))))
	return p.AddTokens(tagger)
}

func (m *Measure) Verbalizer(p *grammar.Processor) *fst.Transducer {
	numerator := fst.Concat(fst.Delete(`numerator: "`), fst.Concat(p.Sigma, fst.Delete(`"`)))
	denominator := fst.Concat(fst.Delete(` denominator: "`), fst.Concat(fst.Delete("100"), fst.Delete(`"`)))
	value := fst.Concat(fst.Delete(` value: "`), fst.Concat(p.Sigma, fst.Delete(`"`)))

	verbalizer := fst.Concat(numerator, fst.Concat(fst.Insert("%~"),
		fst.Concat(denominator, fst.Concat(value, fst.Insert("%")))))
	return p.DeleteTokens(verbalizer)
}
