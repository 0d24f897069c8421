package ja

import (
	"github.com/czcorpus/tn-wfst/fst"
	"github.com/czcorpus/tn-wfst/grammar"
)

// Measure implements the Japanese percent-range measure class (ITN only
// for now, see DESIGN.md): <X>から<Y>パーセント => X%~Y%, mirroring
// classes/zh's Measure. The denominator field is synthetically fixed at
// "100" rather than scanned from input, matching the generic itn
// measure order (numerator, denominator, value). Grounded on
// original_source/itn/japanese/rules/measure.py's percentage branch.
type Measure struct{}

func NewMeasure() *Measure { return &Measure{} }

func (m *Measure) Name() string { return "measure" }

func (m *Measure) number() *fst.Transducer {
	return (&Cardinal{EnableStandaloneNumber: true}).number()
}

func (m *Measure) Tagger(p *grammar.Processor) *fst.Transducer {
	number := m.number()
	numerator := fst.Concat(fst.Insert(`numerator: "`), fst.Concat(number, fst.Concat(fst.Delete("から"), fst.Insert(`"`))))
	denominator := fst.Insert(` denominator: "100"`)
	value := fst.Concat(fst.Insert(` value: "`), fst.Concat(number, fst.Insert(`"`)))

	tagger := fst.Concat(numerator, fst.Concat(denominator, fst.Concat(value, fst.Delete("パーセント"))))
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
