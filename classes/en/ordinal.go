package en

import (
	"github.com/czcorpus/tn-wfst/fst"
	"github.com/czcorpus/tn-wfst/grammar"
	"github.com/czcorpus/tn-wfst/grammar/modders"
)

// Ordinal implements English ordinals for the ITN direction: the tagger
// reads spoken cardinal words ("twenty three") into an integer field
// ("23"), and ApplySuffix appends st/nd/rd/th after verbalizing
// ("23rd") through modders.OrdinalSuffix, grounded on the teacher's
// ptcount/modders chain-of-named-transforms idiom. Ordinal words such as
// "twenty third" are not read, and the class is registered for ITN only.
type Ordinal struct{}

func NewOrdinal() *Ordinal { return &Ordinal{} }

func (o *Ordinal) Name() string { return "ordinal" }

func (o *Ordinal) Tagger(p *grammar.Processor) *fst.Transducer {
	cardinal := (&Cardinal{}).number()
	tagger := fst.Concat(fst.Insert(`integer: "`), fst.Concat(cardinal, fst.Insert(`"`)))
	return p.AddTokens(tagger)
}

// Verbalizer returns the FST half of the transform (field extraction);
// the ordinal suffix itself is applied by ApplySuffix after
// ShortestPath, since appending "st"/"nd"/"rd"/"th" depends on the
// integer's value mod 10/100, a computation better done in Go than
// encoded as a transducer branch explosion.
func (o *Ordinal) Verbalizer(p *grammar.Processor) *fst.Transducer {
	body := fst.Concat(fst.Delete(`integer: "`), fst.Concat(p.Sigma, fst.Delete(`"`)))
	return p.DeleteTokens(body)
}

// ApplySuffix appends the English ordinal suffix to a plain verbalized
// integer string, e.g. "23" -> "23rd".
func (o *Ordinal) ApplySuffix(s string) string {
	return modders.Factory(modders.TransformerOrdinalSuffix).Transform(s)
}
