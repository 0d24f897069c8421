package zh

import (
	"github.com/czcorpus/tn-wfst/fst"
	"github.com/czcorpus/tn-wfst/grammar"
)

// Whitelist implements fixed verbatim substitutions (interjections,
// acronyms) that bypass every other grammar. Grounded on
// original_source/itn/chinese/rules/whitelist.py.
type Whitelist struct{}

func NewWhitelist() *Whitelist { return &Whitelist{} }

func (w *Whitelist) Name() string { return "whitelist" }

func (w *Whitelist) Tagger(p *grammar.Processor) *fst.Transducer {
	tagger := fst.Concat(fst.Insert(`value: "`), fst.Concat(whitelistLex(), fst.Insert(`"`)))
	return p.AddTokens(tagger)
}

func (w *Whitelist) Verbalizer(p *grammar.Processor) *fst.Transducer {
	return p.DefaultVerbalizer()
}
