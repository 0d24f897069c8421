package en

import (
	"github.com/czcorpus/tn-wfst/fst"
	"github.com/czcorpus/tn-wfst/grammar"
)

// Whitelist implements the TN-only fixed abbreviation expansion ("Mr"
// -> "mister"), the reverse of classes/zh's Whitelist direction since
// English abbreviations expand in the TN direction rather than contract
// in ITN, grounded on original_source/tn/english/rules/whitelist.py.
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
