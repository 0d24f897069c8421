package en

import (
	"github.com/czcorpus/tn-wfst/classes"
	"github.com/czcorpus/tn-wfst/fst"
	"github.com/czcorpus/tn-wfst/grammar"
)

// Char is the single-token fallback class: whatever no more specific
// class grammar claims is tagged as one whitespace-delimited token.
// Carries the heaviest tagger weight of the registry, mirroring
// classes/zh's Char. When TagOOV is set (spec.md §6's --tag_oov), every
// fallback token additionally carries an oov field.
type Char struct {
	TagOOV bool
}

func NewChar(opts classes.Options) *Char { return &Char{TagOOV: opts.TagOOV} }

func (c *Char) Name() string { return "char" }

func (c *Char) Tagger(p *grammar.Processor) *fst.Transducer {
	value := fst.Concat(fst.Insert(`value: "`), fst.Concat(fst.Plus(p.NotSpace), fst.Insert(`"`)))
	if !c.TagOOV {
		return p.AddTokens(value)
	}
	tagger := fst.Concat(value, fst.Insert(` oov: "true"`))
	return p.AddTokens(tagger)
}

func (c *Char) Verbalizer(p *grammar.Processor) *fst.Transducer {
	if !c.TagOOV {
		return p.DefaultVerbalizer()
	}
	value := fst.Concat(fst.Delete(`value: "`), fst.Concat(p.Sigma, fst.Delete(`"`)))
	oov := fst.Delete(` oov: "true"`)
	return p.DeleteTokens(fst.Concat(value, oov))
}
