package ja

import (
	"github.com/czcorpus/tn-wfst/classes"
	"github.com/czcorpus/tn-wfst/fst"
	"github.com/czcorpus/tn-wfst/grammar"
)

// Char is the single-character fallback class, identical in shape to
// classes/zh's Char: it carries the heaviest tagger weight of the
// registry so ShortestPath only reaches for it once every other class
// has failed to match. When TagOOV is set (spec.md §6's --tag_oov),
// every fallback character additionally carries an oov field.
type Char struct {
	TagOOV bool
}

func NewChar(opts classes.Options) *Char { return &Char{TagOOV: opts.TagOOV} }

func (c *Char) Name() string { return "char" }

func (c *Char) Tagger(p *grammar.Processor) *fst.Transducer {
	value := fst.Concat(fst.Insert(`value: "`), fst.Concat(p.NotSpace, fst.Insert(`"`)))
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
