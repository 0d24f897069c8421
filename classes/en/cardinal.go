package en

import (
	"github.com/czcorpus/tn-wfst/fst"
	"github.com/czcorpus/tn-wfst/grammar"
)

// Cardinal implements "twenty three" -> cardinal { integer: "23" },
// scoped to two-digit numbers (see DESIGN.md for why the NeMo
// original's hundred/thousand/million cascade is reduced to this).
// Direction "tn" inverts the same word/digit composition to read a
// digit string back into its spoken English reading.
type Cardinal struct {
	Direction string
}

func NewCardinal(direction string) *Cardinal { return &Cardinal{Direction: direction} }

func (c *Cardinal) Name() string { return "cardinal" }

// twoDigit returns the grammar for "ten".."ninety nine", grounded on
// cardinal.py's graph_two_digit = teen | ties DELETE_SPACE (digit|0).
func (c *Cardinal) twoDigit() *fst.Transducer {
	teen := teenLex()
	ties := tiesLex()
	digit := digitLex()
	tiesOnly := fst.Concat(ties, fst.Insert("0"))
	tiesDigit := fst.Concat(ties, fst.Concat(fst.DeleteSpace(), digit))
	return fst.Union(teen, fst.Union(tiesOnly, tiesDigit))
}

func (c *Cardinal) number() *fst.Transducer {
	return fst.Union(zeroLex(), fst.Union(digitLex(), c.twoDigit()))
}

func (c *Cardinal) Tagger(p *grammar.Processor) *fst.Transducer {
	if c.Direction == "tn" {
		return c.taggerTN(p)
	}
	return c.taggerITN(p)
}

func (c *Cardinal) taggerITN(p *grammar.Processor) *fst.Transducer {
	tagger := fst.Concat(fst.Insert(`integer: "`), fst.Concat(c.number(), fst.Insert(`"`)))
	return p.AddTokens(tagger)
}

// taggerTN reads a digit string and emits its spoken English reading, by
// inverting the same composition taggerITN reads words through (spec.md
// §4.1: invert(A) swaps input and output tapes).
func (c *Cardinal) taggerTN(p *grammar.Processor) *fst.Transducer {
	spoken := fst.Invert(c.number())
	tagger := fst.Concat(fst.Insert(`integer: "`), fst.Concat(spoken, fst.Insert(`"`)))
	return p.AddTokens(tagger)
}

func (c *Cardinal) Verbalizer(p *grammar.Processor) *fst.Transducer {
	body := fst.Concat(fst.Delete(`integer: "`), fst.Concat(p.Sigma, fst.Delete(`"`)))
	return p.DeleteTokens(body)
}
