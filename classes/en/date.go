package en

import (
	"github.com/czcorpus/tn-wfst/fst"
	"github.com/czcorpus/tn-wfst/grammar"
)

// Date implements the English date class: digit yyyy-mm-dd on one tape,
// "<day> <month name> <year>" on the other, grounded on
// original_source/tn/english/rules/date.py. The year is read
// digit-by-digit (e.g. "2024" -> "two zero two four") rather than as a
// grouped "twenty twenty-four" reading, matching classes/zh's Date
// convention rather than NeMo's (see DESIGN.md); the day/month fields
// verbalize in "day month year" order because spec.md §4.4's en_tn date
// order table lists day before month before year.
type Date struct {
	Direction string
}

func NewDate(direction string) *Date { return &Date{Direction: direction} }

func (d *Date) Name() string { return "date" }

// digitRun reads a four-digit year digit-by-digit ("two zero two four"
// <-> "2024"), each spoken digit word separated by a space, matching
// classes/zh's Date year() convention rather than a grouped "twenty
// twenty-four" reading (see DESIGN.md).
func (d *Date) digitRun() *fst.Transducer {
	digit := fst.Union(digitLex(), zeroLex())
	sep := fst.DeleteSpace()
	return fst.Concat(digit, fst.Concat(sep, fst.Concat(digit, fst.Concat(sep, fst.Concat(digit, fst.Concat(sep, digit))))))
}

func (d *Date) day() *fst.Transducer {
	return (&Cardinal{}).number()
}

func (d *Date) Tagger(p *grammar.Processor) *fst.Transducer {
	if d.Direction == "tn" {
		return d.taggerTN(p)
	}
	return d.taggerITN(p)
}

// taggerITN consumes "<day> <month name> <year>" and emits digit fields
// in that as-parsed order; Reorder rearranges to the generic itn date
// order (year, month, day).
func (d *Date) taggerITN(p *grammar.Processor) *fst.Transducer {
	day := fst.Concat(fst.Insert(`day: "`), fst.Concat(d.day(), fst.Concat(fst.DeleteSpace(), fst.Insert(`" `))))
	month := fst.Concat(fst.Insert(`month: "`), fst.Concat(monthLex(), fst.Concat(fst.DeleteSpace(), fst.Insert(`" `))))
	year := fst.Concat(fst.Insert(`year: "`), fst.Concat(d.digitRun(), fst.Insert(`"`)))

	tagger := fst.Concat(day, fst.Concat(month, year))
	return p.AddTokens(tagger)
}

// taggerTN reads "yyyy-mm-dd" and emits the same field shape by
// inverting the same compositions taggerITN reads through.
func (d *Date) taggerTN(p *grammar.Processor) *fst.Transducer {
	spokenDay := fst.Invert(d.day())
	spokenMonth := fst.Invert(monthLex())
	spokenYear := fst.Invert(d.digitRun())

	year := fst.Concat(fst.Insert(`year: "`), fst.Concat(spokenYear, fst.Concat(fst.Delete("-"), fst.Insert(`" `))))
	month := fst.Concat(fst.Insert(`month: "`), fst.Concat(spokenMonth, fst.Concat(fst.Delete("-"), fst.Insert(`" `))))
	day := fst.Concat(fst.Insert(`day: "`), fst.Concat(spokenDay, fst.Insert(`"`)))

	tagger := fst.Concat(year, fst.Concat(month, day))
	return p.AddTokens(tagger)
}

func (d *Date) Verbalizer(p *grammar.Processor) *fst.Transducer {
	if d.Direction == "tn" {
		return d.verbalizerTN(p)
	}
	return d.verbalizerITN(p)
}

// verbalizerITN matches the post-reorder sequence year, month, day and
// renders "yyyy-mm-dd".
func (d *Date) verbalizerITN(p *grammar.Processor) *fst.Transducer {
	year := fst.Concat(fst.Delete(`year: "`), fst.Concat(p.Sigma, fst.Delete(`"`)))
	month := fst.Concat(fst.Delete(` month: "`), fst.Concat(p.Sigma, fst.Delete(`"`)))
	day := fst.Concat(fst.Delete(` day: "`), fst.Concat(p.Sigma, fst.Delete(`"`)))

	verbalizer := fst.Concat(year, fst.Concat(fst.Insert("-"), fst.Concat(month, fst.Concat(fst.Insert("-"), day))))
	return p.DeleteTokens(verbalizer)
}

// verbalizerTN matches the post-reorder sequence day, month, year
// (spec.md §4.4's en_tn date order) and renders "<day> <month> <year>".
func (d *Date) verbalizerTN(p *grammar.Processor) *fst.Transducer {
	day := fst.Concat(fst.Delete(`day: "`), fst.Concat(p.Sigma, fst.Delete(`"`)))
	month := fst.Concat(fst.Delete(` month: "`), fst.Concat(p.Sigma, fst.Delete(`"`)))
	year := fst.Concat(fst.Delete(` year: "`), fst.Concat(p.Sigma, fst.Delete(`"`)))

	verbalizer := fst.Concat(day, fst.Concat(fst.Insert(" "), fst.Concat(month, fst.Concat(fst.Insert(" "), year))))
	return p.DeleteTokens(verbalizer)
}
