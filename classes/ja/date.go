package ja

import (
	"github.com/czcorpus/tn-wfst/fst"
	"github.com/czcorpus/tn-wfst/grammar"
)

// Date implements the Japanese date class: yyyy年mm月dd日 and its
// reductions, grounded on original_source/itn/japanese/rules/date.py.
// Unlike classes/zh's Date, the year here is read as a single grouped
// cardinal (二千二十四 -> 2024), not digit-by-digit, since ja's Cardinal
// composition already covers four-digit numbers directly.
type Date struct {
	Direction string
}

func NewDate(direction string) *Date { return &Date{Direction: direction} }

func (d *Date) Name() string { return "date" }

func (d *Date) number() *fst.Transducer {
	return (&Cardinal{EnableStandaloneNumber: true}).number()
}

func (d *Date) Tagger(p *grammar.Processor) *fst.Transducer {
	if d.Direction == "tn" {
		return d.taggerTN(p)
	}
	return d.taggerITN(p)
}

func (d *Date) taggerITN(p *grammar.Processor) *fst.Transducer {
	number := d.number()
	year := fst.Concat(fst.Insert(`year: "`), fst.Concat(number, fst.Concat(fst.Delete("年"), fst.Insert(`" `))))
	yearOnly := fst.Concat(fst.Insert(`year: "`), fst.Concat(number, fst.Concat(fst.Delete("年"), fst.Insert(`"`))))
	month := fst.Concat(fst.Insert(`month: "`), fst.Concat(monthLex(), fst.Insert(`"`)))
	day := fst.Concat(fst.Insert(` day: "`), fst.Concat(number, fst.Concat(fst.Delete("日"), fst.Insert(`"`))))

	date := fst.Union(
		fst.Concat(year, fst.Concat(month, day)),
		fst.Union(fst.Concat(year, month), fst.Union(fst.Concat(month, day), yearOnly)),
	)
	return p.AddTokens(date)
}

func (d *Date) taggerTN(p *grammar.Processor) *fst.Transducer {
	spokenYear := fst.Invert(d.number())
	spokenMonth := fst.Concat(fst.Invert(d.number()), fst.Delete("月"))

	year := fst.Concat(fst.Insert(`year: "`), fst.Concat(spokenYear, fst.Concat(fst.Delete("年"), fst.Insert(`" `))))
	yearOnly := fst.Concat(fst.Insert(`year: "`), fst.Concat(spokenYear, fst.Concat(fst.Delete("年"), fst.Insert(`"`))))
	month := fst.Concat(fst.Insert(`month: "`), fst.Concat(spokenMonth, fst.Insert(`"`)))
	day := fst.Concat(fst.Insert(` day: "`), fst.Concat(fst.Invert(d.number()), fst.Concat(fst.Delete("日"), fst.Insert(`"`))))

	date := fst.Union(
		fst.Concat(year, fst.Concat(month, day)),
		fst.Union(fst.Concat(year, month), fst.Union(fst.Concat(month, day), yearOnly)),
	)
	return p.AddTokens(date)
}

// Verbalizer is shared across both directions: tagged field values are
// always bare numerals (digits for ITN, kanji numerals for TN), so
// reconstructing the surface text only means
// re-inserting the 年/月/日 markers the Tagger discarded.
func (d *Date) Verbalizer(p *grammar.Processor) *fst.Transducer {
	year := fst.Concat(fst.Delete(`year: "`), fst.Concat(p.Sigma, fst.Delete(`" `)))
	yearOnly := fst.Concat(fst.Delete(`year: "`), fst.Concat(p.Sigma, fst.Delete(`"`)))
	month := fst.Concat(fst.Delete(`month: "`), fst.Concat(p.Sigma, fst.Delete(`"`)))
	day := fst.Concat(fst.Delete(` day: "`), fst.Concat(p.Sigma, fst.Delete(`"`)))

	yearPart := fst.Concat(year, fst.Insert("年"))
	monthPart := fst.Concat(month, fst.Insert("月"))
	dayPart := fst.Concat(day, fst.Insert("日"))
	yearOnlyPart := fst.Concat(yearOnly, fst.Insert("年"))

	verbalizer := fst.Concat(fst.Ques(yearPart), fst.Concat(monthPart, fst.Ques(dayPart)))
	verbalizer = fst.Union(verbalizer, yearOnlyPart)
	return p.DeleteTokens(verbalizer)
}
