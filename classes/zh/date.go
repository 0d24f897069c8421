package zh

import (
	"github.com/czcorpus/tn-wfst/fst"
	"github.com/czcorpus/tn-wfst/grammar"
)

// Date implements the Chinese date class: yyyy/mm/dd | yyyy/mm | mm/dd |
// yyyy-only, grounded on original_source/itn/chinese/rules/date.py. Both
// directions keep the 年/月/日 markers in the surface text (spec.md §8's
// "2023年11月28日" ITN output, "2008年8月8日" TN input, both read
// marker-for-marker); only the numeral between the markers changes
// script. Direction "tn" inverts year()/day() and reads the month through
// monthNumber() to turn a digit date back into its spoken Chinese reading.
type Date struct {
	Direction string
}

func NewDate(direction string) *Date { return &Date{Direction: direction} }

func (d *Date) Name() string { return "date" }

func (d *Date) year() *fst.Transducer {
	digit := digitLex()
	zero := zeroLex()
	digitOrZero := fst.Union(digit, zero)
	yyyy := fst.Concat(digit, fst.Repeat(digitOrZero, 3))
	yyy := fst.Concat(digit, fst.Repeat(digitOrZero, 2))
	yy := fst.Repeat(digitOrZero, 2)
	return fst.Union(yyyy, fst.Union(yyy, yy))
}

func (d *Date) day() *fst.Transducer {
	digit := digitLex()
	zero := zeroLex()
	digitOrZero := fst.Union(digit, zero)
	tens := fst.Concat(digit, fst.Concat(fst.Delete("十"), fst.Union(digitOrZero, fst.Insert("0"))))
	teen := fst.Concat(fst.Cross("十", "1"), fst.Union(digitOrZero, fst.Insert("0")))
	return fst.Union(digitOrZero, fst.Union(tens, teen))
}

// monthNumber maps bare arabic "1".."12" to its bare spoken-Chinese
// reading (no 月 marker either side), used by taggerTN to read the month
// separately from monthLex()'s marker-carrying entries.
func monthNumber() *fst.Transducer {
	pairs := [][2]string{
		{"1", "一"}, {"2", "二"}, {"3", "三"}, {"4", "四"}, {"5", "五"}, {"6", "六"},
		{"7", "七"}, {"8", "八"}, {"9", "九"}, {"10", "十"}, {"11", "十一"}, {"12", "十二"},
	}
	t := fst.Cross(pairs[0][0], pairs[0][1])
	for _, p := range pairs[1:] {
		t = fst.Union(t, fst.Cross(p[0], p[1]))
	}
	return t
}

func (d *Date) Tagger(p *grammar.Processor) *fst.Transducer {
	if d.Direction == "tn" {
		return d.taggerTN(p)
	}
	return d.taggerITN(p)
}

func (d *Date) taggerITN(p *grammar.Processor) *fst.Transducer {
	year := fst.Concat(fst.Insert(`year: "`), fst.Concat(d.year(), fst.Concat(fst.Delete("年"), fst.Insert(`" `))))
	yearOnly := fst.Concat(fst.Insert(`year: "`), fst.Concat(d.year(), fst.Concat(fst.Delete("年"), fst.Insert(`"`))))
	month := fst.Concat(fst.Insert(`month: "`), fst.Concat(monthLex(), fst.Insert(`"`)))
	day := fst.Concat(fst.Insert(` day: "`), fst.Concat(d.day(), fst.Concat(fst.Delete("日"), fst.Insert(`"`))))

	date := fst.Union(
		fst.Concat(year, fst.Concat(month, day)),
		fst.Union(fst.Concat(year, month), fst.Union(fst.Concat(month, day), yearOnly)),
	)
	return p.AddTokens(date)
}

// taggerTN reads an arabic-digit date and emits the same markup shape as
// taggerITN (pure numeral inside each field's quotes, marker discarded
// during tagging and re-inserted by Verbalizer), but parses the digit
// tape via the inverted compositions.
func (d *Date) taggerTN(p *grammar.Processor) *fst.Transducer {
	spokenYear := fst.Invert(d.year())
	spokenMonth := monthNumber()
	spokenDay := fst.Invert(d.day())

	year := fst.Concat(fst.Insert(`year: "`), fst.Concat(spokenYear, fst.Concat(fst.Delete("年"), fst.Insert(`" `))))
	yearOnly := fst.Concat(fst.Insert(`year: "`), fst.Concat(spokenYear, fst.Concat(fst.Delete("年"), fst.Insert(`"`))))
	month := fst.Concat(fst.Insert(`month: "`), fst.Concat(spokenMonth, fst.Concat(fst.Delete("月"), fst.Insert(`"`))))
	day := fst.Concat(fst.Insert(` day: "`), fst.Concat(spokenDay, fst.Concat(fst.Delete("日"), fst.Insert(`"`))))

	date := fst.Union(
		fst.Concat(year, fst.Concat(month, day)),
		fst.Union(fst.Concat(year, month), fst.Union(fst.Concat(month, day), yearOnly)),
	)
	return p.AddTokens(date)
}

// Verbalizer is the same shape for both directions: the tagged field
// values are always pure numerals (digit for ITN, spoken Chinese for
// TN), so reconstructing the surface text is just re-inserting the
// 年/月/日 markers the Tagger discarded.
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
