package zh

import (
	"github.com/czcorpus/tn-wfst/classes"
	"github.com/czcorpus/tn-wfst/fst"
	"github.com/czcorpus/tn-wfst/grammar"
)

// Cardinal implements the Chinese cardinal-number class, grounded on
// original_source/itn/chinese/rules/cardinal.py's teen/tens/hundred/
// thousand/ten_thousand composition (the branch weights 0.1/0.5/0.8/1.0
// and special_3number's -100.0 bias are carried over unchanged, per
// DESIGN.md's Open Question decision that these magnitudes are ordinal,
// not physical). Direction selects which tape is read as input: ITN
// parses spoken Chinese numerals into digit strings, TN reads digit
// strings back into spoken numerals by inverting the same composition
// (per spec.md §4.1's invert(A) contract).
type Cardinal struct {
	EnableStandaloneNumber bool
	Enable0To9             bool
	EnableMillion          bool
	Direction              string
}

func NewCardinal(direction string, opts classes.Options) *Cardinal {
	return &Cardinal{
		EnableStandaloneNumber: opts.EnableStandaloneNumber,
		Enable0To9:             opts.Enable0To9,
		EnableMillion:          opts.EnableMillion,
		Direction:              direction,
	}
}

func (c *Cardinal) Name() string { return "cardinal" }

func (c *Cardinal) number() *fst.Transducer {
	zero := zeroLex()
	digit := digitLex()
	sign := signLex()
	dot := dotLex()

	addzero := fst.Insert("0")
	digits := fst.Union(zero, digit)

	// 十一 => 11, 十二 => 12
	teen := fst.Concat(fst.Cross("十", "1"), fst.Union(digit, fst.AddWeight(addzero, 0.1)))
	// 一十一 => 11, 二十一 => 21, 三十 => 30
	tens := fst.Concat(digit, fst.Concat(fst.Delete("十"), fst.Union(digit, fst.AddWeight(addzero, 0.1))))
	// 一百一十 => 110, 一百零一 => 101, 一百一 => 110, 一百 => 100
	hundred := fst.Concat(digit, fst.Concat(fst.Delete("百"), fst.Union(tens,
		fst.Union(teen,
			fst.Union(fst.AddWeight(fst.Concat(zero, digit), 0.1),
				fst.Union(fst.AddWeight(fst.Concat(digit, addzero), 0.5),
					fst.AddWeight(fst.Repeat(addzero, 2), 1.0)))))))
	// 一千一百一十一 => 1111 ... 一千 => 1000
	thousandHead := fst.Union(hundred, fst.Union(teen, fst.Union(tens, digits)))
	thousand := fst.Concat(thousandHead, fst.Concat(fst.Delete("千"), fst.Union(hundred,
		fst.Union(fst.AddWeight(fst.Concat(zero, fst.Union(tens, teen)), 0.1),
			fst.Union(fst.AddWeight(fst.Concat(addzero, fst.Concat(zero, digit)), 0.5),
				fst.Union(fst.AddWeight(fst.Concat(digit, fst.Repeat(addzero, 2)), 0.8),
					fst.AddWeight(fst.Repeat(addzero, 3), 1.0)))))))

	number := fst.Union(digits, fst.Union(teen, fst.Union(tens, fst.Union(hundred, thousand))))

	if c.EnableMillion {
		// ten_thousand: 万 (gated by enable_million, per spec.md §6/§8's
		// "一千两百万" -> "12000000" scenario)
		tenThousandHead := fst.Union(thousand, fst.Union(hundred, fst.Union(teen, fst.Union(tens, digits))))
		tenThousand := fst.Concat(tenThousandHead, fst.Concat(fst.Delete("万"), fst.Union(thousand,
			fst.Union(fst.AddWeight(fst.Concat(zero, hundred), 0.1),
				fst.Union(fst.AddWeight(fst.Concat(addzero, fst.Concat(zero, fst.Union(tens, teen))), 0.5),
					fst.Union(fst.AddWeight(fst.Concat(fst.Repeat(addzero, 2), fst.Concat(zero, digit)), 0.5),
						fst.Union(fst.AddWeight(fst.Concat(digit, fst.Repeat(addzero, 3)), 0.8),
							fst.AddWeight(fst.Repeat(addzero, 4), 1.0))))))))
		number = fst.Union(number, tenThousand)
	}

	// 负的xxx and decimal tail
	number = fst.Concat(fst.Ques(sign), fst.Concat(number, fst.Ques(fst.Concat(dot, fst.Plus(digits)))))

	// 五六万，三五千，六七百，三四十
	special2 := fst.Concat(digit, fst.Concat(fst.Insert("0~"), fst.Concat(digit, fst.Cross("十", "0"))))
	special2 = fst.Union(special2, fst.Concat(digit, fst.Concat(fst.Insert("00~"), fst.Concat(digit, fst.Cross("百", "00")))))
	special2 = fst.Union(special2, fst.Concat(digit, fst.Concat(fst.Insert("000~"), fst.Concat(digit, fst.Cross("千", "000")))))
	if c.EnableMillion {
		special2 = fst.Union(special2, fst.Concat(digit, fst.Concat(fst.Insert("0000~"), fst.Concat(digit, fst.Cross("万", "0000")))))
	}
	number = fst.Union(number, special2)

	// 十七八美元 => 17~18, 四十五六岁 => 45-6, 三百七八 => 370-80
	special3 := fst.Concat(fst.Cross("十", "1"), fst.Concat(digit, fst.Concat(fst.Insert("~1"), digit)))
	special3 = fst.Union(special3, fst.Concat(digit, fst.Concat(fst.Delete("十"), fst.Concat(digit, fst.Concat(fst.Insert("-"), digit)))))
	special3 = fst.Union(special3, fst.Concat(digit, fst.Concat(fst.Delete("百"), fst.Concat(digit, fst.Concat(fst.Insert("0-"), fst.Concat(digit,
		fst.Union(fst.Insert("0"), fst.AddWeight(fst.Cross("十", "0"), -0.1))))))))
	number = fst.Union(number, fst.AddWeight(special3, -100.0))

	return fst.Optimize(number)
}

func (c *Cardinal) Tagger(p *grammar.Processor) *fst.Transducer {
	if c.Direction == "tn" {
		return c.taggerTN(p)
	}
	return c.taggerITN(p)
}

// taggerITN consumes spoken Chinese numerals and emits their digit
// reading, e.g. 二十三 -> cardinal { value: "23" }.
func (c *Cardinal) taggerITN(p *grammar.Processor) *fst.Transducer {
	digit := digitLex()
	zero := zeroLex()
	digits := fst.Union(zero, digit)
	number := c.number()

	// IP/ID-style dotted strings: 127.0.0.1
	cardinal := fst.Concat(fst.Plus(digit), fst.Plus(fst.Concat(dotLex(), fst.Plus(digits))))
	// float number like 1.11
	cardinal = fst.Union(cardinal, fst.Concat(number, fst.Concat(dotLex(), fst.Plus(digits))))
	// fixed-length digit runs: phone/zip-like strings
	cardinal = fst.Union(cardinal, fst.Union(fst.Repeat(digits, 3), fst.Union(fst.Repeat(digits, 5), fst.Repeat(digits, 11))))
	if c.EnableStandaloneNumber {
		cardinal = fst.Union(cardinal, number)
	}

	tagger := fst.Concat(fst.Insert(`value: "`), fst.Concat(cardinal,
		fst.Concat(fst.Star(fst.Concat(fst.Insert(" "), cardinal)), fst.Insert(`"`))))
	return p.AddTokens(tagger)
}

// taggerTN consumes a digit string and emits its spoken Chinese numeral
// reading, by inverting the same composition taggerITN reads characters
// through (spec.md §4.1: invert(A) swaps input and output tapes).
func (c *Cardinal) taggerTN(p *grammar.Processor) *fst.Transducer {
	spoken := fst.Invert(c.number())
	tagger := fst.Concat(fst.Insert(`value: "`), fst.Concat(spoken, fst.Insert(`"`)))
	return p.AddTokens(tagger)
}

func (c *Cardinal) Verbalizer(p *grammar.Processor) *fst.Transducer {
	return p.DefaultVerbalizer()
}
