package ja

import (
	"github.com/czcorpus/tn-wfst/fst"
	"github.com/czcorpus/tn-wfst/grammar"
)

// Cardinal implements the Japanese cardinal-number class, grounded on
// original_source/itn/japanese/rules/cardinal.py's digit/teen/tens/
// hundred/thousand/ten_thousand composition. hundred_thousand, million,
// ten_million and the 兆/億 big_integer branch are dropped for scope,
// mirroring the same 兆/亿 reduction made in classes/zh's Cardinal.
type Cardinal struct {
	EnableStandaloneNumber bool
	Direction              string
}

func NewCardinal(direction string) *Cardinal {
	return &Cardinal{EnableStandaloneNumber: true, Direction: direction}
}

func (c *Cardinal) Name() string { return "cardinal" }

func (c *Cardinal) number() *fst.Transducer {
	zero := zeroLex()
	digit := digitLex()
	sign := signLex()
	dot := dotLex()

	addzero := fst.Insert("0")
	digits := fst.Union(zero, digit)

	// 十, 十一, 十九 => 10, 11, 19
	teen := fst.Concat(fst.Cross("十", "1"), fst.Union(digit, addzero))
	// 三十, 三十一, 九十 => 30, 31, 90
	tens := fst.Concat(digit, fst.Concat(fst.Delete("十"), fst.Union(digit, addzero)))

	// 三百二, 三百 => 302, 300
	hundred := fst.Concat(digit, fst.Concat(fst.Delete("百"), fst.Union(tens,
		fst.Union(teen, fst.Union(fst.Concat(addzero, digits), fst.Repeat(addzero, 2))))))
	// 百, 百十, 百二十三 => 100, 110, 123
	hundred = fst.Union(hundred, fst.Concat(fst.Cross("百", "1"), fst.Union(tens,
		fst.Union(teen, fst.Union(fst.Concat(addzero, digits), fst.Repeat(addzero, 2))))))

	// 二千百, 二千三百, 九千二十三 => 2100, 2300, 9023
	thousandHead := fst.Union(hundred, fst.Union(teen, fst.Union(tens, digits)))
	thousand := fst.Concat(thousandHead, fst.Concat(fst.Delete("千"), fst.Union(hundred,
		fst.Union(fst.Concat(addzero, tens),
			fst.Union(fst.Concat(addzero, teen),
				fst.Union(fst.Concat(fst.Repeat(addzero, 2), digits), fst.Repeat(addzero, 3)))))))
	// 千百, 千三百, 千二十三 => 1100, 1300, 1023
	thousand = fst.Union(thousand, fst.Concat(fst.Cross("千", "1"), fst.Union(hundred,
		fst.Union(fst.Concat(addzero, tens),
			fst.Union(fst.Concat(addzero, teen),
				fst.Union(fst.Concat(fst.Repeat(addzero, 2), digits), fst.Repeat(addzero, 3)))))))

	// 一万, 二万二千三百 => 10000, 22300
	tenThousandHead := fst.Union(thousand, fst.Union(hundred, fst.Union(teen, fst.Union(tens, digits))))
	tenThousand := fst.Concat(tenThousandHead, fst.Concat(fst.Delete("万"), fst.Union(thousand,
		fst.Union(fst.Concat(addzero, hundred),
			fst.Union(fst.Concat(fst.Repeat(addzero, 2), tens),
				fst.Union(fst.Concat(fst.Repeat(addzero, 2), teen),
					fst.Union(fst.Concat(fst.Repeat(addzero, 3), digits), fst.Repeat(addzero, 4))))))))

	tenThousandMinus := fst.Union(digits, fst.Union(teen, fst.Union(tens, fst.Union(hundred, thousand))))
	number := fst.Union(tenThousandMinus, tenThousand)
	number = fst.Concat(fst.Ques(sign), number)
	decimal := fst.Concat(fst.Ques(sign), fst.Concat(number, fst.Concat(dot, fst.Plus(digits))))
	number = fst.Union(number, decimal)

	return fst.Optimize(number)
}

func (c *Cardinal) Tagger(p *grammar.Processor) *fst.Transducer {
	if c.Direction == "tn" {
		return c.taggerTN(p)
	}
	return c.taggerITN(p)
}

func (c *Cardinal) taggerITN(p *grammar.Processor) *fst.Transducer {
	number := c.number()
	cardinal := number
	if c.EnableStandaloneNumber {
		cardinal = fst.Union(cardinal, number)
	}
	tagger := fst.Concat(fst.Insert(`value: "`), fst.Concat(cardinal, fst.Insert(`"`)))
	return p.AddTokens(tagger)
}

// taggerTN reads a digit string and emits its spoken Japanese numeral
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
