package fst

// Character classes, grounded on spec.md §4.1's ALPHA/DIGIT/PUNCT/SPACE/
// VCHAR/NOT_QUOTE/NOT_SPACE/TO_LOWER/TO_UPPER/LOWER/UPPER contract and on
// the Processor character-class fields in original_source/processors/processor.py.

func unionAll(ts ...*Transducer) *Transducer {
	out := Empty()
	for _, t := range ts {
		out = Union(out, t)
	}
	return out
}

func acceptRange(lo, hi rune) *Transducer {
	out := Empty()
	for r := lo; r <= hi; r++ {
		out = Union(out, Accept(string(r)))
	}
	return out
}

// DIGIT accepts a single ASCII digit.
func DIGIT() *Transducer { return acceptRange('0', '9') }

// LOWER accepts a single lowercase ASCII letter.
func LOWER() *Transducer { return acceptRange('a', 'z') }

// UPPER accepts a single uppercase ASCII letter.
func UPPER() *Transducer { return acceptRange('A', 'Z') }

// ALPHA accepts a single ASCII letter of either case.
func ALPHA() *Transducer { return Union(LOWER(), UPPER()) }

// PUNCT accepts a single common ASCII punctuation character.
func PUNCT() *Transducer {
	out := Empty()
	for _, r := range "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~" {
		out = Union(out, Accept(string(r)))
	}
	return out
}

// SPACE accepts a single ASCII space or tab.
func SPACE() *Transducer { return Union(Accept(" "), Accept("\t")) }

// VCHAR accepts any single printable visible character: letters, digits,
// punctuation, Hiragana/Katakana, fullwidth forms, or a CJK ideograph.
// The CJK range is intentionally left whole (Unicode has no smaller
// subrange that would still cover real Chinese-number and Chinese-date
// text); callers composing with VCHAR should expect a wide acceptor.
func VCHAR() *Transducer {
	return unionAll(
		ALPHA(), DIGIT(), PUNCT(),
		acceptRange(0x4E00, 0x9FFF), // CJK Unified Ideographs
		acceptRange(0x3040, 0x309F), // Hiragana
		acceptRange(0x30A0, 0x30FF), // Katakana
		acceptRange(0xFF00, 0xFFEF), // fullwidth forms
	)
}

// NOT_QUOTE accepts any VCHAR other than the double quote, used by the
// tagged-token value grammar to bound an unescaped value run.
func NOT_QUOTE() *Transducer {
	return Difference(VCHAR(), Accept("\""))
}

// NOT_SPACE accepts any VCHAR that is not a space.
func NOT_SPACE() *Transducer {
	return Difference(VCHAR(), SPACE())
}

// TO_LOWER maps each uppercase ASCII letter to its lowercase counterpart.
func TO_LOWER() *Transducer {
	out := Empty()
	for r := 'A'; r <= 'Z'; r++ {
		out = Union(out, Cross(string(r), string(r+('a'-'A'))))
	}
	return out
}

// TO_UPPER maps each lowercase ASCII letter to its uppercase counterpart.
func TO_UPPER() *Transducer {
	out := Empty()
	for r := 'a'; r <= 'z'; r++ {
		out = Union(out, Cross(string(r), string(r-('a'-'A'))))
	}
	return out
}

// DeleteSpace deletes exactly one run of one-or-more ASCII spaces; tabs
// are not deleted.
func DeleteSpace() *Transducer {
	return Plus(Delete(" "))
}

// DeleteExtraSpace collapses any run of two-or-more spaces down to a
// single space, leaving a lone space untouched.
func DeleteExtraSpace() *Transducer {
	return Concat(Delete(" "), Concat(Star(Delete(" ")), Insert(" ")))
}

// DeleteZeroOrOneSpace optionally deletes a single space.
func DeleteZeroOrOneSpace() *Transducer {
	return Ques(Delete(" "))
}

// InsertSpace emits a single space without consuming input.
func InsertSpace() *Transducer {
	return Insert(" ")
}
