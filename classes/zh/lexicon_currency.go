package zh

import "github.com/czcorpus/tn-wfst/fst"

// fenDigit reads a spoken digit followed by the jiao unit 毛/角 and
// keeps only the digit, grounded on money.py's "毛"/"角" deletes; the 分
// (fen) digit is not read here.
func fenDigit() *fst.Transducer {
	digit := digitLex()
	return fst.Concat(digit, fst.Union(fst.Delete("毛"), fst.Delete("角")))
}
