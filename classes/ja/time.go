package ja

import (
	"github.com/czcorpus/tn-wfst/fst"
	"github.com/czcorpus/tn-wfst/grammar"
)

// Time implements the Japanese hour:minute class (三時二十分 <-> 3:20),
// grounded on original_source/itn/japanese/rules/time.py. Seconds and
// the 午前/午後 noon marker are out of scope for now (see DESIGN.md).
type Time struct {
	Direction string
}

func NewTime(direction string) *Time { return &Time{Direction: direction} }

func (t *Time) Name() string { return "time" }

func (t *Time) number() *fst.Transducer {
	return (&Cardinal{EnableStandaloneNumber: true}).number()
}

func (t *Time) Tagger(p *grammar.Processor) *fst.Transducer {
	if t.Direction == "tn" {
		return t.taggerTN(p)
	}
	return t.taggerITN(p)
}

func (t *Time) taggerITN(p *grammar.Processor) *fst.Transducer {
	number := t.number()
	hour := fst.Concat(fst.Insert(`hour: "`), fst.Concat(number, fst.Concat(fst.Delete("時"), fst.Insert(`" `))))
	minute := fst.Concat(fst.Insert(`minute: "`), fst.Concat(number, fst.Concat(fst.Delete("分"), fst.Insert(`"`))))
	return p.AddTokens(fst.Concat(hour, minute))
}

func (t *Time) taggerTN(p *grammar.Processor) *fst.Transducer {
	spoken := fst.Invert(t.number())
	hour := fst.Concat(fst.Insert(`hour: "`), fst.Concat(spoken, fst.Concat(fst.Delete(":"), fst.Insert(`" `))))
	minute := fst.Concat(fst.Insert(`minute: "`), fst.Concat(spoken, fst.Insert(`"`)))
	return p.AddTokens(fst.Concat(hour, minute))
}

func (t *Time) Verbalizer(p *grammar.Processor) *fst.Transducer {
	if t.Direction == "tn" {
		return t.verbalizerTN(p)
	}
	return t.verbalizerITN(p)
}

func (t *Time) verbalizerITN(p *grammar.Processor) *fst.Transducer {
	hour := fst.Concat(fst.Delete(`hour: "`), fst.Concat(p.Sigma, fst.Delete(`" `)))
	minute := fst.Concat(fst.Delete(`minute: "`), fst.Concat(p.Sigma, fst.Delete(`"`)))
	verbalizer := fst.Concat(hour, fst.Concat(fst.Insert(":"), minute))
	return p.DeleteTokens(verbalizer)
}

func (t *Time) verbalizerTN(p *grammar.Processor) *fst.Transducer {
	hour := fst.Concat(fst.Delete(`hour: "`), fst.Concat(p.Sigma, fst.Delete(`" `)))
	minute := fst.Concat(fst.Delete(`minute: "`), fst.Concat(p.Sigma, fst.Delete(`"`)))
	verbalizer := fst.Concat(hour, fst.Concat(fst.Insert("時"), fst.Concat(minute, fst.Insert("分"))))
	return p.DeleteTokens(verbalizer)
}
