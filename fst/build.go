package fst

// Accept builds a linear acceptor for s: the identity transducer whose
// input and output tapes both equal s.
func Accept(s string) *Transducer {
	return chain(s, s)
}

// Cross builds the transducer that maps input string a to output string
// b, consuming a on the input tape and emitting b on the output tape.
func Cross(a, b string) *Transducer {
	return Concat(Delete(a), Insert(b))
}

// Insert builds a transducer that consumes nothing and emits s.
func Insert(s string) *Transducer {
	return chain("", s)
}

// Delete builds a transducer that consumes s and emits nothing.
func Delete(s string) *Transducer {
	return chain(s, "")
}

// chain builds a linear transducer that pairs the i-th rune of `in` with
// the i-th rune of `out` on one arc each; the shorter side is padded with
// epsilon, so every arc label holds at most one rune and Compose can
// match labels rune by rune.
func chain(in, out string) *Transducer {
	t := &Transducer{Start: -1}
	s0 := t.addState()
	t.Start = s0

	runesIn, runesOut := splitRunes(in), splitRunes(out)
	n := len(runesIn)
	if len(runesOut) > n {
		n = len(runesOut)
	}
	if n == 0 {
		// The empty-empty identity: single epsilon:epsilon arc.
		s1 := t.addState()
		t.addArc(s0, Arc{ILabel: "", OLabel: "", Weight: 0, Next: s1})
		t.States[s1].Final = true
		return t
	}
	cur := s0
	for i := 0; i < n; i++ {
		il, ol := "", ""
		if i < len(runesIn) {
			il = runesIn[i]
		}
		if i < len(runesOut) {
			ol = runesOut[i]
		}
		next := t.addState()
		t.addArc(cur, Arc{ILabel: il, OLabel: ol, Weight: 0, Next: next})
		cur = next
	}
	t.States[cur].Final = true
	return t
}

func splitRunes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// Union builds a transducer accepting every path accepted by either
// operand.
func Union(a, b *Transducer) *Transducer {
	if a.IsEmpty() {
		return b.Clone()
	}
	if b.IsEmpty() {
		return a.Clone()
	}
	out := &Transducer{Start: -1}
	ca, _ := a.clone()
	cb, _ := b.clone()
	offset := len(ca.States)
	out.States = append(out.States, ca.States...)
	for _, s := range cb.States {
		ns := s
		ns.Arcs = make([]Arc, len(s.Arcs))
		for i, arc := range s.Arcs {
			na := arc
			na.Next += offset
			ns.Arcs[i] = na
		}
		out.States = append(out.States, ns)
	}
	start := out.addState()
	out.Start = start
	out.addArc(start, Arc{Next: ca.Start})
	out.addArc(start, Arc{Next: cb.Start + offset})
	return out
}

// Concat builds a transducer accepting every path that is a's path
// followed by b's path.
func Concat(a, b *Transducer) *Transducer {
	if a.IsEmpty() || b.IsEmpty() {
		return Empty()
	}
	out := &Transducer{Start: -1}
	ca, _ := a.clone()
	cb, _ := b.clone()
	offset := len(ca.States)
	out.States = append(out.States, ca.States...)
	for _, s := range cb.States {
		ns := s
		ns.Arcs = make([]Arc, len(s.Arcs))
		for i, arc := range s.Arcs {
			na := arc
			na.Next += offset
			ns.Arcs[i] = na
		}
		out.States = append(out.States, ns)
	}
	out.Start = ca.Start
	for i, s := range ca.States {
		if s.Final {
			out.States[i].Final = false
			out.addArc(i, Arc{Weight: s.FinalWeight, Next: cb.Start + offset})
		}
	}
	return out
}

// Star builds the Kleene closure of a: zero or more repetitions.
func Star(a *Transducer) *Transducer {
	if a.IsEmpty() {
		t := &Transducer{Start: -1}
		s := t.addState()
		t.Start = s
		t.States[s].Final = true
		return t
	}
	out := &Transducer{Start: -1}
	ca, _ := a.clone()
	out.States = append(out.States, ca.States...)
	hub := out.addState()
	out.Start = hub
	out.States[hub].Final = true
	out.addArc(hub, Arc{Next: ca.Start})
	for i, s := range ca.States {
		if s.Final {
			out.States[i].Final = false
			out.addArc(i, Arc{Weight: s.FinalWeight, Next: hub})
		}
	}
	return out
}

// Plus builds one or more repetitions of a.
func Plus(a *Transducer) *Transducer {
	return Concat(a, Star(a))
}

// Repeat builds exactly n concatenated repetitions of a (Pynini's a**n).
func Repeat(a *Transducer, n int) *Transducer {
	if n <= 0 {
		return Accept("")
	}
	out := a.Clone()
	for i := 1; i < n; i++ {
		out = Concat(out, a)
	}
	return out
}

// Ques builds zero or one repetitions of a.
func Ques(a *Transducer) *Transducer {
	return Union(a, Accept(""))
}

// AddWeight returns a copy of a with w added to every final state's
// FinalWeight. Used to bias ShortestPath among overlapping class
// grammars (spec's per-class tagger weight).
func AddWeight(a *Transducer, w float64) *Transducer {
	out := a.Clone()
	for i, s := range out.States {
		if s.Final {
			out.States[i].FinalWeight += w
		}
	}
	return out
}

// Invert swaps the input and output tapes.
func Invert(a *Transducer) *Transducer {
	out := a.Clone()
	for i, s := range out.States {
		for j, arc := range s.Arcs {
			out.States[i].Arcs[j].ILabel, out.States[i].Arcs[j].OLabel = arc.OLabel, arc.ILabel
		}
	}
	return out
}

// Side selects which tape Project copies onto both tapes.
type Side int

const (
	InputSide Side = iota
	OutputSide
)

// Project collapses a transducer into an acceptor by copying one tape
// onto the other.
func Project(a *Transducer, side Side) *Transducer {
	out := a.Clone()
	for i, s := range out.States {
		for j, arc := range s.Arcs {
			if side == InputSide {
				out.States[i].Arcs[j].OLabel = arc.ILabel
			} else {
				out.States[i].Arcs[j].ILabel = arc.OLabel
			}
		}
	}
	return out
}
