package fst

// CompactArc and CompactState mirror Arc/State but reference labels by
// SymbolTable ID instead of by raw string, so the cache package can
// serialize them compactly with sonic.
type CompactArc struct {
	ILabel int     `json:"i"`
	OLabel int     `json:"o"`
	Weight float64 `json:"w"`
	Next   int     `json:"n"`
}

type CompactState struct {
	Arcs        []CompactArc `json:"arcs"`
	Final       bool         `json:"final,omitempty"`
	FinalWeight float64      `json:"final_weight,omitempty"`
}

// CompactForm is the on-disk representation of a Transducer: a symbol
// table plus a state table referencing it.
type CompactForm struct {
	Symbols map[int]string `json:"symbols"`
	States  []CompactState `json:"states"`
	Start   int            `json:"start"`
}

// ToCompact interns every arc label through st and returns the
// serializable form.
func (t *Transducer) ToCompact(st *SymbolTable) CompactForm {
	cf := CompactForm{States: make([]CompactState, len(t.States)), Start: t.Start}
	for i, s := range t.States {
		cs := CompactState{Final: s.Final, FinalWeight: s.FinalWeight, Arcs: make([]CompactArc, len(s.Arcs))}
		for j, a := range s.Arcs {
			cs.Arcs[j] = CompactArc{
				ILabel: st.Add(a.ILabel),
				OLabel: st.Add(a.OLabel),
				Weight: a.Weight,
				Next:   a.Next,
			}
		}
		cf.States[i] = cs
	}
	cf.Symbols = st.Entries()
	return cf
}

// FromCompact reconstructs a Transducer from its serialized form.
func FromCompact(cf CompactForm) *Transducer {
	st := LoadSymbolTable(cf.Symbols)
	t := &Transducer{Start: cf.Start, States: make([]State, len(cf.States))}
	for i, cs := range cf.States {
		s := State{ID: nextID(), Final: cs.Final, FinalWeight: cs.FinalWeight, Arcs: make([]Arc, len(cs.Arcs))}
		for j, ca := range cs.Arcs {
			s.Arcs[j] = Arc{
				ILabel: st.Get(ca.ILabel),
				OLabel: st.Get(ca.OLabel),
				Weight: ca.Weight,
				Next:   ca.Next,
			}
		}
		t.States[i] = s
	}
	return t
}
