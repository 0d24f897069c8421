package fst

// Optimize trims unreachable and dead states and collapses chains of
// bare epsilon states. It is not a full weighted minimization (tropical
// WFST minimization is only well-behaved for functional transducers);
// what it guarantees is an equivalent, generally smaller machine.
func Optimize(a *Transducer) *Transducer {
	return collapseEpsilonChains(trim(a))
}

// trim removes states unreachable from Start and states that cannot
// reach any final state.
func trim(a *Transducer) *Transducer {
	if a.IsEmpty() {
		return Empty()
	}
	n := len(a.States)
	reachable := make([]bool, n)
	var walkFwd func(int)
	walkFwd = func(s int) {
		if reachable[s] {
			return
		}
		reachable[s] = true
		for _, arc := range a.States[s].Arcs {
			walkFwd(arc.Next)
		}
	}
	walkFwd(a.Start)

	rev := make([][]int, n)
	for s := range a.States {
		for _, arc := range a.States[s].Arcs {
			rev[arc.Next] = append(rev[arc.Next], s)
		}
	}
	live := make([]bool, n)
	var walkBwd func(int)
	walkBwd = func(s int) {
		if live[s] {
			return
		}
		live[s] = true
		for _, p := range rev[s] {
			walkBwd(p)
		}
	}
	for s, st := range a.States {
		if st.Final {
			walkBwd(s)
		}
	}

	keep := make([]bool, n)
	remap := make(map[int]int)
	out := &Transducer{Start: -1}
	for s := 0; s < n; s++ {
		keep[s] = reachable[s] && live[s]
		if keep[s] {
			ns := out.addState()
			out.States[ns].ID = a.States[s].ID
			out.States[ns].Final = a.States[s].Final
			out.States[ns].FinalWeight = a.States[s].FinalWeight
			remap[s] = ns
		}
	}
	if !keep[a.Start] {
		return Empty()
	}
	out.Start = remap[a.Start]
	for s := 0; s < n; s++ {
		if !keep[s] {
			continue
		}
		for _, arc := range a.States[s].Arcs {
			if !keep[arc.Next] {
				continue
			}
			na := arc
			na.Next = remap[arc.Next]
			out.addArc(remap[s], na)
		}
	}
	return out
}

// collapseEpsilonChains merges a state into its predecessor when the
// state has exactly one incoming arc, that arc is an epsilon:epsilon
// weight-0 move, and the state is not itself final.
func collapseEpsilonChains(a *Transducer) *Transducer {
	if a.IsEmpty() {
		return a
	}
	changed := true
	cur := a
	for changed {
		changed = false
		n := len(cur.States)
		indeg := make([]int, n)
		for s := range cur.States {
			for _, arc := range cur.States[s].Arcs {
				indeg[arc.Next]++
			}
		}
		for s := 0; s < n && !changed; s++ {
			if s == cur.Start {
				continue
			}
			if indeg[s] != 1 || cur.States[s].Final {
				continue
			}
			// find the unique predecessor arc into s that is a pure epsilon move.
			var predState, predArcIdx int = -1, -1
			for ps := 0; ps < n; ps++ {
				for ai, arc := range cur.States[ps].Arcs {
					if arc.Next == s {
						predState, predArcIdx = ps, ai
					}
				}
			}
			if predState < 0 {
				continue
			}
			pa := cur.States[predState].Arcs[predArcIdx]
			if pa.ILabel != "" || pa.OLabel != "" || pa.Weight != 0 {
				continue
			}
			// Splice: redirect predecessor arc to each of s's own arcs.
			next := cur.Clone()
			next.States[predState].Arcs = append(
				next.States[predState].Arcs[:predArcIdx:predArcIdx],
				next.States[predState].Arcs[predArcIdx+1:]...,
			)
			for _, arc := range cur.States[s].Arcs {
				next.addArc(predState, arc)
			}
			changed = true
			cur = trim(next)
		}
	}
	return cur
}

// removeEpsilon returns an acceptor-equivalent machine with no
// ILabel=="" && OLabel=="" arcs, by epsilon-closure over such arcs.
func removeEpsilon(a *Transducer) *Transducer {
	if a.IsEmpty() {
		return a
	}
	n := len(a.States)
	closure := make([][]int, n)
	for s := 0; s < n; s++ {
		visited := map[int]bool{s: true}
		queue := []int{s}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, arc := range a.States[cur].Arcs {
				if arc.ILabel == "" && arc.OLabel == "" && !visited[arc.Next] {
					visited[arc.Next] = true
					queue = append(queue, arc.Next)
				}
			}
		}
		for v := range visited {
			closure[s] = append(closure[s], v)
		}
	}
	out := &Transducer{Start: -1}
	for range a.States {
		out.addState()
	}
	out.Start = a.Start
	minFinal := make([]float64, n)
	for i := range minFinal {
		minFinal[i] = Infinity
	}
	for s := 0; s < n; s++ {
		for _, cs := range closure[s] {
			if a.States[cs].Final && a.States[cs].FinalWeight < minFinal[s] {
				minFinal[s] = a.States[cs].FinalWeight
				out.States[s].Final = true
			}
			for _, arc := range a.States[cs].Arcs {
				if arc.ILabel == "" && arc.OLabel == "" {
					continue
				}
				out.addArc(s, arc)
			}
		}
	}
	for s := 0; s < n; s++ {
		if out.States[s].Final {
			out.States[s].FinalWeight = minFinal[s]
		}
	}
	return trim(out)
}

// determinizeAcceptor runs subset construction over an epsilon-free
// acceptor (ILabel == OLabel on every arc). Weights are resolved by
// keeping the minimum weight among merged arcs with the same label.
func determinizeAcceptor(a *Transducer) *Transducer {
	a = removeEpsilon(Project(a, InputSide))
	if a.IsEmpty() {
		return a
	}
	type stateSet = string
	key := func(ss []int) stateSet {
		b := make([]byte, 0, len(ss)*4)
		seen := make(map[int]bool, len(ss))
		for _, s := range ss {
			if seen[s] {
				continue
			}
			seen[s] = true
		}
		ids := make([]int, 0, len(seen))
		for s := range seen {
			ids = append(ids, s)
		}
		sortInts(ids)
		for _, s := range ids {
			b = append(b, byte(s), byte(s>>8), byte(s>>16), byte(s>>24))
		}
		return string(b)
	}

	out := &Transducer{Start: -1}
	setIndex := make(map[stateSet]int)
	getSet := func(ss []int) int {
		k := key(ss)
		if idx, ok := setIndex[k]; ok {
			return idx
		}
		idx := out.addState()
		setIndex[k] = idx
		finalW := Infinity
		isFinal := false
		for _, s := range ss {
			if a.States[s].Final {
				isFinal = true
				if a.States[s].FinalWeight < finalW {
					finalW = a.States[s].FinalWeight
				}
			}
		}
		out.States[idx].Final = isFinal
		if isFinal {
			out.States[idx].FinalWeight = finalW
		}
		return idx
	}

	startSet := []int{a.Start}
	out.Start = getSet(startSet)
	queue := [][]int{startSet}
	processed := map[stateSet]bool{key(startSet): true}

	for len(queue) > 0 {
		ss := queue[0]
		queue = queue[1:]
		from := setIndex[key(ss)]

		byLabel := make(map[string][]int)
		weight := make(map[string]float64)
		for _, s := range ss {
			for _, arc := range a.States[s].Arcs {
				byLabel[arc.ILabel] = append(byLabel[arc.ILabel], arc.Next)
				if w, ok := weight[arc.ILabel]; !ok || arc.Weight < w {
					weight[arc.ILabel] = arc.Weight
				}
			}
		}
		for label, nexts := range byLabel {
			to := getSet(nexts)
			out.addArc(from, Arc{ILabel: label, OLabel: label, Weight: weight[label], Next: to})
			k := key(nexts)
			if !processed[k] {
				processed[k] = true
				queue = append(queue, nexts)
			}
		}
	}
	return out
}

func sortInts(a []int) {
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j-1] > a[j]; j-- {
			a[j-1], a[j] = a[j], a[j-1]
		}
	}
}

// alphabetOf collects the set of distinct non-epsilon input labels used
// by an acceptor.
func alphabetOf(ts ...*Transducer) []string {
	seen := make(map[string]bool)
	for _, t := range ts {
		if t.IsEmpty() {
			continue
		}
		for _, s := range t.States {
			for _, arc := range s.Arcs {
				if arc.ILabel != "" {
					seen[arc.ILabel] = true
				}
			}
		}
	}
	out := make([]string, 0, len(seen))
	for l := range seen {
		out = append(out, l)
	}
	return out
}

// complementAcceptor completes a deterministic, epsilon-free acceptor
// over alphabet with a trap state, then flips finality so the result
// accepts exactly alphabet* minus the language of a.
func complementAcceptor(a *Transducer, alphabet []string) *Transducer {
	if a.IsEmpty() {
		return Star(unionAlphabet(alphabet))
	}
	out := a.Clone()
	trapIdx := out.addState()
	for s := range out.States {
		if s == trapIdx {
			continue
		}
		have := make(map[string]bool)
		for _, arc := range out.States[s].Arcs {
			have[arc.ILabel] = true
		}
		for _, l := range alphabet {
			if !have[l] {
				out.addArc(s, Arc{ILabel: l, OLabel: l, Weight: 0, Next: trapIdx})
			}
		}
	}
	for _, l := range alphabet {
		out.addArc(trapIdx, Arc{ILabel: l, OLabel: l, Weight: 0, Next: trapIdx})
	}
	for s := range out.States {
		out.States[s].Final = !out.States[s].Final
		out.States[s].FinalWeight = 0
	}
	return out
}

func unionAlphabet(alphabet []string) *Transducer {
	out := Empty()
	for _, l := range alphabet {
		out = Union(out, Accept(l))
	}
	return out
}

// Difference returns an acceptor for the set of strings accepted by a
// but not by b. Both operands are first projected onto their input
// tape. This is a full, correct construction (determinize b, complement
// over the combined alphabet, intersect via Compose-as-acceptor) and is
// intended for the small, concretely-generated exclusions the class
// grammars use it for (e.g. NOT_QUOTE = VCHAR minus the quote
// character), not for arbitrary large alphabets.
func Difference(a, b *Transducer) *Transducer {
	ap := removeEpsilon(Project(a, InputSide))
	bp := removeEpsilon(Project(b, InputSide))
	alphabet := alphabetOf(ap, bp)
	bdet := determinizeAcceptor(bp)
	bcomp := complementAcceptor(bdet, alphabet)
	return Compose(ap, bcomp)
}
