package fst

// Compose builds the transducer mapping a's input to b's output through
// a's output / b's input tape, via the classic product construction:
// for each reachable pair of states (qa, qb) we follow a's epsilon-output
// arcs, b's epsilon-input arcs, and matched non-epsilon arcs. Arcs that
// are epsilon on both sides at once are treated as a's move (symmetric
// with the epsilon-output case) to avoid double-counting.
func Compose(a, b *Transducer) *Transducer {
	if a.IsEmpty() || b.IsEmpty() {
		return Empty()
	}
	out := &Transducer{Start: -1}
	type pair struct{ qa, qb int }
	index := make(map[pair]int)

	get := func(qa, qb int) int {
		p := pair{qa, qb}
		if idx, ok := index[p]; ok {
			return idx
		}
		idx := out.addState()
		index[p] = idx
		if a.States[qa].Final && b.States[qb].Final {
			out.States[idx].Final = true
			out.States[idx].FinalWeight = a.States[qa].FinalWeight + b.States[qb].FinalWeight
		}
		return idx
	}

	startIdx := get(a.Start, b.Start)
	out.Start = startIdx

	queue := []pair{{a.Start, b.Start}}
	seen := map[pair]bool{{a.Start, b.Start}: true}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		from := index[p]

		for _, arcA := range a.States[p.qa].Arcs {
			if arcA.OLabel == "" {
				// a advances without requiring b to move.
				np := pair{arcA.Next, p.qb}
				to := get(np.qa, np.qb)
				out.addArc(from, Arc{ILabel: arcA.ILabel, OLabel: "", Weight: arcA.Weight, Next: to})
				if !seen[np] {
					seen[np] = true
					queue = append(queue, np)
				}
			}
		}
		for _, arcB := range b.States[p.qb].Arcs {
			if arcB.ILabel == "" {
				np := pair{p.qa, arcB.Next}
				to := get(np.qa, np.qb)
				out.addArc(from, Arc{ILabel: "", OLabel: arcB.OLabel, Weight: arcB.Weight, Next: to})
				if !seen[np] {
					seen[np] = true
					queue = append(queue, np)
				}
			}
		}
		for _, arcA := range a.States[p.qa].Arcs {
			if arcA.OLabel == "" {
				continue
			}
			for _, arcB := range b.States[p.qb].Arcs {
				if arcB.ILabel != arcA.OLabel {
					continue
				}
				np := pair{arcA.Next, arcB.Next}
				to := get(np.qa, np.qb)
				out.addArc(from, Arc{ILabel: arcA.ILabel, OLabel: arcB.OLabel, Weight: arcA.Weight + arcB.Weight, Next: to})
				if !seen[np] {
					seen[np] = true
					queue = append(queue, np)
				}
			}
		}
	}
	return trim(out)
}
