package fst

// CDRewrite builds a context-dependent rewrite transducer: apply T
// everywhere its domain matches, subject to the left/right context
// acceptors L and R, scanning Sigma (the "everything else" alphabet)
// through unmatched regions. It mirrors Pynini's cdrewrite as used by
// original_source/tn/processor.py's build_rule, scoped to the context
// shapes that grammar actually needs:
//
//   - L and R both unrestricted (SigmaStar() or the empty acceptor) ->
//     an unconditional, leftmost, non-overlapping global replace.
//   - R == EOS() -> T must consume the very end of the string.
//   - L == BOS() -> T must consume the very start of the string.
//
// General contextual L/R (anything else) falls back to a best-effort
// sandwich: require L to match immediately before the rewritten span
// and R immediately after, without the global Sigma* interleaving;
// callers needing genuinely general contexts should compose that
// context check in by hand instead of relying on this fallback.
func CDRewrite(t, l, r, sigma *Transducer) *Transducer {
	switch {
	case isSentinel(r, sentinelEOS) && isUnrestricted(l):
		return Concat(Star(sigma), t)
	case isSentinel(l, sentinelBOS) && isUnrestricted(r):
		return Concat(t, Star(sigma))
	case isUnrestricted(l) && isUnrestricted(r):
		return globalReplace(t, sigma)
	default:
		return Concat(l, Concat(t, r))
	}
}

func isSentinel(t *Transducer, k sentinelKind) bool {
	return t != nil && t.sentinel == k
}

func isUnrestricted(t *Transducer) bool {
	if t == nil {
		return true
	}
	if t.sentinel == sentinelSigmaStar {
		return true
	}
	return t.IsEmpty() || acceptsOnlyEmpty(t)
}

func acceptsOnlyEmpty(t *Transducer) bool {
	return t.Start >= 0 && len(t.States) == 1 && t.States[0].Final && len(t.States[0].Arcs) == 0
}

// globalReplace repeatedly either applies t or copies one Sigma symbol
// through, preferring t whenever its domain matches at the current
// position (a small bias weight breaks ties toward rewriting, matching
// the "prefer the specific branch" tie-break policy used throughout the
// class grammars).
func globalReplace(t, sigma *Transducer) *Transducer {
	biased := AddWeight(t, -1e-6)
	copyThrough := Project(sigma, InputSide)
	return Star(Union(biased, copyThrough))
}

// BOS returns the sentinel acceptor denoting "start of string" context.
func BOS() *Transducer {
	t := Accept("")
	t.sentinel = sentinelBOS
	return t
}

// EOS returns the sentinel acceptor denoting "end of string" context.
func EOS() *Transducer {
	t := Accept("")
	t.sentinel = sentinelEOS
	return t
}

// SigmaStar returns the sentinel acceptor denoting "no context
// restriction" (every position is a valid rewrite site).
func SigmaStar() *Transducer {
	t := Accept("")
	t.sentinel = sentinelSigmaStar
	return t
}
