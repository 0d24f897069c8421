// Copyright 2026 Charles University, Faculty of Arts,
//                Department of Linguistics
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package fst implements a weighted finite-state transducer algebra over
// UTF-8 bytes in the tropical semiring (oplus=min, otimes=+). It provides
// the primitives (accept, cross, union, concat, closure, compose,
// optimize, invert, difference, project, cdrewrite, shortest-path) that
// class grammars are built out of.
package fst

import "math"

// Infinity is the tropical semiring's additive identity: an unreachable
// path.
const Infinity = math.MaxFloat64

// Eps is the reserved empty-label byte value. It never occurs as a real
// byte of input/output since those are stored as whole strings per arc
// (see Arc), so its only role is documentation of intent.
const Eps = ""

// Arc is a single transition: consume ILabel on the input tape, emit
// OLabel on the output tape (either may be the empty string, i.e. an
// epsilon move on that tape), pay Weight, and move to state Next.
type Arc struct {
	ILabel string
	OLabel string
	Weight float64
	Next   int
}

// State is final when Final is true; FinalWeight is added to any path
// that stops here. ID is assigned once at creation time and never reused;
// it gives ShortestPath a stable, deterministic tie-break key.
type State struct {
	ID          int
	Arcs        []Arc
	Final       bool
	FinalWeight float64
}

// Transducer is a weighted FST: a set of States, one of them (Start) the
// initial state. Start of -1 denotes the empty lattice (no start state,
// accepts nothing).
type Transducer struct {
	States []State
	Start  int

	// sentinel marks a special context acceptor produced by BOS()/EOS()/
	// SigmaStar() for recognition by CDRewrite; zero value (sentinelNone)
	// for ordinary transducers.
	sentinel sentinelKind
}

type sentinelKind int

const (
	sentinelNone sentinelKind = iota
	sentinelBOS
	sentinelEOS
	sentinelSigmaStar
)

var idCounter int

func nextID() int {
	idCounter++
	return idCounter
}

// Empty returns the empty lattice (rejects every string).
func Empty() *Transducer {
	return &Transducer{Start: -1}
}

// IsEmpty reports whether t accepts no path at all.
func (t *Transducer) IsEmpty() bool {
	return t == nil || t.Start < 0 || len(t.States) == 0
}

// addState appends a fresh state and returns its index (always equal to
// its ID's position for a freshly built transducer, but callers should
// use the returned index, not the ID, when referring to States[]).
func (t *Transducer) addState() int {
	idx := len(t.States)
	t.States = append(t.States, State{ID: nextID()})
	return idx
}

// addArc appends an arc from state `from`.
func (t *Transducer) addArc(from int, a Arc) {
	t.States[from].Arcs = append(t.States[from].Arcs, a)
}

// clone makes a deep, renumbered copy of t (fresh state IDs), used
// whenever an algebraic operation needs to splice two transducers
// together without aliasing state slices.
func (t *Transducer) clone() (*Transducer, map[int]int) {
	out := &Transducer{Start: -1}
	remap := make(map[int]int, len(t.States))
	for i := range t.States {
		ni := out.addState()
		remap[i] = ni
	}
	for i, s := range t.States {
		ni := remap[i]
		out.States[ni].Final = s.Final
		out.States[ni].FinalWeight = s.FinalWeight
		out.States[ni].Arcs = make([]Arc, len(s.Arcs))
		for j, a := range s.Arcs {
			na := a
			na.Next = remap[a.Next]
			out.States[ni].Arcs[j] = na
		}
	}
	if t.Start >= 0 {
		out.Start = remap[t.Start]
	}
	return out, remap
}

// Clone returns an independent deep copy of t.
func (t *Transducer) Clone() *Transducer {
	if t.IsEmpty() {
		return Empty()
	}
	c, _ := t.clone()
	return c
}
