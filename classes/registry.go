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

// Package classes defines the class-grammar capability interface and a
// named registry of grammars per (language, direction), grounded on
// db/colgen/functions.go's FuncList/GetFuncByName/GetFuncList
// named-function-registry pattern.
package classes

import (
	"fmt"

	"github.com/czcorpus/tn-wfst/fst"
	"github.com/czcorpus/tn-wfst/grammar"
)

// Grammar is the capability every class (cardinal, date, money, ...)
// must implement: a tagger mapping raw text to tagged-token markup, and
// a verbalizer mapping tagged-token markup back to spoken-form text.
type Grammar interface {
	Name() string
	Tagger(p *grammar.Processor) *fst.Transducer
	Verbalizer(p *grammar.Processor) *fst.Transducer
}

// PostVerbalizer is an optional capability a Grammar may additionally
// implement when its verbalized field value needs a small Go-side
// transform that would be impractical to encode as transducer branches
// (e.g. English ordinal suffixing, which depends on value mod 10/100).
type PostVerbalizer interface {
	ApplySuffix(s string) string
}

// Entry pairs a Grammar with the tagger weight that biases ShortestPath
// among overlapping classes (spec.md §4.3), carried over from
// original_source/tn/<lang>/normalizer.py's add_weight calls.
type Entry struct {
	Grammar Grammar
	Weight  float64
}

// Registry is a named collection of class grammars for one
// (language, direction) pair, e.g. "zh/tn" or "en/itn".
type Registry struct {
	entries map[string]Entry
	order   []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Register adds a class grammar with its tagger weight. Registering the
// same name twice overwrites the previous entry but keeps its original
// position in Names().
func (r *Registry) Register(g Grammar, weight float64) {
	name := g.Name()
	if _, exists := r.entries[name]; !exists {
		r.order = append(r.order, name)
	}
	r.entries[name] = Entry{Grammar: g, Weight: weight}
}

// Get returns the entry registered under name.
func (r *Registry) Get(name string) (Entry, error) {
	e, ok := r.entries[name]
	if !ok {
		return Entry{}, fmt.Errorf("classes: unknown class %q", name)
	}
	return e, nil
}

// Names returns the registered class names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Entries returns every registered entry in registration order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.entries[name])
	}
	return out
}
