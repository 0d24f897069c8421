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

// Package grammar provides the Processor helper every class grammar is
// built on top of: a small DSL wrapping the fst package's algebra with
// the common character classes and the add/delete-tokens + cdrewrite
// pattern used throughout original_source/tn/processor.py and
// original_source/processors/processor.py.
package grammar

import "github.com/czcorpus/tn-wfst/fst"

// Processor bundles the character classes and token-markup helpers a
// class grammar reaches for over and over. Name is the class's markup
// name as it appears in `name { ... }` spans.
type Processor struct {
	Name string

	Alpha    *fst.Transducer
	Digit    *fst.Transducer
	Punct    *fst.Transducer
	Space    *fst.Transducer
	Vchar    *fst.Transducer
	NotQuote *fst.Transducer
	NotSpace *fst.Transducer
	ToLower  *fst.Transducer
	ToUpper  *fst.Transducer

	// Sigma is the escaped-character class used inside a quoted field
	// value: any VCHAR or space other than a bare backslash/quote, plus the
	// escape pairs \\ and \", closed under Star. It is what the value
	// grammar's Delete/Insert boundaries are built against.
	Sigma *fst.Transducer
}

// NewProcessor constructs a Processor with the standard character
// classes pre-built for class name.
func NewProcessor(name string) *Processor {
	char := fst.Difference(fst.Union(fst.VCHAR(), fst.Accept(" ")), fst.Union(fst.Accept("\\"), fst.Accept("\"")))
	escaped := fst.Union(char, fst.Union(fst.Cross("\\", "\\\\"), fst.Cross("\"", "\\\"")))
	sigma := fst.Star(escaped)

	return &Processor{
		Name:     name,
		Alpha:    fst.ALPHA(),
		Digit:    fst.DIGIT(),
		Punct:    fst.PUNCT(),
		Space:    fst.SPACE(),
		Vchar:    fst.VCHAR(),
		NotQuote: fst.NOT_QUOTE(),
		NotSpace: fst.NOT_SPACE(),
		ToLower:  fst.TO_LOWER(),
		ToUpper:  fst.TO_UPPER(),
		Sigma:    sigma,
	}
}

// AddTokens wraps tagger with the class's markup delimiters, producing
// `name { <tagger output> } ` the way Processor.add_tokens does.
func (p *Processor) AddTokens(tagger *fst.Transducer) *fst.Transducer {
	return fst.Optimize(fst.Concat(fst.Insert(p.Name+" { "), fst.Concat(tagger, fst.Insert(" } "))))
}

// DeleteTokens strips a class's markup delimiters back off, leaving just
// verbalizer's own mapping (mirrors Processor.delete_tokens).
func (p *Processor) DeleteTokens(verbalizer *fst.Transducer) *fst.Transducer {
	return fst.Optimize(fst.Concat(
		fst.Delete(p.Name),
		fst.Concat(fst.Delete(" { "), fst.Concat(verbalizer, fst.Concat(fst.Delete(" }"), fst.DeleteZeroOrOneSpace()))),
	))
}

// DefaultVerbalizer builds the common `value: "..."` passthrough
// verbalizer shared by every class that has no bespoke field structure
// (mirrors Processor.build_verbalizer's default body).
func (p *Processor) DefaultVerbalizer() *fst.Transducer {
	body := fst.Concat(fst.Delete(`value: "`), fst.Concat(p.Sigma, fst.Delete(`"`)))
	return p.DeleteTokens(body)
}

// BuildRule constructs a context-dependent rewrite of t bounded by left
// and right context acceptors (fst.SigmaStar(), fst.BOS(), fst.EOS(), or
// an explicit acceptor; nil defaults to SigmaStar, matching the
// original's l='', r='' defaults), scanning through p.Vchar elsewhere.
func (p *Processor) BuildRule(t, l, r *fst.Transducer) *fst.Transducer {
	if l == nil {
		l = fst.SigmaStar()
	}
	if r == nil {
		r = fst.SigmaStar()
	}
	return fst.CDRewrite(t, l, r, p.Vchar)
}
