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

// Package modders provides small, named string transforms applied to a
// verbalized field value after the FST has produced it (case folding,
// English ordinal suffixing, first-letter extraction). It mirrors
// ptcount/modders' StringTransformer/chain/factory shape, retargeted
// from PoS-tag collapsing at verbalizer-side lexical post-processing.
package modders

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	TransformerToLower       = "toLower"
	TransformerToUpper       = "toUpper"
	TransformerIdentity      = "identity"
	TransformerFirstChar     = "firstChar"
	TransformerOrdinalSuffix = "ordinalSuffix"
)

// StringTransformer modifies a string.
type StringTransformer interface {
	Transform(s string) string
}

// Chain applies a sequence of transformers left to right.
type Chain struct {
	fn []StringTransformer
}

func NewChain(fn []StringTransformer) *Chain {
	return &Chain{fn: fn}
}

func (m *Chain) Mod(s string) string {
	ans := s
	for _, mod := range m.fn {
		ans = mod.Transform(ans)
	}
	return ans
}

// Factory resolves a transformer by name, matching the legacy
// StringTransformerFactory switch shape; an unknown name logs a warning
// and falls back to Identity rather than failing the whole pipeline.
func Factory(name string) StringTransformer {
	switch name {
	case TransformerToLower:
		return ToLower{}
	case TransformerToUpper:
		return ToUpper{}
	case TransformerFirstChar:
		return FirstChar{}
	case TransformerOrdinalSuffix:
		return OrdinalSuffix{}
	case "", TransformerIdentity:
		return Identity{}
	}
	log.Warn().Str("name", name).Msg("unknown modder function, falling back to identity")
	return Identity{}
}

type ToLower struct{}

func (m ToLower) Transform(s string) string { return strings.ToLower(s) }

type ToUpper struct{}

func (m ToUpper) Transform(s string) string { return strings.ToUpper(s) }

type FirstChar struct{}

func (m FirstChar) Transform(s string) string {
	if s == "" {
		return s
	}
	return s[:1]
}

type Identity struct{}

func (m Identity) Transform(s string) string { return s }

// OrdinalSuffix appends the English ordinal suffix (st/nd/rd/th) to a
// plain cardinal string, used by the English ITN ordinal class.
type OrdinalSuffix struct{}

func (m OrdinalSuffix) Transform(s string) string {
	n, err := strconv.Atoi(s)
	if err != nil {
		return s
	}
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
		suffix = "th"
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return s + suffix
}
