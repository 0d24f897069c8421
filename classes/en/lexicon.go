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

// Package en implements the reduced English TN/ITN class grammar set
// (cardinal, ordinal, date, time, money, fraction, whitelist, char); its
// numbers are grounded on
// original_source/itn/english/rules/cardinal.py's digit/teen/ties
// composition (NeMo's full hundred/thousand/million cascade is scoped
// down to two-digit numbers, see DESIGN.md).
package en

import (
	"embed"

	"github.com/czcorpus/tn-wfst/fst"
)

//go:embed lexicon/*.tsv
var lexiconFS embed.FS

func mustStringFile(path string) *fst.Transducer {
	f, err := lexiconFS.Open(path)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	t, err := fst.StringFile(f)
	if err != nil {
		panic(err)
	}
	return t
}

func zeroLex() *fst.Transducer        { return mustStringFile("lexicon/zero.tsv") }
func digitLex() *fst.Transducer       { return mustStringFile("lexicon/digit.tsv") }
func teenLex() *fst.Transducer        { return mustStringFile("lexicon/teen.tsv") }
func tiesLex() *fst.Transducer        { return mustStringFile("lexicon/ties.tsv") }
func monthLex() *fst.Transducer       { return mustStringFile("lexicon/month.tsv") }
func currencyLex() *fst.Transducer    { return mustStringFile("lexicon/currency.tsv") }
func ordinalWordLex() *fst.Transducer { return mustStringFile("lexicon/ordinalword.tsv") }
func whitelistLex() *fst.Transducer   { return mustStringFile("lexicon/whitelist.tsv") }
