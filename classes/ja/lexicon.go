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

// Package ja implements the reduced Japanese TN/ITN class grammar set
// (cardinal, date, time, money, fraction, measure, char); its cardinal
// is grounded on original_source/itn/japanese/rules/
// cardinal.py's digit/teen/tens/hundred/thousand/ten_thousand
// composition (hundred_thousand, million, ten_million and the 兆/億
// big_integer branch are out of scope, see DESIGN.md).
package ja

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

func zeroLex() *fst.Transducer     { return mustStringFile("lexicon/zero.tsv") }
func digitLex() *fst.Transducer    { return mustStringFile("lexicon/digit.tsv") }
func signLex() *fst.Transducer     { return mustStringFile("lexicon/sign.tsv") }
func dotLex() *fst.Transducer      { return mustStringFile("lexicon/dot.tsv") }
func monthLex() *fst.Transducer    { return mustStringFile("lexicon/month.tsv") }
func currencyLex() *fst.Transducer { return mustStringFile("lexicon/currency.tsv") }
