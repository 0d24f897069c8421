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

// Package token implements the tagged-token markup grammar
// (`NAME { key: "value" ... }`) that sits between a class grammar's
// tagger output and its verbalizer input. Grounded on ud.Feat/FeatList's
// [2]string + Key()/Value()/Normalize() shape, generalized from a plain
// alphabetical sort to the canonical per-(direction,class) order table
// in order.go.
package token

// Field is a single key/value pair inside a tagged token, e.g.
// {"year", "2024"}.
type Field [2]string

func (f Field) Key() string   { return f[0] }
func (f Field) Value() string { return f[1] }

// FieldList is an ordered sequence of Fields as produced by Parser, in
// the order they appeared in the source text.
type FieldList []Field

// Get returns the value of the first field with the given key, and
// whether it was present.
func (fl FieldList) Get(key string) (string, bool) {
	for _, f := range fl {
		if f.Key() == key {
			return f.Value(), true
		}
	}
	return "", false
}

// PreserveOrder reports whether the field list carries an explicit
// `preserve_order: "true"` escape hatch, which tells Reorder to keep the
// as-parsed order instead of applying the canonical table.
func (fl FieldList) PreserveOrder() bool {
	v, ok := fl.Get("preserve_order")
	return ok && v == "true"
}

// Reorder returns a copy of fl arranged according to order: fields whose
// key appears in order come first, in that order; any remaining fields
// (not named by the table, including preserve_order itself) are appended
// afterward in their original relative order. If fl.PreserveOrder() is
// true, fl is returned unchanged (a copy) regardless of order.
func (fl FieldList) Reorder(order []string) FieldList {
	if fl.PreserveOrder() {
		out := make(FieldList, len(fl))
		copy(out, fl)
		return out
	}
	out := make(FieldList, 0, len(fl))
	used := make(map[int]bool, len(fl))
	for _, key := range order {
		for i, f := range fl {
			if used[i] || f.Key() != key {
				continue
			}
			out = append(out, f)
			used[i] = true
			break
		}
	}
	for i, f := range fl {
		if !used[i] {
			out = append(out, f)
		}
	}
	return out
}
