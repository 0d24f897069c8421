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

// Package cache persists compiled tagger/verbalizer transducers to disk
// so repeated CLI invocations skip rebuilding the grammar, grounded on
// db/sqlite/main.go's Initialize(appendMode)/DatabaseExists idiom
// (exists-check, then either reuse or rebuild) and serialized with
// sonic rather than database/sql, since a compiled grammar is a single
// blob, not relational data.
package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"

	"github.com/czcorpus/tn-wfst/fst"
	"github.com/czcorpus/tn-wfst/fsutil"
)

// Entry is the on-disk unit of the cache: one compiled transducer per
// (language, direction, class) combination.
type Entry struct {
	Language  string          `json:"language"`
	Direction string          `json:"direction"`
	Class     string          `json:"class"`
	Kind      string          `json:"kind"` // "tagger" or "verbalizer"
	Form      fst.CompactForm `json:"form"`
}

// Store reads and writes compiled grammars under Dir, one file per
// (language, direction) pair.
type Store struct {
	Dir string
}

func New(dir string) *Store {
	return &Store{Dir: dir}
}

func (s *Store) path(language, direction string) string {
	return filepath.Join(s.Dir, fmt.Sprintf("%s_%s.cache", language, direction))
}

// Exists reports whether a cache file for (language, direction) is
// already on disk, mirroring db/sqlite/main.go's DatabaseExists check.
func (s *Store) Exists(language, direction string) bool {
	return fsutil.IsFile(s.path(language, direction))
}

// Load reads and deserializes every Entry cached for (language,
// direction).
func (s *Store) Load(language, direction string) ([]Entry, error) {
	path := s.path(language, direction)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file %s: %w", path, err)
	}
	var entries []Entry
	if err := sonic.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode cache file %s: %w", path, err)
	}
	log.Debug().Str("language", language).Str("direction", direction).Int("entries", len(entries)).Msg("cache hit")
	return entries, nil
}

// Store writes entries for (language, direction), replacing any
// previously cached data, via a write-temp-then-rename so a reader
// never observes a half-written cache file.
func (s *Store) Store(language, direction string, entries []Entry) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create cache dir %s: %w", s.Dir, err)
	}
	start := time.Now()
	raw, err := sonic.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode cache entries: %w", err)
	}
	path := s.path(language, direction)
	if err := fsutil.WriteFileAtomic(path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to persist cache file %s: %w", path, err)
	}
	log.Debug().
		Str("language", language).
		Str("direction", direction).
		Dur("buildDuration", time.Since(start)).
		Msg("cache written")
	return nil
}
