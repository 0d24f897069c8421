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

// Package normalizer assembles the per-language class registries into a
// runnable tag/verbalize pipeline, grounded on library.ExtractData
// (top-level assembly resolving a writer via factory, then running a
// pipeline) and cnf/config.go's JSON Config struct.
package normalizer

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/czcorpus/tn-wfst/audit"
	"github.com/czcorpus/tn-wfst/classes"
)

// Config configures a Normalizer instance, grounded on cnf/config.go's
// VTEConf JSON-loadable shape. Options is the zero value by default; New
// substitutes classes.DefaultOptions() when it is, so the zero Config{}
// used throughout the test suite still runs with sensible defaults.
type Config struct {
	Language  string          `json:"language"`
	Direction string          `json:"direction"`
	CacheDir  string          `json:"cacheDir"`
	Audit     audit.DBConf    `json:"audit"`
	Verbosity int             `json:"verbosity"`
	Options   classes.Options `json:"options"`
}

// LoadConfig reads and decodes a Config from confPath, mirroring
// cnf.LoadConf.
func LoadConfig(confPath string) (*Config, error) {
	raw, err := os.ReadFile(confPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", confPath, err)
	}
	var conf Config
	if err := json.Unmarshal(raw, &conf); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", confPath, err)
	}
	return &conf, nil
}
