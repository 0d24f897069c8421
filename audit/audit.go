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

// Package audit logs every normalization request (language, direction,
// matched class, input, output, success) to a database, grounded on
// db/common.go's Writer interface and db/factory's DBType switch.
package audit

import "context"

// Record describes a single normalization call for audit logging.
type Record struct {
	Language  string
	Direction string
	Class     string
	Input     string
	Output    string
	Success   bool
	Error     string
}

// Writer persists Records. Grounded on db/common.go's Writer interface,
// reduced to the subset audit logging needs (no schema/bib-view
// management, since audit has one fixed table shape).
type Writer interface {
	Initialize(appendMode bool) error
	Log(ctx context.Context, rec Record) error
	Close() error
}

// NullWriter is used when no DB backend is configured. Unlike
// db/factory.NullWriter (whose caller cannot proceed without a real
// writer, since the database IS the teacher's job output), audit
// logging is optional instrumentation the normalizer can run without,
// so Log is a silent no-op rather than a hard failure.
type NullWriter struct{}

func (w *NullWriter) Initialize(appendMode bool) error { return nil }

func (w *NullWriter) Log(ctx context.Context, rec Record) error { return nil }

func (w *NullWriter) Close() error { return nil }
