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

// Package sqlite implements audit.Writer over a local sqlite3 database,
// grounded on db/sqlite/main.go's Initialize/createSchema/prepareInsert
// shape (the corpus-schema-specific parts of that file - structural
// attribute columns, bibliography views - have no analogue here, since
// the audit log has one fixed table).
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"

	_ "github.com/mattn/go-sqlite3"

	"github.com/czcorpus/tn-wfst/audit"
	"github.com/czcorpus/tn-wfst/fsutil"
)

// Writer persists audit.Records into a sqlite3 database, one row per
// normalization call.
type Writer struct {
	Path     string
	database *sql.DB
}

func (w *Writer) Initialize(appendMode bool) error {
	dbExisted := fsutil.IsFile(w.Path)
	db, err := sql.Open("sqlite3", w.Path)
	if err != nil {
		return fmt.Errorf("failed to open audit database %s: %w", w.Path, err)
	}
	w.database = db

	if !appendMode && dbExisted {
		log.Warn().Str("path", w.Path).Msg("audit database already exists, existing data will be deleted")
		if _, err := w.database.Exec("DROP TABLE IF EXISTS audit_log"); err != nil {
			return fmt.Errorf("failed to drop existing audit_log table: %w", err)
		}
	}
	_, err = w.database.Exec(
		"CREATE TABLE IF NOT EXISTS audit_log (" +
			"id INTEGER PRIMARY KEY AUTOINCREMENT, " +
			"language TEXT, direction TEXT, class TEXT, " +
			"input TEXT, output TEXT, success INTEGER, error TEXT)",
	)
	if err != nil {
		return fmt.Errorf("failed to create audit_log table: %w", err)
	}
	return nil
}

func (w *Writer) Log(ctx context.Context, rec audit.Record) error {
	success := 0
	if rec.Success {
		success = 1
	}
	_, err := w.database.ExecContext(
		ctx,
		"INSERT INTO audit_log (language, direction, class, input, output, success, error) VALUES (?, ?, ?, ?, ?, ?, ?)",
		rec.Language, rec.Direction, rec.Class, rec.Input, rec.Output, success, rec.Error,
	)
	if err != nil {
		return fmt.Errorf("failed to insert audit record: %w", err)
	}
	return nil
}

func (w *Writer) Close() error {
	if w.database == nil {
		return nil
	}
	return w.database.Close()
}
