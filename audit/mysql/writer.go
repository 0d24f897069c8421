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

// Package mysql implements audit.Writer over a MySQL database, grounded
// on db/mysql/main.go's mysql.NewConfig()/FormatDSN() connection-string
// construction and livetokens/backend.go's equivalent dial pattern.
package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"github.com/czcorpus/tn-wfst/audit"
)

// Config holds the connection parameters for the MySQL audit backend.
type Config struct {
	Host     string
	User     string
	Password string
	DBName   string
}

// Writer persists audit.Records into a MySQL database, one row per
// normalization call.
type Writer struct {
	Conf     Config
	database *sql.DB
}

func (w *Writer) Initialize(appendMode bool) error {
	mconf := mysql.NewConfig()
	mconf.Net = "tcp"
	mconf.Addr = w.Conf.Host
	mconf.User = w.Conf.User
	mconf.Passwd = w.Conf.Password
	mconf.DBName = w.Conf.DBName
	mconf.ParseTime = true
	mconf.Loc = time.Local

	db, err := sql.Open("mysql", mconf.FormatDSN())
	if err != nil {
		return fmt.Errorf("failed to open audit database: %w", err)
	}
	w.database = db

	if !appendMode {
		log.Warn().Str("db", w.Conf.DBName).Msg("audit table will be dropped and recreated")
		if _, err := w.database.Exec("DROP TABLE IF EXISTS audit_log"); err != nil {
			return fmt.Errorf("failed to drop existing audit_log table: %w", err)
		}
	}
	_, err = w.database.Exec(
		"CREATE TABLE IF NOT EXISTS audit_log (" +
			"id INT AUTO_INCREMENT PRIMARY KEY, " +
			"language VARCHAR(16), direction VARCHAR(16), class VARCHAR(64), " +
			"input TEXT, output TEXT, success TINYINT, error TEXT)",
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
