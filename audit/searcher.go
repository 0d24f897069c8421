package audit

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Filter narrows an audit log search by any combination of its fields;
// a zero-value field means "no constraint on this column".
type Filter struct {
	Language  string
	Direction string
	Class     string
	Success   *bool
}

// Searcher runs parameterized queries against an audit log table,
// grounded on livetokens/searcher.go's FilterTokens (a WHERE clause
// built incrementally from non-empty filter fields, with placeholders
// and bound values kept in lockstep).
type Searcher struct {
	DB *sql.DB
}

func (s *Searcher) buildWhere(f Filter) (string, []any) {
	var clauses []string
	var args []any
	if f.Language != "" {
		clauses = append(clauses, "language = ?")
		args = append(args, f.Language)
	}
	if f.Direction != "" {
		clauses = append(clauses, "direction = ?")
		args = append(args, f.Direction)
	}
	if f.Class != "" {
		clauses = append(clauses, "class = ?")
		args = append(args, f.Class)
	}
	if f.Success != nil {
		v := 0
		if *f.Success {
			v = 1
		}
		clauses = append(clauses, "success = ?")
		args = append(args, v)
	}
	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// Count returns the number of audit_log rows matching f.
func (s *Searcher) Count(ctx context.Context, f Filter) (int, error) {
	where, args := s.buildWhere(f)
	row := s.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM audit_log"+where, args...)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count audit records: %w", err)
	}
	return n, nil
}

// Records returns the rows matching f as Records, most recent first.
func (s *Searcher) Records(ctx context.Context, f Filter) ([]Record, error) {
	where, args := s.buildWhere(f)
	sqlq := "SELECT language, direction, class, input, output, success, error FROM audit_log" +
		where + " ORDER BY id DESC"
	rows, err := s.DB.QueryContext(ctx, sqlq, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to filter audit records: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		var success int
		if err := rows.Scan(&rec.Language, &rec.Direction, &rec.Class, &rec.Input, &rec.Output, &success, &rec.Error); err != nil {
			return nil, fmt.Errorf("failed to scan audit record: %w", err)
		}
		rec.Success = success != 0
		out = append(out, rec)
	}
	return out, rows.Err()
}
