package audit_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	_ "github.com/mattn/go-sqlite3"

	"github.com/czcorpus/tn-wfst/audit"
	sqlitewriter "github.com/czcorpus/tn-wfst/audit/sqlite"
)

func TestSqliteWriterAndSearcher(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.db")
	w := &sqlitewriter.Writer{Path: path}
	assert.NoError(t, w.Initialize(false))
	defer w.Close()

	ctx := context.Background()
	records := []audit.Record{
		{Language: "zh", Direction: "itn", Class: "cardinal", Input: "三", Output: "3", Success: true},
		{Language: "zh", Direction: "itn", Class: "date", Input: "三月五日", Output: "3/5", Success: true},
		{Language: "en", Direction: "itn", Class: "cardinal", Input: "???", Output: "", Success: false, Error: "no match"},
	}
	for _, rec := range records {
		assert.NoError(t, w.Log(ctx, rec))
	}

	db, err := sql.Open("sqlite3", path)
	assert.NoError(t, err)
	defer db.Close()
	searcher := &audit.Searcher{DB: db}

	n, err := searcher.Count(ctx, audit.Filter{Language: "zh"})
	assert.NoError(t, err)
	assert.Equal(t, 2, n)

	successTrue := true
	recs, err := searcher.Records(ctx, audit.Filter{Success: &successTrue})
	assert.NoError(t, err)
	assert.Len(t, recs, 2)
}

func TestNullWriter(t *testing.T) {
	var w audit.Writer = &audit.NullWriter{}
	assert.NoError(t, w.Initialize(false))
	assert.NoError(t, w.Log(context.Background(), audit.Record{}))
}
