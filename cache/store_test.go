package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/czcorpus/tn-wfst/fst"
)

func TestStoreLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	assert.False(t, s.Exists("zh", "itn"), "Exists should be false before any Store call")

	st := fst.NewSymbolTable()
	form := fst.Accept("abc").ToCompact(st)
	entries := []Entry{{Language: "zh", Direction: "itn", Class: "cardinal", Kind: "tagger", Form: form}}

	assert.NoError(t, s.Store("zh", "itn", entries))
	assert.True(t, s.Exists("zh", "itn"), "Exists should be true after Store")

	loaded, err := s.Load("zh", "itn")
	assert.NoError(t, err)
	assert.Len(t, loaded, 1)
	assert.Equal(t, "cardinal", loaded[0].Class)

	rebuilt := fst.FromCompact(loaded[0].Form)
	composed := fst.Compose(fst.Accept("abc"), rebuilt)
	out, ok := fst.ShortestPath(composed)
	assert.True(t, ok)
	assert.Equal(t, "abc", out)
}
