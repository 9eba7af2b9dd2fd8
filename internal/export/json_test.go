package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docwolf/actionmap/internal/scrape"
)

func TestWriteJSONStableFieldOrder(t *testing.T) {
	record := scrape.ActionRecord{
		AccessLevel:   scrape.AccessRead,
		Action:        "GetObject",
		ConditionKeys: []string{},
		Description:   "Grants read",
		Resources:     []string{"object"},
	}

	path := filepath.Join(t.TempDir(), "actions.json")
	require.NoError(t, WriteJSON(path, record, false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		`{"access_level":"Read","action":"GetObject","condition_keys":[],"description":"Grants read","orphan":false,"resources":["object"]}`+"\n",
		string(data))
}

func TestWriteJSONSortsMapKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, WriteJSON(path, map[string]int{"b": 2, "a": 1, "c": 3}, false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1,"b":2,"c":3}`+"\n", string(data))
}

func TestWriteJSONIndent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, WriteJSON(path, []string{"one"}, true))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[\n \"one\"\n]\n", string(data))
}
