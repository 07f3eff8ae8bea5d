package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildSelectEntryQuery(t *testing.T) {
	query, args, err := buildSelectEntryQuery("e1")
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, "e1", args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "select")
	require.Contains(t, q, "from entries")
	require.Contains(t, q, "where")
	require.Contains(t, q, "id = ?")

	// All canonical columns, in scan order.
	for _, col := range entryColumns {
		require.Contains(t, q, col)
	}
}

func Test_buildSelectEntriesUpdatedSinceQuery(t *testing.T) {
	query, args, err := buildSelectEntriesUpdatedSinceQuery(1700000000000)
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, int64(1700000000000), args[0])

	q := strings.ToLower(query)
	// Strictly greater-than: records updated exactly at the cursor are not
	// re-sent by the catch-up sweep.
	assert.Contains(t, q, "updated_at > ?")
	assert.Contains(t, q, "order by updated_at")
}

func Test_buildUpsertEntryQuery(t *testing.T) {
	row := entryRow{
		ID:        "e1",
		Day:       "2026-08-28",
		CreatedAt: 1000,
		UpdatedAt: 2000,
		Blocks:    `[{"id":"b1","type":"text","text":"hi"}]`,
		Tags:      `["a"]`,
		Signifier: "priority",
	}

	query, args, err := buildUpsertEntryQuery(row)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "insert or replace into entries")
	require.Len(t, args, len(entryColumns))
	assert.Equal(t, "e1", args[0])
}

func Test_buildDeleteEntryQuery(t *testing.T) {
	query, args, err := buildDeleteEntryQuery("e1")
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "delete from entries")
	assert.Contains(t, q, "id = ?")
	require.Equal(t, []any{"e1"}, args)
}

func Test_buildSearchDocQueries(t *testing.T) {
	query, args, err := buildUpsertSearchDocQuery("e1", "2026-08-28", "text", `["a"]`)
	require.NoError(t, err)
	assert.Contains(t, strings.ToLower(query), "insert or replace into search_index")
	require.Len(t, args, 4)

	query, args, err = buildDeleteSearchDocQuery("e1")
	require.NoError(t, err)
	assert.Contains(t, strings.ToLower(query), "delete from search_index")
	require.Equal(t, []any{"e1"}, args)
}

func Test_buildSettingQueries(t *testing.T) {
	query, args, err := buildSelectSettingQuery("sync.config")
	require.NoError(t, err)
	assert.Contains(t, strings.ToLower(query), "from settings")
	require.Equal(t, []any{"sync.config"}, args)

	query, args, err = buildUpsertSettingQuery("sync.config", `{}`)
	require.NoError(t, err)
	assert.Contains(t, strings.ToLower(query), "insert or replace into settings")
	require.Len(t, args, 2)
}
