package store

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/daybook-app/daybook/internal/logger"
	"github.com/daybook-app/daybook/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*entryRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	wrapped := &DB{DB: db, logger: logger.Nop()}
	return NewEntryRepository(wrapped, logger.Nop()), mock
}

func entryRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "day", "created_at", "updated_at", "blocks", "archived", "tags", "pinned", "signifier",
	})
}

func TestEntryRepository_GetEntry(t *testing.T) {
	repo, mock := newMockRepo(t)

	query, _, err := buildSelectEntryQuery("e1")
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs("e1").
		WillReturnRows(entryRows().AddRow(
			"e1", "2026-08-28", int64(1000), int64(2000),
			`[{"id":"b1","type":"text","text":"hello"}]`, false, `["work"]`, true, "priority",
		))

	entry, err := repo.GetEntry(context.Background(), "e1")
	require.NoError(t, err)

	assert.Equal(t, "e1", entry.ID)
	assert.Equal(t, "2026-08-28", entry.Day)
	assert.Equal(t, int64(2000), entry.UpdatedAt)
	require.Len(t, entry.Blocks, 1)
	assert.Equal(t, "hello", entry.Blocks[0].Text)
	assert.Equal(t, []string{"work"}, entry.Tags)
	assert.True(t, entry.Pinned)
	assert.Equal(t, "priority", entry.Signifier)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEntryRepository_GetEntry_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	query, _, err := buildSelectEntryQuery("missing")
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs("missing").
		WillReturnRows(entryRows())

	_, err = repo.GetEntry(context.Background(), "missing")
	require.ErrorIs(t, err, ErrEntryNotFound)
}

func TestEntryRepository_SaveEntry(t *testing.T) {
	repo, mock := newMockRepo(t)

	entry := models.Entry{
		ID:        "e1",
		Day:       "2026-08-28",
		CreatedAt: 1000,
		UpdatedAt: 2000,
		Blocks:    []models.Block{{ID: "b1", Type: models.BlockText, Text: "hello"}},
		Tags:      []string{"work"},
	}

	row, err := newEntryRow(entry)
	require.NoError(t, err)
	query, _, err := buildUpsertEntryQuery(row)
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta(query)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.SaveEntry(context.Background(), entry))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEntryRepository_DeleteEntry(t *testing.T) {
	repo, mock := newMockRepo(t)

	query, _, err := buildDeleteEntryQuery("e1")
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs("e1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteEntry(context.Background(), "e1"))
}

func TestEntryRepository_DeleteEntry_Absent(t *testing.T) {
	repo, mock := newMockRepo(t)

	query, _, err := buildDeleteEntryQuery("missing")
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.DeleteEntry(context.Background(), "missing")
	require.ErrorIs(t, err, ErrEntryNotFound)
}

func TestEntryRepository_GetEntriesUpdatedSince(t *testing.T) {
	repo, mock := newMockRepo(t)

	query, _, err := buildSelectEntriesUpdatedSinceQuery(1500)
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(int64(1500)).
		WillReturnRows(entryRows().
			AddRow("e1", "2026-08-27", int64(1000), int64(1600), `[]`, false, `[]`, false, "").
			AddRow("e2", "2026-08-28", int64(1100), int64(1700), `[]`, false, `[]`, false, ""))

	entries, err := repo.GetEntriesUpdatedSince(context.Background(), 1500)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "e1", entries[0].ID)
	assert.Equal(t, "e2", entries[1].ID)
}

func TestEntryRepository_UpdateSearchIndex(t *testing.T) {
	repo, mock := newMockRepo(t)

	doc := models.SearchDoc{
		EntryID: "e1",
		Day:     "2026-08-28",
		Blocks: []models.Block{
			{ID: "b1", Type: models.BlockText, Text: "first"},
			{ID: "b2", Type: models.BlockTask, Text: "second"},
			{ID: "b3", Type: models.BlockText, Text: ""},
		},
		Tags: []string{"work"},
	}

	query, _, err := buildUpsertSearchDocQuery(doc.EntryID, doc.Day, "first\nsecond", `["work"]`)
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs("e1", "2026-08-28", "first\nsecond", `["work"]`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.UpdateSearchIndex(context.Background(), doc))
	require.NoError(t, mock.ExpectationsWereMet())
}
