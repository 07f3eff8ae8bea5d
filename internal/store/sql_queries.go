package store

import (
	sq "github.com/Masterminds/squirrel"
)

// entryColumns is the canonical column order used by every entries query;
// scanEntryRow depends on it.
var entryColumns = []string{
	"id",
	"day",
	"created_at",
	"updated_at",
	"blocks",
	"archived",
	"tags",
	"pinned",
	"signifier",
}

func buildSelectEntryQuery(id string) (string, []any, error) {
	return sq.Select(entryColumns...).
		From("entries").
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildSelectAllEntriesQuery() (string, []any, error) {
	return sq.Select(entryColumns...).
		From("entries").
		OrderBy("day", "created_at").
		ToSql()
}

func buildSelectEntriesUpdatedSinceQuery(since int64) (string, []any, error) {
	return sq.Select(entryColumns...).
		From("entries").
		Where(sq.Gt{"updated_at": since}).
		OrderBy("updated_at").
		ToSql()
}

func buildUpsertEntryQuery(row entryRow) (string, []any, error) {
	return sq.Insert("entries").
		Options("OR REPLACE").
		Columns(entryColumns...).
		Values(
			row.ID,
			row.Day,
			row.CreatedAt,
			row.UpdatedAt,
			row.Blocks,
			row.Archived,
			row.Tags,
			row.Pinned,
			row.Signifier,
		).
		ToSql()
}

func buildDeleteEntryQuery(id string) (string, []any, error) {
	return sq.Delete("entries").
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildUpsertSearchDocQuery(entryID, day, content, tags string) (string, []any, error) {
	return sq.Insert("search_index").
		Options("OR REPLACE").
		Columns("entry_id", "day", "content", "tags").
		Values(entryID, day, content, tags).
		ToSql()
}

func buildDeleteSearchDocQuery(entryID string) (string, []any, error) {
	return sq.Delete("search_index").
		Where(sq.Eq{"entry_id": entryID}).
		ToSql()
}

func buildSelectSettingQuery(key string) (string, []any, error) {
	return sq.Select("value").
		From("settings").
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildUpsertSettingQuery(key, value string) (string, []any, error) {
	return sq.Insert("settings").
		Options("OR REPLACE").
		Columns("key", "value").
		Values(key, value).
		ToSql()
}
