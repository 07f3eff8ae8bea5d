package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/daybook-app/daybook/internal/logger"
	"github.com/daybook-app/daybook/models"
)

// entryRow is the flat SQL projection of a journal entry. Blocks and tags
// are stored as JSON text columns.
type entryRow struct {
	ID        string
	Day       string
	CreatedAt int64
	UpdatedAt int64
	Blocks    string
	Archived  bool
	Tags      string
	Pinned    bool
	Signifier string
}

type entryRepository struct {
	*DB
	logger *logger.Logger
}

// NewEntryRepository constructs the SQLite-backed entries and search-index
// repository.
func NewEntryRepository(db *DB, log *logger.Logger) *entryRepository {
	return &entryRepository{DB: db, logger: log}
}

func (r *entryRepository) GetEntry(ctx context.Context, id string) (models.Entry, error) {
	query, args, err := buildSelectEntryQuery(id)
	if err != nil {
		return models.Entry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.DB.QueryRowContext(ctx, query, args...)

	entry, err := scanEntryRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Entry{}, ErrEntryNotFound
		}
		r.logger.Err(err).Str("entry_id", id).Msg("failed to scan entry row")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entry, nil
}

func (r *entryRepository) GetAllEntries(ctx context.Context) ([]models.Entry, error) {
	query, args, err := buildSelectAllEntriesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryEntries(ctx, query, args...)
}

func (r *entryRepository) GetEntriesUpdatedSince(ctx context.Context, since int64) ([]models.Entry, error) {
	query, args, err := buildSelectEntriesUpdatedSinceQuery(since)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryEntries(ctx, query, args...)
}

func (r *entryRepository) SaveEntry(ctx context.Context, entry models.Entry) error {
	row, err := newEntryRow(entry)
	if err != nil {
		return fmt.Errorf("encode entry %s: %w", entry.ID, err)
	}

	query, args, err := buildUpsertEntryQuery(row)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("entry_id", entry.ID).Msg("failed to upsert entry")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *entryRepository) DeleteEntry(ctx context.Context, id string) error {
	query, args, err := buildDeleteEntryQuery(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("entry_id", id).Msg("failed to delete entry")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

func (r *entryRepository) UpdateSearchIndex(ctx context.Context, doc models.SearchDoc) error {
	content := make([]string, 0, len(doc.Blocks))
	for _, b := range doc.Blocks {
		if b.Text != "" {
			content = append(content, b.Text)
		}
	}

	tags, err := json.Marshal(doc.Tags)
	if err != nil {
		return fmt.Errorf("encode search tags for %s: %w", doc.EntryID, err)
	}

	query, args, err := buildUpsertSearchDocQuery(doc.EntryID, doc.Day, strings.Join(content, "\n"), string(tags))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("entry_id", doc.EntryID).Msg("failed to upsert search doc")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *entryRepository) DeleteSearchIndex(ctx context.Context, entryID string) error {
	query, args, err := buildDeleteSearchDocQuery(entryID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("entry_id", entryID).Msg("failed to delete search doc")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *entryRepository) queryEntries(ctx context.Context, query string, args ...any) ([]models.Entry, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Msg("failed to query entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []models.Entry
	for rows.Next() {
		entry, scanErr := scanEntryRow(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return entries, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntryRow(s rowScanner) (models.Entry, error) {
	var row entryRow
	if err := s.Scan(
		&row.ID,
		&row.Day,
		&row.CreatedAt,
		&row.UpdatedAt,
		&row.Blocks,
		&row.Archived,
		&row.Tags,
		&row.Pinned,
		&row.Signifier,
	); err != nil {
		return models.Entry{}, err
	}

	return row.toEntry()
}

func newEntryRow(entry models.Entry) (entryRow, error) {
	blocks, err := json.Marshal(entry.Blocks)
	if err != nil {
		return entryRow{}, fmt.Errorf("encode blocks: %w", err)
	}

	tags, err := json.Marshal(entry.Tags)
	if err != nil {
		return entryRow{}, fmt.Errorf("encode tags: %w", err)
	}

	return entryRow{
		ID:        entry.ID,
		Day:       entry.Day,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
		Blocks:    string(blocks),
		Archived:  entry.Archived,
		Tags:      string(tags),
		Pinned:    entry.Pinned,
		Signifier: entry.Signifier,
	}, nil
}

func (row entryRow) toEntry() (models.Entry, error) {
	entry := models.Entry{
		ID:        row.ID,
		Day:       row.Day,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
		Archived:  row.Archived,
		Pinned:    row.Pinned,
		Signifier: row.Signifier,
	}

	if row.Blocks != "" {
		if err := json.Unmarshal([]byte(row.Blocks), &entry.Blocks); err != nil {
			return models.Entry{}, fmt.Errorf("decode blocks: %w", err)
		}
	}
	if row.Tags != "" {
		if err := json.Unmarshal([]byte(row.Tags), &entry.Tags); err != nil {
			return models.Entry{}, fmt.Errorf("decode tags: %w", err)
		}
	}

	return entry, nil
}
