package models

import (
	"time"

	"github.com/google/uuid"
)

// Block types that may appear inside a journal entry. Any other value is
// rejected by the entry validator.
const (
	BlockText  = "text"
	BlockTask  = "task"
	BlockEvent = "event"
)

// Signifiers that can be attached to an entry (bullet-journal style markers).
const (
	SignifierPriority    = "priority"
	SignifierInspiration = "inspiration"
	SignifierExplore     = "explore"
)

// Block is a single content block inside a journal entry.
type Block struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Text string `json:"text"`
	Done bool   `json:"done,omitempty"`
}

// Entry is a journal record as stored by the local store. Timestamps are
// Unix milliseconds; UpdatedAt is the sole conflict-resolution clock used
// by the sync engine.
type Entry struct {
	ID        string   `json:"id"`
	Day       string   `json:"day"`
	CreatedAt int64    `json:"createdAt"`
	UpdatedAt int64    `json:"updatedAt"`
	Blocks    []Block  `json:"blocks"`
	Archived  bool     `json:"archived"`
	Tags      []string `json:"tags"`
	Pinned    bool     `json:"pinned"`
	Signifier string   `json:"signifier,omitempty"`
}

// NewEntry mints an empty entry for the given day (YYYY-MM-DD) with a fresh
// id and both timestamps set to now.
func NewEntry(day string) Entry {
	now := time.Now().UnixMilli()
	return Entry{
		ID:        uuid.NewString(),
		Day:       day,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewBlock mints a content block with a fresh id.
func NewBlock(blockType, text string) Block {
	return Block{
		ID:   uuid.NewString(),
		Type: blockType,
		Text: text,
	}
}

// Touch bumps the conflict-resolution clock after a local edit.
func (e *Entry) Touch() {
	e.UpdatedAt = time.Now().UnixMilli()
}

// HasContent reports whether the entry carries at least one non-empty block.
// Entries without content never reach the search index.
func (e Entry) HasContent() bool {
	for _, b := range e.Blocks {
		if b.Text != "" {
			return true
		}
	}
	return false
}

// SearchDoc is the derived search-index projection of an entry.
type SearchDoc struct {
	EntryID string
	Day     string
	Blocks  []Block
	Tags    []string
}
