package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewEntry(t *testing.T) {
	entry := NewEntry("2026-03-14")

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "2026-03-14", entry.Day)
	assert.Equal(t, entry.CreatedAt, entry.UpdatedAt)
	assert.NotZero(t, entry.UpdatedAt)
	assert.False(t, entry.HasContent())

	other := NewEntry("2026-03-14")
	assert.NotEqual(t, entry.ID, other.ID)
}

func TestEntry_Touch(t *testing.T) {
	entry := NewEntry("2026-03-14")
	entry.UpdatedAt = 1 // pretend the entry is old

	entry.Touch()
	assert.Greater(t, entry.UpdatedAt, time.Now().Add(-time.Minute).UnixMilli())
}

func TestEntry_HasContent(t *testing.T) {
	entry := NewEntry("2026-03-14")
	entry.Blocks = []Block{NewBlock(BlockText, "")}
	assert.False(t, entry.HasContent())

	entry.Blocks = append(entry.Blocks, NewBlock(BlockTask, "buy milk"))
	assert.True(t, entry.HasContent())
}
