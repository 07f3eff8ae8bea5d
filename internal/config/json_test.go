package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempConfig(t, `{
		"app": {"log_to_file": true},
		"storage": {"db": {"dsn": "journal.db"}},
		"adapter": {"server_url": "https://sync.example.com", "request_timeout": "10s"},
		"sync": {"push_debounce": "2s", "pull_interval": "1m", "page_limit": 100}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.True(t, cfg.App.LogToFile)
	assert.Equal(t, "journal.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "https://sync.example.com", cfg.Adapter.ServerURL)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 2*time.Second, cfg.Sync.PushDebounce)
	assert.Equal(t, time.Minute, cfg.Sync.PullInterval)
	assert.Equal(t, 100, cfg.Sync.PageLimit)
}

func TestParseJSON_DurationAsNumber(t *testing.T) {
	// Raw nanosecond numbers should also be accepted.
	path := writeTempConfig(t, `{"adapter": {"request_timeout": 15000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTempConfig(t, `{"storage": `)

	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestDuration_MarshalRoundTrip(t *testing.T) {
	d := Duration(90 * time.Second)

	data, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(data))

	var back Duration
	require.NoError(t, back.UnmarshalJSON(data))
	assert.Equal(t, d, back)
}
