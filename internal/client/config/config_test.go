package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// withArgs swaps os.Args for the duration of the test.
func withArgs(t *testing.T, args ...string) {
	t.Helper()
	old := os.Args
	os.Args = append([]string{"client"}, args...)
	t.Cleanup(func() { os.Args = old })
}

func TestLoadDefaults(t *testing.T) {
	withArgs(t)

	cfg := LoadConfig()
	require.Equal(t, "http://127.0.0.1:3000", cfg.BaseAPIURL)
	require.Equal(t, "session.db", cfg.SessionDBPath)
	require.Equal(t, 10, cfg.PageLimit)
	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestFlagsOverrideDefaults(t *testing.T) {
	withArgs(t, "-a", "http://10.0.0.5:3000", "-l", "20", "-t", "5")

	cfg := LoadConfig()
	require.Equal(t, "http://10.0.0.5:3000", cfg.BaseAPIURL)
	require.Equal(t, 20, cfg.PageLimit)
	require.Equal(t, 5*time.Second, cfg.RequestTimeout)
	// untouched field keeps its default
	require.Equal(t, "session.db", cfg.SessionDBPath)
}

func TestJsonOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"base_api_url": "http://json-host:3000",
		"page_limit": 15,
		"request_timeout_sec": 3
	}`), 0o600))

	withArgs(t, "-c", path)

	cfg := LoadConfig()
	require.Equal(t, "http://json-host:3000", cfg.BaseAPIURL)
	require.Equal(t, 15, cfg.PageLimit)
	require.Equal(t, 3*time.Second, cfg.RequestTimeout)
}

func TestFlagsTakePrecedenceOverJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"base_api_url": "http://json-host:3000"}`), 0o600))

	withArgs(t, "-c", path, "-a", "http://flag-host:3000")

	cfg := LoadConfig()
	require.Equal(t, "http://flag-host:3000", cfg.BaseAPIURL)
}

func TestJsonMissingFilePanics(t *testing.T) {
	withArgs(t, "-c", filepath.Join(t.TempDir(), "missing.json"))

	require.Panics(t, func() { LoadConfig() })
}
