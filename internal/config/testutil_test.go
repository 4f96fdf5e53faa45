package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"RECORDED_PATHS",
	"S3_BUCKET_NAME", "BUCKET_NAME",
	"AWS_ACCESS_KEY_ID", "ACCESS_KEY_ID",
	"AWS_SECRET_ACCESS_KEY", "SECRET_ACCESS_KEY",
	"AWS_REGION", "REGION",
	"S3_BASE_ENDPOINT", "S3_USE_PATH_STYLE", "S3_STORAGE_CLASS",
	"UPLOAD_CONCURRENCY", "UPLOAD_PART_SIZE_MIB",
	"RECARCHIVER_REGEX_TITLE", "RECARCHIVER_LOG_LEVEL", "RECARCHIVER_LOG_FORMAT",
}

// clearEnv unsets every variable the loader reads and restores them after
// the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

// chdir moves into dir for the duration of the test, so no stray .env in
// the package directory is picked up.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}
