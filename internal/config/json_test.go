package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	dir := t.TempDir()
	full := writeTempJSON(t, dir, "full.json", map[string]any{
		"roots":                []string{"/a", "/b"},
		"s3_bucket":            "bucket",
		"s3_access_key_id":     "AKIA",
		"s3_secret_access_key": "secret",
		"s3_region":            "us-west-2",
		"s3_base_endpoint":     "http://127.0.0.1:9000",
		"s3_use_path_style":    true,
		"storage_class":        "GLACIER",
		"concurrency":          5,
		"part_size_mib":        16,
		"regex_title":          true,
		"log_level":            "debug",
		"log_format":           "json",
	})

	t.Run("loads every key", func(t *testing.T) {
		cfg := &Config{}
		require.NoError(t, parseJson(cfg, []string{"-config", full}))

		assert.Equal(t, &Config{
			Roots:             []string{"/a", "/b"},
			S3Bucket:          "bucket",
			S3AccessKeyID:     "AKIA",
			S3SecretAccessKey: "secret",
			S3Region:          "us-west-2",
			S3BaseEndpoint:    "http://127.0.0.1:9000",
			S3UsePathStyle:    true,
			StorageClass:      "GLACIER",
			Concurrency:       5,
			PartSizeMiB:       16,
			RegexTitle:        true,
			LogLevel:          "debug",
			LogFormat:         "json",
		}, cfg)
	})

	t.Run("partial file keeps other values", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{"s3_bucket": "only"})

		cfg := defaults()
		require.NoError(t, parseJson(cfg, []string{"-c", partial}))

		assert.Equal(t, "only", cfg.S3Bucket)
		assert.Equal(t, DefaultRoots, cfg.Roots)
		assert.Equal(t, 20, cfg.Concurrency)
	})

	t.Run("no flags → no changes", func(t *testing.T) {
		cfg := defaults()
		require.NoError(t, parseJson(cfg, []string{"-b", "x"}))
		assert.Equal(t, defaults(), cfg)
	})

	t.Run("invalid JSON → error", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		require.Error(t, parseJson(&Config{}, []string{"-c", bad}))
	})
}
