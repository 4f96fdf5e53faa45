package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/recarchiver/internal/flagx"
	"github.com/mitchellh/go-homedir"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from "zero", so a partial file only
// overrides what it names.
type JsonConfig struct {
	Roots             []string `json:"roots"`
	S3Bucket          *string  `json:"s3_bucket"`
	S3AccessKeyID     *string  `json:"s3_access_key_id"`
	S3SecretAccessKey *string  `json:"s3_secret_access_key"`
	S3Region          *string  `json:"s3_region"`
	S3BaseEndpoint    *string  `json:"s3_base_endpoint"`
	S3UsePathStyle    *bool    `json:"s3_use_path_style"`
	StorageClass      *string  `json:"storage_class"`
	Concurrency       *int     `json:"concurrency"`
	PartSizeMiB       *int64   `json:"part_size_mib"`
	RegexTitle        *bool    `json:"regex_title"`
	LogLevel          *string  `json:"log_level"`
	LogFormat         *string  `json:"log_format"`
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// parseJson overlays cfg with values loaded from the JSON file named by
// -c or -config. Without either flag nothing is loaded.
func parseJson(cfg *Config, args []string) error {
	path := flagx.StringFlag(args, "config", "c")
	if path == "" {
		return nil
	}

	path, err := homedir.Expand(path)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}

	if jc.Roots != nil {
		cfg.Roots = jc.Roots
	}
	set(&cfg.S3Bucket, jc.S3Bucket)
	set(&cfg.S3AccessKeyID, jc.S3AccessKeyID)
	set(&cfg.S3SecretAccessKey, jc.S3SecretAccessKey)
	set(&cfg.S3Region, jc.S3Region)
	set(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)
	set(&cfg.S3UsePathStyle, jc.S3UsePathStyle)
	set(&cfg.StorageClass, jc.StorageClass)
	set(&cfg.Concurrency, jc.Concurrency)
	set(&cfg.PartSizeMiB, jc.PartSizeMiB)
	set(&cfg.RegexTitle, jc.RegexTitle)
	set(&cfg.LogLevel, jc.LogLevel)
	set(&cfg.LogFormat, jc.LogFormat)

	return nil
}
