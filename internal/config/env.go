package config

import (
	"errors"
	"io/fs"

	"github.com/dmitrijs2005/recarchiver/internal/flagx"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
)

// EnvConfig is the environment view of Config. Fields are pre-filled from
// the current Config, so variables that are not set keep earlier values.
type EnvConfig struct {
	Roots             []string `env:"RECORDED_PATHS" env-separator:","`
	S3Bucket          string   `env:"S3_BUCKET_NAME,BUCKET_NAME"`
	S3AccessKeyID     string   `env:"AWS_ACCESS_KEY_ID,ACCESS_KEY_ID"`
	S3SecretAccessKey string   `env:"AWS_SECRET_ACCESS_KEY,SECRET_ACCESS_KEY"`
	S3Region          string   `env:"AWS_REGION,REGION"`
	S3BaseEndpoint    string   `env:"S3_BASE_ENDPOINT"`
	S3UsePathStyle    bool     `env:"S3_USE_PATH_STYLE"`
	StorageClass      string   `env:"S3_STORAGE_CLASS"`
	Concurrency       int      `env:"UPLOAD_CONCURRENCY"`
	PartSizeMiB       int64    `env:"UPLOAD_PART_SIZE_MIB"`
	RegexTitle        bool     `env:"RECARCHIVER_REGEX_TITLE"`
	LogLevel          string   `env:"RECARCHIVER_LOG_LEVEL"`
	LogFormat         string   `env:"RECARCHIVER_LOG_FORMAT"`
}

// loadDotenv is a test seam for godotenv.Load.
var loadDotenv = godotenv.Load

// parseEnv loads the dotenv file (from -env, else cfg.EnvFile) and then
// overlays cfg with the process environment. A missing default dotenv file
// is ignored; a missing file named explicitly with -env is an error.
func parseEnv(cfg *Config, args []string) error {
	envFile := cfg.EnvFile
	explicit := false
	if f := flagx.StringFlag(args, "env"); f != "" {
		envFile, explicit = f, true
	}

	if envFile != "" {
		path, err := homedir.Expand(envFile)
		if err != nil {
			return err
		}
		if err := loadDotenv(path); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return err
			}
		}
		cfg.EnvFile = path
	}

	ec := EnvConfig{
		Roots:             cfg.Roots,
		S3Bucket:          cfg.S3Bucket,
		S3AccessKeyID:     cfg.S3AccessKeyID,
		S3SecretAccessKey: cfg.S3SecretAccessKey,
		S3Region:          cfg.S3Region,
		S3BaseEndpoint:    cfg.S3BaseEndpoint,
		S3UsePathStyle:    cfg.S3UsePathStyle,
		StorageClass:      cfg.StorageClass,
		Concurrency:       cfg.Concurrency,
		PartSizeMiB:       cfg.PartSizeMiB,
		RegexTitle:        cfg.RegexTitle,
		LogLevel:          cfg.LogLevel,
		LogFormat:         cfg.LogFormat,
	}

	if err := cleanenv.ReadEnv(&ec); err != nil {
		return err
	}

	cfg.Roots = ec.Roots
	cfg.S3Bucket = ec.S3Bucket
	cfg.S3AccessKeyID = ec.S3AccessKeyID
	cfg.S3SecretAccessKey = ec.S3SecretAccessKey
	cfg.S3Region = ec.S3Region
	cfg.S3BaseEndpoint = ec.S3BaseEndpoint
	cfg.S3UsePathStyle = ec.S3UsePathStyle
	cfg.StorageClass = ec.StorageClass
	cfg.Concurrency = ec.Concurrency
	cfg.PartSizeMiB = ec.PartSizeMiB
	cfg.RegexTitle = ec.RegexTitle
	cfg.LogLevel = ec.LogLevel
	cfg.LogFormat = ec.LogFormat

	return nil
}
