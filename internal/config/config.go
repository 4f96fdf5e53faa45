package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/mitchellh/go-homedir"
)

// MiB is the unit of PartSizeMiB.
const MiB = 1024 * 1024

// minPartSizeMiB is the smallest part S3 accepts for a multipart upload.
const minPartSizeMiB = 5

// Config holds runtime settings for recarchiver.
//
// Fields:
//   - Roots: ordered storage roots scanned for recorded files.
//   - S3Bucket / S3Region / S3BaseEndpoint / S3UsePathStyle: object storage target.
//   - S3AccessKeyID / S3SecretAccessKey: static credentials; when both are
//     empty the SDK default credential chain is used.
//   - StorageClass: storage class applied to uploaded objects.
//   - Concurrency / PartSizeMiB: multipart transfer tuning.
//   - EnvFile: optional dotenv file read before the process environment.
//   - RegexTitle: treat search titles as raw regular expressions.
//   - LogLevel / LogFormat: slog level name and "text" or "json".
type Config struct {
	Roots             []string
	S3Bucket          string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3Region          string
	S3BaseEndpoint    string
	S3UsePathStyle    bool
	StorageClass      string
	Concurrency       int
	PartSizeMiB       int64
	EnvFile           string
	RegexTitle        bool
	LogLevel          string
	LogFormat         string
}

// DefaultRoots are the mount points of the recording volumes.
var DefaultRoots = []string{
	"/app/cache_recorded",
	"/app/recorded",
	"/app/recorded2",
	"/app/recorded3",
	"/app/recorded4",
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.Roots = slices.Clone(DefaultRoots)
	c.S3Region = "ap-northeast-1"
	c.StorageClass = string(types.StorageClassDeepArchive)
	c.Concurrency = 20
	c.PartSizeMiB = 30
	c.EnvFile = ".env"
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// PartSize returns the multipart chunk size in bytes.
func (c *Config) PartSize() int64 {
	return c.PartSizeMiB * MiB
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if -c/-config is given), the environment (dotenv file first) and
// command-line flags. Later sources take precedence over earlier ones.
// args excludes the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	if err := parseEnv(cfg, args); err != nil {
		return nil, fmt.Errorf("env config: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize trims and home-expands the roots.
func (c *Config) normalize() error {
	roots := make([]string, 0, len(c.Roots))
	for _, r := range c.Roots {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		expanded, err := homedir.Expand(r)
		if err != nil {
			return fmt.Errorf("expand root %q: %w", r, err)
		}
		roots = append(roots, expanded)
	}
	c.Roots = roots
	return nil
}

// Validate reports the first invalid setting. The bucket is checked only
// when an uploader is built, so search and delete work without S3 settings.
func (c *Config) Validate() error {
	if len(c.Roots) == 0 {
		return ErrNoRoots
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidConcurrency, c.Concurrency)
	}
	if c.PartSizeMiB < minPartSizeMiB {
		return fmt.Errorf("%w: %d MiB, minimum is %d MiB", ErrInvalidPartSize, c.PartSizeMiB, minPartSizeMiB)
	}
	if !slices.Contains(types.StorageClass("").Values(), types.StorageClass(c.StorageClass)) {
		return fmt.Errorf("%w: %q", ErrInvalidStorageClass, c.StorageClass)
	}
	return nil
}
