package config

import (
	"flag"
	"io"
	"strings"

	"github.com/dmitrijs2005/recarchiver/internal/flagx"
)

// settingFlags are the flags parsed by parseFlags.
var settingFlags = flagx.Set{
	Valued:   []string{"-r", "-b", "-u", "-p", "-g", "-e", "-s", "-n", "-m", "-l", "-log-format"},
	Switches: []string{"-path-style", "-regex"},
}

// Flags lists every command-line flag recarchiver understands. The CLI uses
// it to tell flags apart from the positional command selection.
var Flags = flagx.Set{
	Valued:   append([]string{"-c", "-config", "-env"}, settingFlags.Valued...),
	Switches: settingFlags.Switches,
}

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-r string   comma-separated storage roots
//	-b string   S3 bucket
//	-u string   S3 access key id
//	-p string   S3 secret access key
//	-g string   S3 region
//	-e string   S3 base endpoint
//	-path-style path-style addressing
//	-s string   storage class
//	-n int      concurrent part uploads
//	-m int      part size (MiB)
//	-regex      raw regular expression titles
//	-l string   log level
//	-log-format text or json
//
// -c/-config and -env are consumed by parseJson and parseEnv.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("recarchiver", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	roots := fs.String("r", "", "comma-separated storage roots")
	fs.StringVar(&cfg.S3Bucket, "b", cfg.S3Bucket, "S3 bucket")
	fs.StringVar(&cfg.S3AccessKeyID, "u", cfg.S3AccessKeyID, "S3 access key id")
	fs.StringVar(&cfg.S3SecretAccessKey, "p", cfg.S3SecretAccessKey, "S3 secret access key")
	fs.StringVar(&cfg.S3Region, "g", cfg.S3Region, "S3 region")
	fs.StringVar(&cfg.S3BaseEndpoint, "e", cfg.S3BaseEndpoint, "S3 base endpoint")
	fs.BoolVar(&cfg.S3UsePathStyle, "path-style", cfg.S3UsePathStyle, "use path-style S3 addressing")
	fs.StringVar(&cfg.StorageClass, "s", cfg.StorageClass, "storage class of uploaded objects")
	fs.IntVar(&cfg.Concurrency, "n", cfg.Concurrency, "concurrent part uploads per file")
	fs.Int64Var(&cfg.PartSizeMiB, "m", cfg.PartSizeMiB, "multipart chunk size (in MiB)")
	fs.BoolVar(&cfg.RegexTitle, "regex", cfg.RegexTitle, "treat titles as raw regular expressions")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format (text or json)")

	if err := fs.Parse(settingFlags.Filter(args)); err != nil {
		return err
	}

	// Roots from JSON or env may contain commas, so only -r replaces them.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "r" {
			cfg.Roots = strings.Split(*roots, ",")
		}
	})
	return nil
}
