// Package config loads runtime configuration for recarchiver.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment (see parseEnv): the dotenv file named by -env (default
//     ".env", silently skipped when absent) is loaded without overriding
//     variables already set, then the process environment is read.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-r string   comma-separated storage roots
//	-b string   S3 bucket
//	-u string   S3 access key id
//	-p string   S3 secret access key
//	-g string   S3 region
//	-e string   S3 base endpoint (S3-compatible stores)
//	-path-style use path-style S3 addressing
//	-s string   storage class of uploaded objects
//	-n int      concurrent part uploads per file
//	-m int      multipart chunk size (MiB)
//	-regex      treat titles as raw regular expressions
//	-l string   log level (debug, info, warn, error)
//	-log-format text or json
//
// # Environment
//
//	RECORDED_PATHS           comma-separated storage roots
//	S3_BUCKET_NAME           (alias BUCKET_NAME)
//	AWS_ACCESS_KEY_ID        (alias ACCESS_KEY_ID)
//	AWS_SECRET_ACCESS_KEY    (alias SECRET_ACCESS_KEY)
//	AWS_REGION               (alias REGION)
//	S3_BASE_ENDPOINT, S3_USE_PATH_STYLE, S3_STORAGE_CLASS
//	UPLOAD_CONCURRENCY, UPLOAD_PART_SIZE_MIB
//	RECARCHIVER_REGEX_TITLE, RECARCHIVER_LOG_LEVEL, RECARCHIVER_LOG_FORMAT
//
// # JSON schema
//
// Keys absent from the file leave the earlier value untouched:
//
//	{
//	  "roots": ["/mnt/hgst4tb/recorded", "~/recorded"],
//	  "s3_bucket": "archive",
//	  "s3_region": "ap-northeast-1",
//	  "storage_class": "DEEP_ARCHIVE",
//	  "concurrency": 20,
//	  "part_size_mib": 30
//	}
package config
