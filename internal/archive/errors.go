package archive

import "errors"

// ErrMissingBucket is returned when no destination bucket is configured.
var ErrMissingBucket = errors.New("s3 bucket is not configured")
