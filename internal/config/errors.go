package config

import "errors"

var (
	ErrNoRoots             = errors.New("no storage roots configured")
	ErrInvalidConcurrency  = errors.New("invalid upload concurrency")
	ErrInvalidPartSize     = errors.New("invalid part size")
	ErrInvalidStorageClass = errors.New("invalid storage class")
)
