package wordlist

import "errors"

var (
	ErrFailedToOpen   = errors.New("failed to open word list")
	ErrFailedToRead   = errors.New("failed to read word list")
	ErrLineTooLong    = errors.New("word list line exceeds maximum length")
	ErrNilSource      = errors.New("word list source is nil")
	ErrInvalidS3URL   = errors.New("invalid s3 url, expected s3://bucket/key")
	ErrInvalidConfig  = errors.New("invalid s3 configuration")
	ErrFailedToConfig = errors.New("failed to load AWS config")

	// S3 errors
	ErrObjectNotFound     = errors.New("word list object not found")
	ErrBucketNotFound     = errors.New("bucket not found")
	ErrAccessDenied       = errors.New("access denied")
	ErrServiceUnavailable = errors.New("service temporarily unavailable")

	ErrOperationTimeout  = errors.New("operation timed out")
	ErrOperationCanceled = errors.New("operation canceled")
)
