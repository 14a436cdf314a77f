package potfile

import "errors"

var (
	ErrInvalidEntry  = errors.New("potfile: token or secret cannot be stored")
	ErrFailedToRead  = errors.New("potfile: failed to read")
	ErrFailedToWrite = errors.New("potfile: failed to write")

	ErrFailedToParseRedisConnString = errors.New("failed to parse redis connection string")
	ErrRedisNotReady                = errors.New("redis did not become ready within the given time period")
)
