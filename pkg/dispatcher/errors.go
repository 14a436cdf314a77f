package dispatcher

import "errors"

var (
	ErrInvalidWorkerCount = errors.New("dispatcher: worker count must be at least 1")
	ErrNilToken           = errors.New("dispatcher: token is nil")
	ErrAlreadyRunning     = errors.New("dispatcher: a run is already in progress")
	ErrCanceled           = errors.New("dispatcher: run canceled")
	ErrNotFound           = errors.New("dispatcher: no candidate matched the signature")
)
