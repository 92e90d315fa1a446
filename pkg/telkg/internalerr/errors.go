package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrEmptyInput       = errors.New("input text is empty")
	ErrDocumentTooLarge = errors.New("document exceeds size limit")
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrInvalidMode      = errors.New("invalid sandhi mode")
	ErrNotFound         = errors.New("not found")
	ErrStoreUnavailable = errors.New("store unavailable")
)
