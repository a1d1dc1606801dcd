package repository

import "storeradar/internal/errors"

// Sentinel errors returned by repository implementations.
var (
	ErrPreferenceNotFound   = errors.New("user preference not found")
	ErrNoPreviousInspectDay = errors.New("no earlier inspect day in prices")
)
