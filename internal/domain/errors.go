package domain

import "errors"

var (
	// ErrNotFound covers an unresolved slug or a missing record; terminal
	// for the public page, surfaced inline in the dashboard.
	ErrNotFound = errors.New("not found")

	// ErrUnauthenticated means no valid session; admin routes redirect to login.
	ErrUnauthenticated = errors.New("unauthenticated")

	ErrSlugTaken           = errors.New("slug already taken")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrStorageWrite        = errors.New("storage write failed")

	// ErrNotConfigured is returned while the store connection parameters
	// are missing; the dashboard degrades to a setup panel.
	ErrNotConfigured = errors.New("store not configured")
)
