package vectordb

import "errors"

var (
	// ErrCollectionNotFound is returned when a collection name cannot be
	// resolved. Use errors.Is to detect it on wrapped errors.
	ErrCollectionNotFound = errors.New("collection not found")
)
