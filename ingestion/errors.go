package ingestion

import "errors"

var (
	// ErrCatalogRequired is returned when a candidate catalog is not provided.
	ErrCatalogRequired = errors.New("candidate catalog required")
)
