// Package ingestion provides bulk loading of candidate sets into a
// catalog.
//
// The Loader type normalizes incoming candidates (content-based IDs,
// popularity clamping), skips malformed records, and writes batches
// concurrently using a worker pool. A malformed candidate costs one
// record, never the whole load.
package ingestion
