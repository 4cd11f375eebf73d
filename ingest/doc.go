// Package ingest loads expert corpus files into storage.
//
// The Loader type decodes the corpus wire format (one object per expert,
// with tag extractions collected from different sources) into domain
// records, validates them, and writes them in concurrent batches through
// a worker pool. Invalid records are skipped and counted, not fatal.
package ingest
