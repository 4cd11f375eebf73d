package ingest

import "errors"

var (
	// ErrRepositoryRequired is returned when an expert repository is not provided.
	ErrRepositoryRequired = errors.New("expert repository required")

	// ErrInvalidCorpus is returned when corpus data cannot be decoded.
	ErrInvalidCorpus = errors.New("invalid corpus data")
)
