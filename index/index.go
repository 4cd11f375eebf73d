package index

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/scholarch/expertmatch/ai"
	"github.com/scholarch/expertmatch/core"
)

// Index is an immutable snapshot of embedded expert profiles.
// It is built once from the corpus and read concurrently without locking;
// a corpus reload builds a fresh Index and publishes it through a Holder.
type Index struct {
	experts []*core.ExpertProfile
	allTags []string
	dim     int
}

// builder collects Build configuration.
type builder struct {
	maxAttempts int
	retryDelay  time.Duration
	logger      *slog.Logger
}

// Option configures an index build.
type Option func(*builder) error

// WithRetry makes the batch embedding call retry with exponential backoff.
// Default is a single attempt.
func WithRetry(maxAttempts int, baseDelay time.Duration) Option {
	return func(b *builder) error {
		if maxAttempts <= 0 {
			return ErrInvalidMaxAttempts
		}
		b.maxAttempts = maxAttempts
		b.retryDelay = baseDelay
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(b *builder) error {
		if logger == nil {
			logger = slog.Default()
		}
		b.logger = logger
		return nil
	}
}

// Build constructs an Index from raw corpus records.
//
// For each record, tags are merged across all entries and deduplicated;
// records whose merged tag set is empty are skipped entirely. All surviving
// tags are embedded in a single batch call, and each expert receives its
// tag vectors plus their arithmetic mean as centroid.
//
// Build fails atomically: if embedding fails, the error is returned and no
// partial index exists.
func Build(ctx context.Context, records []*core.ExpertRecord, embedder ai.Embedder, opts ...Option) (*Index, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	b := &builder{
		maxAttempts: 1,
		retryDelay:  time.Second,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}

	// First pass: derive profiles without vectors and flatten tags for
	// one batch embedding call.
	profiles := make([]*core.ExpertProfile, 0, len(records))
	var flatTags []string
	tagSet := make(map[string]bool)

	for _, record := range records {
		tags := record.MergedTags()
		if len(tags) == 0 {
			b.logger.Debug("skipping expert with no tags", "name", record.Name)
			continue
		}

		profiles = append(profiles, &core.ExpertProfile{
			Name:       record.Name,
			Department: record.Department,
			Position:   record.ResolvePosition(),
			ScholarID:  record.ResolveScholarID(),
			BaseURL:    record.BaseURL,
			Tags:       tags,
		})

		flatTags = append(flatTags, tags...)
		for _, tag := range tags {
			tagSet[tag] = true
		}
	}

	if len(profiles) == 0 {
		b.logger.Warn("index built with no experts")
		return &Index{}, nil
	}

	var vectors [][]float32
	embed := func() error {
		var err error
		vectors, err = embedder.EmbedTexts(ctx, flatTags)
		return err
	}
	if err := retryWithBackoff(ctx, embed, b.maxAttempts, b.retryDelay); err != nil {
		b.logger.Error("batch embedding failed, no index installed",
			"tagCount", len(flatTags), "err", err)
		return nil, err
	}

	if len(vectors) != len(flatTags) {
		return nil, fmt.Errorf("%w: %d tags, %d vectors", ErrEmbeddingCount, len(flatTags), len(vectors))
	}

	// Second pass: slice the flat vector list back per expert and compute
	// centroids.
	dim := len(vectors[0])
	offset := 0
	for _, profile := range profiles {
		n := len(profile.Tags)
		profile.TagVectors = vectors[offset : offset+n : offset+n]
		profile.Centroid = meanVector(profile.TagVectors, dim)
		offset += n
	}

	allTags := make([]string, 0, len(tagSet))
	for tag := range tagSet {
		allTags = append(allTags, tag)
	}
	sort.Strings(allTags)

	b.logger.Info("index built",
		"experts", len(profiles),
		"uniqueTags", len(allTags),
		"dim", dim)

	return &Index{
		experts: profiles,
		allTags: allTags,
		dim:     dim,
	}, nil
}

// Experts returns the embedded expert profiles.
// The returned slice and the profiles it holds must not be mutated.
// A nil index behaves like an empty one.
func (idx *Index) Experts() []*core.ExpertProfile {
	if idx == nil {
		return nil
	}
	return idx.experts
}

// AllTags returns the sorted set of every distinct tag present in the index.
func (idx *Index) AllTags() []string {
	if idx == nil {
		return nil
	}
	tags := make([]string, len(idx.allTags))
	copy(tags, idx.allTags)
	return tags
}

// Len returns the number of experts in the index.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.experts)
}

// Dim returns the embedding dimension, or 0 for an empty index.
func (idx *Index) Dim() int {
	if idx == nil {
		return 0
	}
	return idx.dim
}

// meanVector computes the arithmetic mean of a set of equal-length vectors.
func meanVector(vectors [][]float32, dim int) []float32 {
	mean := make([]float32, dim)
	if len(vectors) == 0 {
		return mean
	}
	for _, v := range vectors {
		for i, val := range v {
			mean[i] += val
		}
	}
	n := float32(len(vectors))
	for i := range mean {
		mean[i] /= n
	}
	return mean
}
