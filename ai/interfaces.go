package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity scoring.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// TagExtractor turns a free-text problem statement into required skill tags.
// Implementations must be thread-safe for concurrent use.
type TagExtractor interface {
	// ExtractTags analyzes a problem statement and extracts the required
	// skill tags in order of importance, the key domains needed to solve
	// the problem with their importance in [0, 1], and a short explanation.
	// At most MaxRequiredTags tags are returned.
	// Returns an error if extraction fails.
	ExtractTags(ctx context.Context, problemStatement string) (*ExtractedQuery, error)
}

// Provider aggregates AI services for convenient initialization and lifecycle management.
// A provider creates and manages Embedder and TagExtractor instances,
// ensuring they share configuration and resources appropriately.
type Provider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// TagExtractor returns the tag extraction service.
	// The returned TagExtractor is safe for concurrent use.
	TagExtractor() TagExtractor

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
