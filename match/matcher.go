package match

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/scholarch/expertmatch/ai"
	"github.com/scholarch/expertmatch/core"
	"github.com/scholarch/expertmatch/index"
)

// DefaultThreshold is the minimum cosine similarity for a query tag to
// count as matched by one of an expert's tags.
const DefaultThreshold = 0.7

// DefaultTopN is the number of individually ranked experts in a report.
const DefaultTopN = 20

// Matcher scores experts against weighted query tags and assembles teams.
// It reads the index published by its Holder and holds no mutable state of
// its own, so a single Matcher serves concurrent requests.
type Matcher struct {
	holder    *index.Holder
	embedder  ai.Embedder
	extractor ai.TagExtractor
	threshold float64
	topN      int
	logger    *slog.Logger
}

// Option configures a Matcher.
type Option func(*Matcher) error

// WithThreshold sets the tag similarity threshold.
// Default is DefaultThreshold.
func WithThreshold(threshold float64) Option {
	return func(m *Matcher) error {
		m.threshold = threshold
		return nil
	}
}

// WithTopN sets how many individually ranked experts a report includes.
// Default is DefaultTopN.
func WithTopN(n int) Option {
	return func(m *Matcher) error {
		if n < 1 {
			n = DefaultTopN
		}
		m.topN = n
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(m *Matcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		m.logger = logger
		return nil
	}
}

// NewMatcher creates a new matcher reading the index published by holder.
func NewMatcher(holder *index.Holder, provider ai.Provider, opts ...Option) (*Matcher, error) {
	if holder == nil {
		return nil, ErrHolderRequired
	}
	if provider == nil {
		return nil, ErrProviderRequired
	}

	m := &Matcher{
		holder:    holder,
		embedder:  provider.Embedder(),
		extractor: provider.TagExtractor(),
		threshold: DefaultThreshold,
		topN:      DefaultTopN,
		logger:    slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Match scores every indexed expert against the weighted query tags.
//
// tags and weights must be the same length with positive weights; the
// query shape is validated before any computation. An empty tag list
// yields an empty result set, not an error. Experts with no tag score at
// or above the threshold are dropped from the output entirely.
//
// Results are sorted by rank score descending, with ties keeping index
// encounter order. Identical input against an unchanged index produces
// identical output.
func (m *Matcher) Match(ctx context.Context, tags []string, weights []float64, keyDomain map[string]float64) ([]*core.ExpertResult, error) {
	if err := core.ValidateQuery(tags, weights, m.threshold); err != nil {
		return nil, err
	}

	if len(tags) == 0 {
		return []*core.ExpertResult{}, nil
	}

	// Embed all query tags in one batch. An embedding failure fails the
	// whole request; partially scored results are never returned.
	tagVectors, err := m.embedder.EmbedTexts(ctx, tags)
	if err != nil {
		m.logger.Error("error embedding query tags", "count", len(tags), "err", err)
		return nil, err
	}
	if len(tagVectors) != len(tags) {
		return nil, fmt.Errorf("%w: %d tags, %d vectors", ErrEmbeddingCount, len(tags), len(tagVectors))
	}

	queryVector := weightedMean(tagVectors, weights)

	var totalWeight float64
	for _, w := range weights {
		totalWeight += w
	}

	experts := m.holder.Load().Experts()
	results := make([]*core.ExpertResult, 0, len(experts))

	for _, expert := range experts {
		semantic := cosine(queryVector, expert.Centroid) * 100

		var matchingTags []string
		tagScores := make(map[string]float64, len(tags))
		var matchedWeight float64

		for i, tag := range tags {
			best := -1.0
			cleared := false
			for j, expertVector := range expert.TagVectors {
				score := cosine(tagVectors[i], expertVector)
				if score > best {
					best = score
				}
				if score >= m.threshold {
					cleared = true
					matchingTags = append(matchingTags, expert.Tags[j])
				}
			}
			if cleared {
				matchedWeight += weights[i]
				tagScores[tag] = best
			}
		}

		// No tag cleared the threshold: a filtering outcome, not an error
		if len(matchingTags) == 0 {
			continue
		}

		weightedMatch := matchedWeight / totalWeight * 100

		results = append(results, &core.ExpertResult{
			Expert:        expert,
			Semantic:      round2(semantic),
			WeightedMatch: round2(weightedMatch),
			RankScore:     rankScore(semantic, weightedMatch, expert.Department, keyDomain),
			TagScores:     tagScores,
			MatchingTags:  matchingTags,
		})
	}

	// Stable keeps encounter order for equal rank scores
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RankScore > results[j].RankScore
	})

	m.logger.Debug("matched experts", "candidates", len(experts), "matched", len(results))

	return results, nil
}

// weightedMean computes the weight-normalized average of the given vectors.
func weightedMean(vectors [][]float32, weights []float64) []float32 {
	if len(vectors) == 0 {
		return nil
	}

	dim := len(vectors[0])
	mean := make([]float64, dim)
	var total float64
	for i, v := range vectors {
		w := weights[i]
		total += w
		for d, val := range v {
			mean[d] += w * float64(val)
		}
	}

	out := make([]float32, dim)
	if total == 0 {
		return out
	}
	for d := range mean {
		out[d] = float32(mean[d] / total)
	}
	return out
}

// cosine computes the cosine similarity of two vectors.
// Returns 0 for zero or mismatched vectors.
func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		av, bv := float64(a[i]), float64(b[i])
		dot += av * bv
		normA += av * av
		normB += bv * bv
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
