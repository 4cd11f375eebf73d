package match

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholarch/expertmatch/ai"
	"github.com/scholarch/expertmatch/ai/mock"
	"github.com/scholarch/expertmatch/core"
)

func TestLinearWeights(t *testing.T) {
	assert.Empty(t, LinearWeights(0))
	assert.Equal(t, []float64{1.0}, LinearWeights(1))

	w := LinearWeights(2)
	assert.InDelta(t, 1.0, w[0], 1e-9)
	assert.InDelta(t, 0.7, w[1], 1e-9)

	w = LinearWeights(4)
	require.Len(t, w, 4)
	assert.InDelta(t, 1.0, w[0], 1e-9)
	assert.InDelta(t, 0.9, w[1], 1e-9)
	assert.InDelta(t, 0.8, w[2], 1e-9)
	assert.InDelta(t, 0.7, w[3], 1e-9)
	for i := 1; i < len(w); i++ {
		assert.Less(t, w[i], w[i-1])
	}
}

// recordingMonitor captures the order of analysis hooks.
type recordingMonitor struct {
	calls []string
}

func (r *recordingMonitor) Start(_ string) { r.calls = append(r.calls, "start") }
func (r *recordingMonitor) AfterTagExtraction(_ []string, _ map[string]float64) {
	r.calls = append(r.calls, "extract")
}
func (r *recordingMonitor) AfterMatching(_ []*core.ExpertResult) {
	r.calls = append(r.calls, "match")
}
func (r *recordingMonitor) AfterGrouping(_ []core.TagGroup) { r.calls = append(r.calls, "group") }
func (r *recordingMonitor) AfterTeamSelection(_ *core.Team) { r.calls = append(r.calls, "team") }
func (r *recordingMonitor) Finish(_ *core.Report)           { r.calls = append(r.calls, "finish") }

func analyzeFixture(t *testing.T) *Matcher {
	t.Helper()
	vectors := map[string][]float32{
		"federated learning":   unit(4, 0),
		"differential privacy": unit(4, 1),
	}
	holder := buildHolder(t, vectors,
		record("Ada", "Computer Science", "federated learning"),
		record("Grace", "Computer Science", "differential privacy"))

	extractor := mock.NewMockTagExtractor()
	extractor.Result = &ai.ExtractedQuery{
		RequiredTags: []string{"federated learning", "differential privacy"},
		KeyDomain:    map[string]float64{"Computer Science": 0.9},
		Explanation:  "privacy-preserving distributed training",
	}

	provider := mock.NewMockProviderWithServices(mock.NewVectorEmbedder(vectors), extractor)
	m, err := NewMatcher(holder, provider)
	require.NoError(t, err)
	return m
}

func TestAnalyzeFullReport(t *testing.T) {
	m := analyzeFixture(t)

	report, err := m.Analyze(context.Background(), "train a shared model without sharing patient data")
	require.NoError(t, err)

	assert.Equal(t, []string{"federated learning", "differential privacy"}, report.Tags)
	assert.InDelta(t, 1.0, report.Weights[0], 1e-9)
	assert.InDelta(t, 0.7, report.Weights[1], 1e-9)
	assert.Equal(t, "privacy-preserving distributed training", report.Explanation)

	// Each expert covers exactly one tag, so the team needs both.
	require.NotNil(t, report.Team)
	require.Len(t, report.Team.Members, 2)
	assert.Equal(t, "Ada", report.Team.Members[0].Expert.Name)
	assert.Equal(t, []string{"federated learning"}, report.Team.Members[0].Tags)
	assert.Equal(t, "Grace", report.Team.Members[1].Expert.Name)
	assert.Equal(t, []string{"differential privacy"}, report.Team.Members[1].Tags)
	assert.Empty(t, report.Team.NotFound)

	assert.Len(t, report.Individual, 2)

	require.Contains(t, report.ByTag, "federated learning")
	require.Len(t, report.ByTag["federated learning"], 1)
	assert.Equal(t, "Ada", report.ByTag["federated learning"][0].Expert.Name)

	// Dissimilar tags with disjoint expert sets stay ungrouped.
	assert.Len(t, report.Groups, 2)
	assert.Empty(t, report.GroupingMessage)

	assert.GreaterOrEqual(t, report.Timing.Total, report.Timing.Extract+report.Timing.Match)
}

func TestAnalyzeMonitorHookOrder(t *testing.T) {
	m := analyzeFixture(t)
	monitor := &recordingMonitor{}

	_, err := m.AnalyzeWithMonitor(context.Background(), "problem", monitor)
	require.NoError(t, err)

	assert.Equal(t, []string{"start", "extract", "match", "group", "team", "finish"}, monitor.calls)
}

func TestAnalyzeNoTagsExtracted(t *testing.T) {
	m := analyzeFixture(t)
	m.extractor = mock.NewMockTagExtractor() // empty result

	_, err := m.Analyze(context.Background(), "gibberish")
	assert.ErrorIs(t, err, ErrNoTagsExtracted)
}

func TestAnalyzeExtractionFailure(t *testing.T) {
	m := analyzeFixture(t)
	wantErr := errors.New("model unavailable")
	extractor := mock.NewMockTagExtractor()
	extractor.ExtractTagsFunc = func(ctx context.Context, problemStatement string) (*ai.ExtractedQuery, error) {
		return nil, wantErr
	}
	m.extractor = extractor

	_, err := m.Analyze(context.Background(), "problem")
	assert.ErrorIs(t, err, wantErr)
}

func TestAnalyzeTrimsTagBudget(t *testing.T) {
	vectors := map[string][]float32{"t0": unit(4, 0)}
	holder := buildHolder(t, vectors, record("Ada", "CS", "t0"))

	over := make([]string, core.MaxQueryTags+3)
	for i := range over {
		over[i] = "t0"
	}
	extractor := mock.NewMockTagExtractor()
	extractor.Result = &ai.ExtractedQuery{RequiredTags: over}

	provider := mock.NewMockProviderWithServices(mock.NewVectorEmbedder(vectors), extractor)
	m, err := NewMatcher(holder, provider)
	require.NoError(t, err)

	report, err := m.Analyze(context.Background(), "problem")
	require.NoError(t, err)
	assert.Len(t, report.Tags, core.MaxQueryTags)
	assert.Len(t, report.Weights, core.MaxQueryTags)
}

func TestAnalyzeUnmatchedTagGetsEmptyLeaderboard(t *testing.T) {
	vectors := map[string][]float32{
		"ml":      unit(4, 0),
		"unknown": unit(4, 3),
	}
	holder := buildHolder(t, vectors, record("Ada", "CS", "ml"))

	extractor := mock.NewMockTagExtractor()
	extractor.Result = &ai.ExtractedQuery{RequiredTags: []string{"ml", "unknown"}}

	provider := mock.NewMockProviderWithServices(mock.NewVectorEmbedder(vectors), extractor)
	m, err := NewMatcher(holder, provider)
	require.NoError(t, err)

	report, err := m.Analyze(context.Background(), "problem")
	require.NoError(t, err)

	require.Contains(t, report.ByTag, "unknown")
	assert.Empty(t, report.ByTag["unknown"])
	assert.Equal(t, []string{"unknown"}, report.Team.NotFound)
}

func TestAnalyzeTopNLimit(t *testing.T) {
	vectors := map[string][]float32{"ml": unit(4, 0)}
	records := []*core.ExpertRecord{}
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		records = append(records, record(name, "CS", "ml"))
	}
	holder := buildHolder(t, vectors, records...)

	extractor := mock.NewMockTagExtractor()
	extractor.Result = &ai.ExtractedQuery{RequiredTags: []string{"ml"}}

	provider := mock.NewMockProviderWithServices(mock.NewVectorEmbedder(vectors), extractor)
	m, err := NewMatcher(holder, provider, WithTopN(3))
	require.NoError(t, err)

	report, err := m.Analyze(context.Background(), "problem")
	require.NoError(t, err)
	assert.Len(t, report.Individual, 3)

	// Leaderboards and team selection still see everyone.
	assert.Len(t, report.ByTag["ml"], 5)
}
