package match

import (
	"context"
	"sort"
	"time"

	"github.com/scholarch/expertmatch/core"
)

// LinearWeights assigns descending importance to n extracted tags,
// linearly spaced from 1.0 for the first to 0.7 for the last.
// A single tag gets weight 1.0.
func LinearWeights(n int) []float64 {
	weights := make([]float64, n)
	if n == 0 {
		return weights
	}
	if n == 1 {
		weights[0] = 1.0
		return weights
	}
	step := (1.0 - 0.7) / float64(n-1)
	for i := range weights {
		weights[i] = 1.0 - step*float64(i)
	}
	return weights
}

// Analyze runs the full pipeline on a free-text problem statement:
// tag extraction, expert matching, tag grouping, team selection and
// per-tag leaderboards.
func (m *Matcher) Analyze(ctx context.Context, problem string) (*core.Report, error) {
	return m.AnalyzeWithMonitor(ctx, problem, nil)
}

// AnalyzeWithMonitor is Analyze with observation hooks. A nil monitor is
// replaced with a no-op one.
func (m *Matcher) AnalyzeWithMonitor(ctx context.Context, problem string, monitor AnalysisMonitor) (*core.Report, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	started := time.Now()
	monitor.Start(problem)

	extracted, err := m.extractor.ExtractTags(ctx, problem)
	if err != nil {
		m.logger.Error("error extracting tags", "err", err)
		return nil, err
	}
	extractDone := time.Now()

	tags := extracted.RequiredTags
	if len(tags) > core.MaxQueryTags {
		tags = tags[:core.MaxQueryTags]
	}
	if len(tags) == 0 {
		return nil, ErrNoTagsExtracted
	}
	monitor.AfterTagExtraction(tags, extracted.KeyDomain)

	weights := LinearWeights(len(tags))

	results, err := m.Match(ctx, tags, weights, extracted.KeyDomain)
	if err != nil {
		return nil, err
	}
	matchDone := time.Now()
	monitor.AfterMatching(results)

	byTag := leaderboards(tags, results)

	expertsByTag := make(map[string][]string, len(tags))
	for tag, leaders := range byTag {
		names := make([]string, 0, len(leaders))
		for _, leader := range leaders {
			names = append(names, leader.Expert.Name)
		}
		expertsByTag[tag] = names
	}

	groups := GroupTags(tags, expertsByTag)
	monitor.AfterGrouping(groups)

	team := SelectTeam(tags, results)
	monitor.AfterTeamSelection(team)

	individual := results
	if len(individual) > m.topN {
		individual = individual[:m.topN]
	}

	report := &core.Report{
		Tags:            tags,
		Weights:         weights,
		KeyDomain:       extracted.KeyDomain,
		Explanation:     extracted.Explanation,
		Team:            team,
		Individual:      individual,
		ByTag:           byTag,
		Groups:          groups,
		GroupingMessage: GroupingMessage(groups),
		Timing: core.Timing{
			Extract: extractDone.Sub(started),
			Match:   matchDone.Sub(extractDone),
			Total:   time.Since(started),
		},
	}
	monitor.Finish(report)

	m.logger.Info("analysis complete",
		"tags", len(tags),
		"matched", len(results),
		"team", len(team.Members),
		"notFound", len(team.NotFound),
		"took", report.Timing.Total)

	return report, nil
}

// leaderboards builds the per-tag expert leaderboards. Every query tag
// gets an entry, empty when nobody matched it. Each leaderboard is sorted
// by the tag's similarity score, then by overall rank score.
func leaderboards(tags []string, results []*core.ExpertResult) map[string][]core.TagLeader {
	byTag := make(map[string][]core.TagLeader, len(tags))
	for _, tag := range tags {
		leaders := []core.TagLeader{}
		for _, result := range results {
			if score, ok := result.TagScores[tag]; ok {
				leaders = append(leaders, core.TagLeader{Expert: result.Expert, Score: score})
			}
		}
		// results arrive rank-ordered, so stable sort keeps rank as the
		// secondary key
		sort.SliceStable(leaders, func(i, j int) bool {
			return leaders[i].Score > leaders[j].Score
		})
		byTag[tag] = leaders
	}
	return byTag
}
