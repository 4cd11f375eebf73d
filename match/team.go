package match

import (
	"github.com/scholarch/expertmatch/core"
)

// SelectTeam picks a minimal team covering the query tags by greedy set
// cover over the matched experts.
//
// Each round selects the expert covering the most still-uncovered tags,
// breaking ties by the summed tag scores over those tags, then by overall
// rank score, then by ascending expert name. Selection stops when every
// coverable tag is covered; tags no matched expert covers are reported in
// NotFound in input order.
func SelectTeam(tags []string, results []*core.ExpertResult) *core.Team {
	uncovered := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		uncovered[tag] = struct{}{}
	}

	team := &core.Team{Members: []*core.TeamMember{}, NotFound: []string{}}
	remaining := append([]*core.ExpertResult(nil), results...)

	for len(uncovered) > 0 && len(remaining) > 0 {
		bestIdx := -1
		var bestCoverage []string
		var bestScoreSum float64

		for i, candidate := range remaining {
			var coverage []string
			var scoreSum float64
			for _, tag := range tags {
				if _, open := uncovered[tag]; !open {
					continue
				}
				if score, ok := candidate.TagScores[tag]; ok {
					coverage = append(coverage, tag)
					scoreSum += score
				}
			}
			if len(coverage) == 0 {
				continue
			}
			if bestIdx == -1 || betterPick(candidate, coverage, scoreSum, remaining[bestIdx], bestCoverage, bestScoreSum) {
				bestIdx = i
				bestCoverage = coverage
				bestScoreSum = scoreSum
			}
		}

		// Nobody covers anything left
		if bestIdx == -1 {
			break
		}

		picked := remaining[bestIdx]
		team.Members = append(team.Members, &core.TeamMember{
			Expert: picked.Expert,
			Tags:   bestCoverage,
		})
		for _, tag := range bestCoverage {
			delete(uncovered, tag)
		}
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	for _, tag := range tags {
		if _, open := uncovered[tag]; open {
			team.NotFound = append(team.NotFound, tag)
		}
	}

	return team
}

// betterPick reports whether candidate beats the current best under the
// (coverage size, tag score sum, rank score, name) ordering.
func betterPick(c *core.ExpertResult, cCov []string, cSum float64, b *core.ExpertResult, bCov []string, bSum float64) bool {
	if len(cCov) != len(bCov) {
		return len(cCov) > len(bCov)
	}
	if cSum != bSum {
		return cSum > bSum
	}
	if c.RankScore != b.RankScore {
		return c.RankScore > b.RankScore
	}
	return c.Expert.Name < b.Expert.Name
}
