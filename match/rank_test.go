package match

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func rawFusion(semantic, weightedMatch float64) float64 {
	return (math.Pow(semantic, semanticExponent) + math.Pow(weightedMatch, matchExponent)) / 2
}

func TestRankScoreWithoutKeyDomain(t *testing.T) {
	// Absent mapping means every department gets the same fixed boost.
	want := round2(rawFusion(80, 60) * (1 + defaultDomainScore*defaultDomainWeight) / 100)

	got := rankScore(80, 60, "Computer Science", nil)
	assert.Equal(t, want, got)

	// Empty map behaves like nil
	assert.Equal(t, got, rankScore(80, 60, "Computer Science", map[string]float64{}))

	// Department is irrelevant without a mapping
	assert.Equal(t, got, rankScore(80, 60, "History", nil))
}

func TestRankScoreDomainPrefixMatch(t *testing.T) {
	keyDomain := map[string]float64{
		"Computer Science (AI, systems)": 0.95,
	}

	// The parenthetical qualifier is stripped before substring matching,
	// case-insensitively.
	matched := rankScore(80, 60, "Dept. of computer science", keyDomain)
	unmatched := rankScore(80, 60, "Mathematics", keyDomain)

	wantMatched := round2(rawFusion(80, 60) * (1 + 0.95*absentDomainWeight) / 100)
	wantUnmatched := round2(rawFusion(80, 60) * (1 + defaultDomainScore*absentDomainWeight) / 100)
	assert.Equal(t, wantMatched, matched)
	assert.Equal(t, wantUnmatched, unmatched)
}

func TestRankScoreExactDepartmentWeight(t *testing.T) {
	keyDomain := map[string]float64{
		"Physics": 0.9,
	}

	// An exact department hit supplies both the score and the weight.
	got := rankScore(50, 50, "Physics", keyDomain)
	want := round2(rawFusion(50, 50) * (1 + 0.9*0.9) / 100)
	assert.Equal(t, want, got)
}

func TestRankScoreDeterministicAcrossMapOrder(t *testing.T) {
	// Two domains whose prefixes both appear in the department string;
	// sorted iteration makes the pick stable.
	keyDomain := map[string]float64{
		"Science (general)":          0.4,
		"Computer Science (applied)": 0.8,
	}
	want := rankScore(70, 70, "School of Computer Science", keyDomain)
	for range 20 {
		assert.Equal(t, want, rankScore(70, 70, "School of Computer Science", keyDomain))
	}
	// "Computer Science" sorts before "Science" and wins.
	assert.Equal(t, round2(rawFusion(70, 70)*(1+0.8*absentDomainWeight)/100), want)
}

func TestRankScoreMonotonicInSignals(t *testing.T) {
	base := rankScore(60, 60, "CS", nil)
	assert.Greater(t, rankScore(70, 60, "CS", nil), base)
	assert.Greater(t, rankScore(60, 70, "CS", nil), base)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.23, round2(1.234))
	assert.Equal(t, 1.24, round2(1.235))
	assert.Equal(t, 0.0, round2(0.0049))
	assert.Equal(t, -2.5, round2(-2.5))
}
