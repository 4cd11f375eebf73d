package match

import (
	"fmt"
	"strings"

	"github.com/scholarch/expertmatch/core"
)

const (
	// textSimilarityFloor is the sequence similarity above which two tags
	// are considered near-duplicates.
	textSimilarityFloor = 0.8

	// expertOverlapFloor is the expert-set overlap above which two tags are
	// considered coverable by the same experts.
	expertOverlapFloor = 0.9
)

// GroupTags partitions query tags into groups of near-duplicates.
//
// Two tags belong together when their text similarity exceeds
// textSimilarityFloor or when the experts covering them overlap by more
// than expertOverlapFloor. Grouping is single-pass: each ungrouped tag
// seeds a group and absorbs every later ungrouped tag similar to the
// seed. Tags similar to an absorbed member but not to the seed land in
// their own later group; groups are seeded in input order.
func GroupTags(tags []string, expertsByTag map[string][]string) []core.TagGroup {
	groups := make([]core.TagGroup, 0, len(tags))
	grouped := make([]bool, len(tags))

	for i, seed := range tags {
		if grouped[i] {
			continue
		}
		group := core.TagGroup{seed}
		grouped[i] = true

		for j := i + 1; j < len(tags); j++ {
			if grouped[j] {
				continue
			}
			if similarTags(seed, tags[j], expertsByTag) {
				group = append(group, tags[j])
				grouped[j] = true
			}
		}
		groups = append(groups, group)
	}

	return groups
}

// similarTags reports whether two tags are near-duplicates by text or by
// the experts that cover them.
func similarTags(a, b string, expertsByTag map[string][]string) bool {
	if sequenceRatio(strings.ToLower(a), strings.ToLower(b)) > textSimilarityFloor {
		return true
	}
	return expertOverlap(expertsByTag[a], expertsByTag[b]) > expertOverlapFloor
}

// expertOverlap computes |a ∩ b| / (|a ∪ b| + ε) over expert name sets.
func expertOverlap(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}

	setA := make(map[string]struct{}, len(a))
	for _, name := range a {
		setA[name] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, name := range b {
		setB[name] = struct{}{}
	}

	union := len(setA)
	var intersection int
	for name := range setB {
		if _, ok := setA[name]; ok {
			intersection++
		} else {
			union++
		}
	}

	return float64(intersection) / (float64(union) + 1e-6)
}

// GroupingMessage renders a human-readable note for every group with two
// or more tags. Returns "" when no tags were grouped.
func GroupingMessage(groups []core.TagGroup) string {
	var rendered []string
	for _, group := range groups {
		if len(group) > 1 {
			rendered = append(rendered, fmt.Sprintf("(%s)", strings.Join(group, ", ")))
		}
	}
	if len(rendered) == 0 {
		return ""
	}
	return "Some input tags were grouped as they are very similar or can be handled by the same expert: " +
		strings.Join(rendered, "  ")
}
