package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated by content-based hashing of the expert name.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// MaxQueryTags is the maximum number of tags accepted in a single query.
const MaxQueryTags = 8

// ExpertEntry is one extraction sub-entry of a corpus record. A record may
// carry several entries collected from different sources; tags are merged
// across all of them. Position and ScholarID are nil when the source did not
// provide them.
type ExpertEntry struct {
	Tags      []string `json:"tags"`
	Position  *string  `json:"position,omitempty"`
	ScholarID *string  `json:"scholar_id,omitempty"`
}

// ExpertRecord is a raw corpus record as stored and loaded.
// Profiles are derived from records at index build time.
type ExpertRecord struct {
	Name       string        `json:"name"`
	Department string        `json:"department"`
	BaseURL    string        `json:"base_url"`
	Entries    []ExpertEntry `json:"entries"`
}

// MergedTags returns the record's tags merged across all entries,
// deduplicated, preserving first-seen order.
func (r *ExpertRecord) MergedTags() []string {
	seen := make(map[string]bool)
	var tags []string
	for _, entry := range r.Entries {
		for _, tag := range entry.Tags {
			if seen[tag] {
				continue
			}
			seen[tag] = true
			tags = append(tags, tag)
		}
	}
	return tags
}

// ResolvePosition returns the position of the last entry that carries one,
// or "" if no entry does.
func (r *ExpertRecord) ResolvePosition() string {
	position := ""
	for _, entry := range r.Entries {
		if entry.Position != nil {
			position = *entry.Position
		}
	}
	return position
}

// ResolveScholarID returns the external scholar id of the last entry that
// carries one, or "" if no entry does.
func (r *ExpertRecord) ResolveScholarID() string {
	id := ""
	for _, entry := range r.Entries {
		if entry.ScholarID != nil {
			id = *entry.ScholarID
		}
	}
	return id
}

// ExpertProfile is the embedded form of an expert, held by the index.
// Profiles are immutable once built: an index rebuild produces new profiles
// rather than mutating existing ones.
type ExpertProfile struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	Position   string `json:"position"`
	ScholarID  string `json:"scholar_id,omitempty"`
	BaseURL    string `json:"base_url"`

	// Tags is the deduplicated merged tag set. TagVectors holds one
	// embedding per tag, index-aligned with Tags. Centroid is the
	// arithmetic mean of TagVectors.
	Tags       []string    `json:"tags"`
	TagVectors [][]float32 `json:"-"`
	Centroid   []float32   `json:"-"`
}

// ScholarURL returns the external profile URL, or "" when the expert has no
// scholar id.
func (p *ExpertProfile) ScholarURL() string {
	if p.ScholarID == "" {
		return ""
	}
	return "https://scholar.google.com/citations?user=" + p.ScholarID + "&hl=en"
}

// ExpertResult is a scored expert for one query.
// An expert with no tag score above the threshold is never represented as a
// result; such experts are filtered out entirely.
type ExpertResult struct {
	Expert *ExpertProfile `json:"expert"`

	// Semantic is cosine(query vector, centroid) scaled to 0..100.
	Semantic float64 `json:"semantic"`
	// WeightedMatch is the fraction of query weight satisfied by tags that
	// cleared the similarity threshold, scaled to 0..100.
	WeightedMatch float64 `json:"weighted_match"`
	// RankScore is the fused ordering score, rounded to two decimals.
	RankScore float64 `json:"rank_score"`

	// TagScores maps each surviving query tag to its best similarity.
	TagScores map[string]float64 `json:"tag_scores"`
	// MatchingTags lists the expert's own tag labels that cleared the
	// threshold for some query tag.
	MatchingTags []string `json:"matching_tags"`
}

// TagGroup is a cluster of near-duplicate query tags. The first element is
// the group's seed and is always a member of its own group.
type TagGroup []string

// TeamMember pairs a selected expert with the query tags assigned to it.
type TeamMember struct {
	Expert *ExpertProfile `json:"expert"`
	Tags   []string       `json:"tags"`
}

// Team is the result of greedy team selection. Member tag subsets are
// pairwise disjoint and their union with NotFound equals the query tag set.
type Team struct {
	Members  []*TeamMember `json:"members"`
	NotFound []string      `json:"not_found_tags"`
}

// TagLeader is one entry of a per-tag expert leaderboard.
type TagLeader struct {
	Expert *ExpertProfile `json:"expert"`
	Score  float64        `json:"score"`
}

// Timing records how long each stage of an analysis took.
type Timing struct {
	Extract time.Duration `json:"extract"`
	Match   time.Duration `json:"match"`
	Total   time.Duration `json:"total"`
}

// Report is the full output of analyzing a problem statement.
type Report struct {
	Tags        []string           `json:"tags"`
	Weights     []float64          `json:"weights"`
	KeyDomain   map[string]float64 `json:"key_domain,omitempty"`
	Explanation string             `json:"explanation,omitempty"`

	Team       *Team                  `json:"team"`
	Individual []*ExpertResult        `json:"individual"`
	ByTag      map[string][]TagLeader `json:"experts_by_tag"`

	Groups          []TagGroup `json:"groups"`
	GroupingMessage string     `json:"grouping_message,omitempty"`

	Timing Timing `json:"timing"`
}
