package match

import (
	"math"
	"sort"
	"strings"
)

// Rank fusion constants. These are empirically tuned against reference
// rankings; changing any of them changes every score in the system.
const (
	semanticExponent = 2.1
	matchExponent    = 2.0

	defaultDomainScore  = 2.3
	defaultDomainWeight = 0.5
	absentDomainWeight  = 0.1
)

// rankScore fuses the semantic and weighted-match signals with a
// domain-importance boost into a single ordering score, rounded to two
// decimals.
//
// With no keyDomain mapping the boost degrades to the fixed defaults and is
// identical for every expert. With a mapping, the domain score comes from
// the first mapping entry (in sorted domain-name order, for determinism)
// whose name prefix (the text before any parenthetical qualifier,
// compared case-insensitively) appears inside the expert's department
// string; the
// domain weight is the mapping value for the exact department, or a small
// default.
func rankScore(semantic, weightedMatch float64, department string, keyDomain map[string]float64) float64 {
	raw := (math.Pow(semantic, semanticExponent) + math.Pow(weightedMatch, matchExponent)) / 2

	domainScore := defaultDomainScore
	domainWeight := defaultDomainWeight

	if len(keyDomain) > 0 {
		deptLower := strings.ToLower(department)

		domains := make([]string, 0, len(keyDomain))
		for domain := range keyDomain {
			domains = append(domains, domain)
		}
		sort.Strings(domains)

		for _, domain := range domains {
			prefix := strings.TrimSpace(strings.ToLower(strings.SplitN(domain, "(", 2)[0]))
			if strings.Contains(deptLower, prefix) {
				domainScore = keyDomain[domain]
				break
			}
		}

		domainWeight = absentDomainWeight
		if w, ok := keyDomain[department]; ok {
			domainWeight = w
		}
	}

	return round2(raw * (1 + domainScore*domainWeight) / 100)
}

// round2 rounds to two decimal places.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
