package match

// sequenceRatio measures the character-sequence similarity of two strings
// as 2*M/T, where M is the total size of the matching blocks found by
// repeatedly locating the longest common contiguous run, and T is the sum
// of both lengths. The result is in [0, 1]; two empty strings score 1.
func sequenceRatio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1
	}

	// Positions of each rune in b, in ascending order
	b2j := make(map[rune][]int, len(rb))
	for j, r := range rb {
		b2j[r] = append(b2j[r], j)
	}

	matched := 0
	type span struct{ alo, ahi, blo, bhi int }
	queue := []span{{0, len(ra), 0, len(rb)}}
	for len(queue) > 0 {
		s := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		i, j, size := longestMatch(ra, s.alo, s.ahi, s.blo, s.bhi, b2j)
		if size == 0 {
			continue
		}
		matched += size
		queue = append(queue,
			span{s.alo, i, s.blo, j},
			span{i + size, s.ahi, j + size, s.bhi})
	}

	return 2 * float64(matched) / float64(total)
}

// longestMatch finds the longest run of runes common to a[alo:ahi] and
// b[blo:bhi], returning its start in each plus its length. Earlier starts
// win ties so the result is deterministic.
func longestMatch(a []rune, alo, ahi, blo, bhi int, b2j map[rune][]int) (besti, bestj, size int) {
	besti, bestj = alo, blo

	// j2len[j] holds the length of the run of matches ending at a[i-1], b[j]
	j2len := map[int]int{}
	for i := alo; i < ahi; i++ {
		next := map[int]int{}
		for _, j := range b2j[a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			next[j] = k
			if k > size {
				besti, bestj, size = i-k+1, j-k+1, k
			}
		}
		j2len = next
	}
	return besti, bestj, size
}
