package htmldiff

import "sort"

// Match is a run of Length tokens that is identical in before (starting at
// StartA) and after (starting at StartB).
type Match struct {
	StartA int
	StartB int
	Length int
}

// EndA returns the exclusive end of the match in before.
func (m Match) EndA() int { return m.StartA + m.Length }

// EndB returns the exclusive end of the match in after.
func (m Match) EndB() int { return m.StartB + m.Length }

// searchRange bounds a best-match search to before[aStart:aEnd] and
// after[bStart:bEnd].
type searchRange struct {
	aStart, aEnd int
	bStart, bEnd int
}

// matchContext holds the sequences being compared and the index of before's
// tokens in after.
type matchContext struct {
	before, after []string
	index         tokenIndex
}

// newMatchContext creates a context for matching before against after.
func newMatchContext(before, after []string) *matchContext {
	return &matchContext{
		before: before,
		after:  after,
		index:  buildIndex(before, after),
	}
}

// findMatch returns the longest run of equal tokens inside r.
//
// It scans before left to right, keeping for each position j in after the
// length of the run ending at j for the previous row. Only a strictly longer
// run replaces the best one, so on ties the run found first (leftmost in
// before, then in after) wins.
func (ctx *matchContext) findMatch(r searchRange) (Match, bool) {
	bestA, bestB, bestLen := r.aStart, r.bStart, 0

	runs := make(map[int]int)
	for i := r.aStart; i < r.aEnd; i++ {
		next := make(map[int]int)
		for _, j := range ctx.index[ctx.before[i]] {
			if j < r.bStart {
				continue
			}
			if j >= r.bEnd {
				break
			}

			n := runs[j-1] + 1
			next[j] = n

			if n > bestLen {
				bestA = i - n + 1
				bestB = j - n + 1
				bestLen = n
			}
		}
		runs = next
	}

	if bestLen == 0 {
		return Match{}, false
	}
	return Match{StartA: bestA, StartB: bestB, Length: bestLen}, true
}

// findMatchingBlocks returns all matching blocks of before and after, sorted
// by position in before.
//
// The search is divide and conquer over an explicit stack: the best match of
// a range splits it into the strictly smaller ranges on either side, which
// are searched in turn. Blocks never overlap because sub-ranges exclude the
// match that produced them.
func (ctx *matchContext) findMatchingBlocks() []Match {
	var blocks []Match

	stack := []searchRange{{
		aStart: 0,
		aEnd:   len(ctx.before),
		bStart: 0,
		bEnd:   len(ctx.after),
	}}

	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		m, ok := ctx.findMatch(r)
		if !ok {
			continue
		}

		if m.EndA() < r.aEnd && m.EndB() < r.bEnd {
			stack = append(stack, searchRange{
				aStart: m.EndA(),
				aEnd:   r.aEnd,
				bStart: m.EndB(),
				bEnd:   r.bEnd,
			})
		}

		blocks = append(blocks, m)

		if r.aStart < m.StartA && r.bStart < m.StartB {
			stack = append(stack, searchRange{
				aStart: r.aStart,
				aEnd:   m.StartA,
				bStart: r.bStart,
				bEnd:   m.StartB,
			})
		}
	}

	sort.Slice(blocks, func(i, j int) bool {
		return blocks[i].StartA < blocks[j].StartA
	})
	return blocks
}

// MatchingBlocks returns the maximal non-overlapping runs of tokens shared by
// before and after, sorted by position in before.
func MatchingBlocks(before, after []string) []Match {
	return newMatchContext(before, after).findMatchingBlocks()
}
