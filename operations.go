package htmldiff

// Operations returns the edit script that turns before into after.
//
// The operations cover both sequences exactly once, in order, with no gaps:
// reading the before ranges yields before and reading the after ranges yields
// after. Equal operations span identical tokens.
func Operations(before, after []string) []DiffOp {
	blocks := newMatchContext(before, after).findMatchingBlocks()
	return buildOps(blocks, len(before), len(after))
}

// buildOps converts sorted matching blocks into a sequence of DiffOp.
// A zero-length block at (n, m) terminates the walk so any unmatched suffix
// is emitted as a trailing edit.
func buildOps(blocks []Match, n, m int) []DiffOp {
	var ops []DiffOp
	i, j := 0, 0

	blocks = append(blocks, Match{StartA: n, StartB: m})
	for _, block := range blocks {
		atA := i == block.StartA
		atB := j == block.StartB

		switch {
		case !atA && !atB:
			ops = append(ops, DiffOp{
				Type:   Replace,
				AStart: i,
				AEnd:   block.StartA,
				BStart: j,
				BEnd:   block.StartB,
			})
		case atA && !atB:
			ops = append(ops, DiffOp{
				Type:   Insert,
				AStart: i,
				AEnd:   i,
				BStart: j,
				BEnd:   block.StartB,
			})
		case !atA && atB:
			ops = append(ops, DiffOp{
				Type:   Delete,
				AStart: i,
				AEnd:   block.StartA,
				BStart: j,
				BEnd:   j,
			})
		}

		if block.Length > 0 {
			ops = append(ops, DiffOp{
				Type:   Equal,
				AStart: block.StartA,
				AEnd:   block.EndA(),
				BStart: block.StartB,
				BEnd:   block.EndB(),
			})
		}

		i = min(block.EndA(), n)
		j = min(block.EndB(), m)
	}

	return ops
}
