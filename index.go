package htmldiff

// tokenIndex maps a token value to the ascending positions where it occurs
// in the indexed sequence.
type tokenIndex map[string][]int

// buildIndex records, for every distinct token of findThese, the positions in
// inThese holding an equal token. Tokens of findThese that never occur in
// inThese map to an empty list.
func buildIndex(findThese, inThese []string) tokenIndex {
	index := make(tokenIndex, len(findThese))
	for _, t := range findThese {
		if _, ok := index[t]; !ok {
			index[t] = nil
		}
	}

	for i, t := range inThese {
		if positions, ok := index[t]; ok {
			index[t] = append(positions, i)
		}
	}

	return index
}
