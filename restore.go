package htmldiff

import "strings"

// RestoreFromDiff rebuilds a marked-up rendering from a line-oriented diff.
//
// Each line of diffText is prefixed with ' ' (context), '-' (removed) or '+'
// (added). Context lines are copied as they are. Runs of removed and added
// lines between context lines are paired in order, and each pair is rendered
// with Diff; unpaired lines are diffed against the empty string. Marker tags
// already present on removed or added lines are stripped first. Lines with
// any other prefix, such as hunk headers, are ignored.
//
// The result is trimmed of leading and trailing whitespace.
func RestoreFromDiff(diffText string, opts ...Option) string {
	o := buildOptions(opts)
	r := &restorer{opts: opts}

	for _, line := range strings.Split(diffText, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}

		switch line[0] {
		case contextPrefix:
			r.flush()
			r.out.WriteString(line[1:])
			r.out.WriteByte('\n')
		case deletePrefix:
			r.deletions = append(r.deletions, stripMarkers(line[1:], o.deleteTag))
		case insertPrefix:
			r.insertions = append(r.insertions, stripMarkers(line[1:], o.insertTag))
		}
	}
	r.flush()

	return strings.TrimSpace(r.out.String())
}

// restorer accumulates pending removed and added lines between context lines.
type restorer struct {
	opts       []Option
	out        strings.Builder
	deletions  []string
	insertions []string
}

// flush renders the pending batches pairwise and clears them.
func (r *restorer) flush() {
	n := max(len(r.deletions), len(r.insertions))
	for i := 0; i < n; i++ {
		var before, after string
		if i < len(r.deletions) {
			before = r.deletions[i]
		}
		if i < len(r.insertions) {
			after = r.insertions[i]
		}
		r.out.WriteString(Diff(before, after, r.opts...))
		r.out.WriteByte('\n')
	}
	r.deletions = r.deletions[:0]
	r.insertions = r.insertions[:0]
}

// stripMarkers removes opening and closing tag markers from s.
func stripMarkers(s, tag string) string {
	s = strings.ReplaceAll(s, "<"+tag+">", "")
	return strings.ReplaceAll(s, "</"+tag+">", "")
}
