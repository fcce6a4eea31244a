package htmldiff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Line prefixes of the line-oriented diff format.
const (
	contextPrefix = ' '
	deletePrefix  = '-'
	insertPrefix  = '+'
)

// Unified compares two documents line by line and returns the diff in the
// format read by RestoreFromDiff: every line of both documents, prefixed with
// ' ', '-' or '+' and terminated by '\n'. No file or hunk headers are written.
// A missing newline at the end of either document is not a difference.
func Unified(before, after string) string {
	dmp := diffmatchpatch.New()
	rBefore, rAfter, lineArray := dmp.DiffLinesToRunes(terminate(before), terminate(after))
	diffs := dmp.DiffMainRunes(rBefore, rAfter, false)
	diffs = dmp.DiffCleanupMerge(diffs)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var sb strings.Builder
	for _, d := range diffs {
		var prefix byte
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			prefix = contextPrefix
		case diffmatchpatch.DiffDelete:
			prefix = deletePrefix
		case diffmatchpatch.DiffInsert:
			prefix = insertPrefix
		}

		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteByte(prefix)
			sb.WriteString(strings.TrimSuffix(line, "\n"))
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// terminate ends non-empty text with a newline so a final line compares equal
// whether or not it was terminated.
func terminate(text string) string {
	if text == "" || strings.HasSuffix(text, "\n") {
		return text
	}
	return text + "\n"
}
