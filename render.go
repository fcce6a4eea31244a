package htmldiff

import "strings"

// Render serializes ops over before and after back into marked-up text.
// Inserted and deleted content is wrapped in marker tags; markup tags inside
// changed regions are emitted unwrapped.
func Render(ops []DiffOp, before, after []string, opts ...Option) string {
	return render(ops, before, after, buildOptions(opts))
}

func render(ops []DiffOp, before, after []string, o *options) string {
	var sb strings.Builder

	for _, op := range ops {
		switch op.Type {
		case Equal:
			for _, t := range before[op.AStart:op.AEnd] {
				sb.WriteString(t)
			}
		case Insert:
			wrap(&sb, o.insertTag, after[op.BStart:op.BEnd])
		case Delete:
			wrap(&sb, o.deleteTag, before[op.AStart:op.AEnd])
		case Replace:
			wrap(&sb, o.deleteTag, before[op.AStart:op.AEnd])
			wrap(&sb, o.insertTag, after[op.BStart:op.BEnd])
		}
	}

	return sb.String()
}

// wrap writes tokens to sb, alternating between maximal runs of non-tag
// tokens, enclosed in <tag>...</tag>, and maximal runs of tag tokens, written
// as they are.
func wrap(sb *strings.Builder, tag string, tokens []string) {
	pos := 0
	for pos < len(tokens) {
		end := consecutive(tokens, pos, func(t string) bool { return !IsTag(t) })
		if end > pos {
			sb.WriteString("<" + tag + ">")
			for _, t := range tokens[pos:end] {
				sb.WriteString(t)
			}
			sb.WriteString("</" + tag + ">")
		}
		pos = end

		end = consecutive(tokens, pos, IsTag)
		for _, t := range tokens[pos:end] {
			sb.WriteString(t)
		}
		pos = end
	}
}

// consecutive returns the end of the run of tokens starting at start for
// which pred holds.
func consecutive(tokens []string, start int, pred func(string) bool) int {
	end := start
	for end < len(tokens) && pred(tokens[end]) {
		end++
	}
	return end
}
