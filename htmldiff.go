// Package htmldiff computes a visual, inline difference between two versions
// of markup-bearing text.
//
// Both inputs are split into tokens (tags, entities, words, whitespace runs
// and punctuation), matched block by block, and rendered back as markup with
// inserted content wrapped in <ins> and deleted content wrapped in <del>:
//
//	htmldiff.Diff("<p>Hello World</p>", "<p>Hello New World</p>")
//	// <p>Hello <ins>New </ins>World</p>
//
// Markup tags are never placed inside a marker, so the output nests the same
// way the inputs do. A changed tag is emitted twice: the old one followed by
// the new one.
//
// The engine is made of small pure stages that can also be used directly:
//   - Tokenize splits text into tokens
//   - Operations builds the edit script for two token sequences
//   - Render serializes an edit script back into marked-up text
//
// RestoreFromDiff rebuilds a rendering from a line-oriented diff, and Unified
// produces such a diff from two full documents.
package htmldiff

// OpType identifies the type of edit operation.
type OpType int

const (
	// Equal means the tokens are unchanged.
	Equal OpType = iota
	// Insert means tokens were added to after that are not in before.
	Insert
	// Delete means tokens were removed from before that are not in after.
	Delete
	// Replace means tokens of before were swapped for different tokens of after.
	Replace
)

// String returns a string representation of the OpType.
func (t OpType) String() string {
	switch t {
	case Equal:
		return "Equal"
	case Insert:
		return "Insert"
	case Delete:
		return "Delete"
	case Replace:
		return "Replace"
	default:
		return "Unknown"
	}
}

// DiffOp represents a single edit operation with token index ranges.
//
// An Insert has an empty before range and a Delete has an empty after range;
// the empty range sits at the position where the edit applies.
type DiffOp struct {
	Type   OpType
	AStart int // start index in before (inclusive)
	AEnd   int // end index in before (exclusive)
	BStart int // start index in after (inclusive)
	BEnd   int // end index in after (exclusive)
}

const (
	defaultInsertTag = "ins"
	defaultDeleteTag = "del"
)

// options holds configuration for diffing and rendering.
type options struct {
	insertTag  string
	deleteTag  string
	trimQuotes bool
}

// defaultOptions returns options with sensible defaults.
func defaultOptions() *options {
	return &options{
		insertTag:  defaultInsertTag,
		deleteTag:  defaultDeleteTag,
		trimQuotes: true,
	}
}

func buildOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Option configures diff behavior.
type Option func(*options)

// WithInsertTag sets the tag name used to mark inserted content.
// An empty name keeps the default.
// Default: "ins".
func WithInsertTag(name string) Option {
	return func(o *options) {
		if name != "" {
			o.insertTag = name
		}
	}
}

// WithDeleteTag sets the tag name used to mark deleted content.
// An empty name keeps the default.
// Default: "del".
func WithDeleteTag(name string) Option {
	return func(o *options) {
		if name != "" {
			o.deleteTag = name
		}
	}
}

// WithQuoteTrimming enables or disables stripping one layer of surrounding
// backticks, double quotes or single quotes from each input.
// Default: true.
func WithQuoteTrimming(enabled bool) Option {
	return func(o *options) {
		o.trimQuotes = enabled
	}
}

// Diff compares two markup strings and returns after rendered with inline
// insertion and deletion markers.
//
// If the inputs are equal (after quote trimming) before is returned unchanged.
func Diff(before, after string, opts ...Option) string {
	o := buildOptions(opts)

	if o.trimQuotes {
		before = trimQuotes(before)
		after = trimQuotes(after)
	}

	if before == after {
		return before
	}

	a := Tokenize(before)
	b := Tokenize(after)
	return render(Operations(a, b), a, b, o)
}

// quoteDelimiters are the characters trimmed by trimQuotes.
const quoteDelimiters = "`\"'"

// trimQuotes strips one matching pair of surrounding delimiters.
func trimQuotes(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if first != last {
		return s
	}
	for i := 0; i < len(quoteDelimiters); i++ {
		if first == quoteDelimiters[i] {
			return s[1 : len(s)-1]
		}
	}
	return s
}
