package htmldiff

import (
	"regexp"
	"strings"
	"unicode"
)

// tagPattern matches a token that is a complete tag, possibly padded with
// whitespace.
var tagPattern = regexp.MustCompile(`^\s*<[^>]+>\s*$`)

// tokenizerState is the state of the Tokenize state machine.
type tokenizerState int

const (
	stateChar tokenizerState = iota
	stateTag
	stateEntity
	stateWhitespace
)

// Tokenize splits markup into tokens: tags, entities, whitespace runs and
// words. A punctuation character always starts a new token, and word
// characters directly after it extend that token, so "x.y" yields "x" and ".y".
//
// Tokenization is lossless; concatenating the tokens yields text exactly.
// Unterminated tags and entities at the end of input are kept as plain tokens.
func Tokenize(text string) []string {
	var (
		tokens  []string
		current strings.Builder
		state   = stateChar
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, r := range text {
		switch state {
		case stateTag, stateEntity:
			current.WriteRune(r)
			if (state == stateTag && r == '>') || (state == stateEntity && r == ';') {
				flush()
				state = stateChar
			}

		case stateChar, stateWhitespace:
			switch {
			case r == '<':
				flush()
				current.WriteRune(r)
				state = stateTag
			case r == '&':
				flush()
				current.WriteRune(r)
				state = stateEntity
			case isWhitespace(r):
				if state != stateWhitespace {
					flush()
					state = stateWhitespace
				}
				current.WriteRune(r)
			case isWordChar(r):
				if state != stateChar {
					flush()
					state = stateChar
				}
				current.WriteRune(r)
			default:
				flush()
				current.WriteRune(r)
				state = stateChar
			}
		}
	}
	flush()

	return tokens
}

// IsTag reports whether token is markup that must never be wrapped in a
// marker: a complete tag, a comment opener, or anything ending like a comment
// closer or a self-closing tag.
func IsTag(token string) bool {
	return tagPattern.MatchString(token) ||
		strings.HasPrefix(token, "<!--") ||
		strings.HasSuffix(token, "-->") ||
		strings.HasSuffix(token, "/>")
}

// isWhitespace reports whether r separates words.
func isWhitespace(r rune) bool {
	return unicode.IsSpace(r)
}

// isWordChar reports whether r continues a word: letters, digits, letter
// numbers such as 'Ⅻ', marks, connector punctuation such as '_', the zero
// width joiners, plus '#' and '@'.
func isWordChar(r rune) bool {
	return unicode.IsLetter(r) ||
		unicode.IsDigit(r) ||
		unicode.Is(unicode.Nl, r) ||
		unicode.IsMark(r) ||
		unicode.Is(unicode.Join_Control, r) ||
		unicode.Is(unicode.Pc, r) ||
		r == '#' || r == '@'
}
