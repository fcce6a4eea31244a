// Package plugin adapts the diff engine to a host calling convention: JSON
// requests carrying base64-encoded text, answered with base64-encoded output.
package plugin

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/dacharyc/htmldiff"
)

var (
	// ErrMalformedRequest means the request is not valid JSON for its kind.
	ErrMalformedRequest = errors.New("malformed request")
	// ErrMissingField means a required request field is absent or empty.
	ErrMissingField = errors.New("missing field")
	// ErrInvalidEncoding means a payload is not base64-encoded UTF-8 text.
	ErrInvalidEncoding = errors.New("invalid encoding")
)

// DiffRequest asks for the rendered difference of two texts.
type DiffRequest struct {
	Before *string `json:"before"`
	After  *string `json:"after"`
}

// RestoreRequest asks for a rendering rebuilt from a line-oriented diff.
type RestoreRequest struct {
	Diff *string `json:"diff"`
}

// DiffHTML handles a DiffRequest and returns the base64-encoded rendering.
// Either text may be empty, but both fields must be present.
func DiffHTML(input []byte, opts ...htmldiff.Option) (string, error) {
	var req DiffRequest
	if err := json.Unmarshal(input, &req); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedRequest, err)
	}

	before, err := decodeField("before", req.Before)
	if err != nil {
		return "", err
	}
	after, err := decodeField("after", req.After)
	if err != nil {
		return "", err
	}

	return encode(htmldiff.Diff(before, after, opts...)), nil
}

// RestoreHTML handles a RestoreRequest and returns the base64-encoded
// rendering.
func RestoreHTML(input []byte, opts ...htmldiff.Option) (string, error) {
	var req RestoreRequest
	if err := json.Unmarshal(input, &req); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedRequest, err)
	}

	diff, err := decodeField("diff", req.Diff)
	if err != nil {
		return "", err
	}
	if diff == "" {
		return "", fmt.Errorf("%w: diff is empty", ErrMissingField)
	}

	return encode(htmldiff.RestoreFromDiff(diff, opts...)), nil
}

// decodeField decodes a required base64 field into UTF-8 text.
func decodeField(name string, value *string) (string, error) {
	if value == nil {
		return "", fmt.Errorf("%w: %s", ErrMissingField, name)
	}
	raw, err := base64.StdEncoding.DecodeString(*value)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInvalidEncoding, name, err)
	}
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: %s is not valid UTF-8", ErrInvalidEncoding, name)
	}
	return string(raw), nil
}

func encode(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}
