// Package extract pulls a single JSON value out of free-form model output.
package extract

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

type Kind string

const (
	KindEmptyResponse    Kind = "EmptyResponse"
	KindNoJSONFound      Kind = "NoJsonFound"
	KindUnterminatedJSON Kind = "UnterminatedJson"
	KindMalformedJSON    Kind = "MalformedJson"
)

var messages = map[Kind]string{
	KindEmptyResponse:    "Model response was empty.",
	KindNoJSONFound:      "No JSON object or array found in model response.",
	KindUnterminatedJSON: "Found JSON start but could not determine JSON boundary.",
	KindMalformedJSON:    "Failed to parse JSON from model response.",
}

// Error is returned for every extraction failure. Its message is safe to
// show to end users.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return messages[e.Kind]
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is an extraction failure of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

var ErrInvalidRequestBody = errors.New("Invalid JSON request body.")

// JSON returns the first balanced JSON object or array found in text.
func JSON(text string) (any, error) {
	candidate, err := Slice(text)
	if err != nil {
		return nil, err
	}

	var v any
	if err := json.Unmarshal([]byte(candidate), &v); err != nil {
		return nil, &Error{Kind: KindMalformedJSON, Err: err}
	}
	return v, nil
}

// Slice returns the raw text of the first balanced JSON literal without
// parsing it.
func Slice(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", &Error{Kind: KindEmptyResponse}
	}

	start := strings.IndexAny(text, "{[")
	if start == -1 {
		return "", &Error{Kind: KindNoJSONFound}
	}

	end := boundary(text, start)
	if end == -1 {
		return "", &Error{Kind: KindUnterminatedJSON}
	}

	return strings.TrimSpace(text[start : end+1]), nil
}

// boundary returns the index of the bracket closing the one at start, or -1.
// Only the opening bracket type is counted; string contents are skipped.
func boundary(text string, start int) int {
	open := text[start]
	closer := byte('}')
	if open == '[' {
		closer = ']'
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		ch := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case open:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

// DecodeRequestBody decodes an optional JSON request body into v. An empty
// or whitespace-only body leaves v untouched.
func DecodeRequestBody(raw []byte, v any) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return ErrInvalidRequestBody
	}
	return nil
}
