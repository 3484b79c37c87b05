// Package errorfmt turns failed API calls into a {title, description} pair
// suitable for showing to a user.
//
// Normalization is total: every input, including a nil error, an empty body
// or a payload of an unknown shape, yields a renderable Normalized value.
package errorfmt

import (
	"errors"
	"strings"
)

const (
	TitleError           = "Error"
	TitleValidationError = "Validation Error"
	TitleCannotDelete    = "Cannot Delete"

	MessageUnexpected = "An unexpected error occurred"
	MessageValidation = "Validation error occurred"

	bullet = "• "
)

// Normalized is the presentation form of a failure.
type Normalized struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (n Normalized) String() string {
	return n.Title + ": " + n.Description
}

// payloader is implemented by errors that carry a backend response body.
type payloader interface {
	Payload() []byte
}

// Format normalizes err using the response body found in its chain. Errors
// without a body, such as transport failures, produce the generic
// unexpected-error message.
func Format(err error) Normalized {
	var p payloader
	if err == nil || !errors.As(err, &p) {
		return Normalized{Title: TitleError, Description: MessageUnexpected}
	}
	return FormatPayload(p.Payload())
}

// FormatPayload normalizes a raw response body.
func FormatPayload(body []byte) Normalized {
	p := parsePayload(body)

	if n, ok := matchConflict(p); ok {
		return n
	}

	message := extractMessage(p)
	if strings.Contains(message, "\n") {
		lines := strings.Split(message, "\n")
		for i, line := range lines {
			lines[i] = bullet + line
		}
		return Normalized{Title: TitleValidationError, Description: strings.Join(lines, "\n")}
	}
	return Normalized{Title: TitleError, Description: message}
}

// Message returns the raw message extracted from body, one line per
// collected field error.
func Message(body []byte) string {
	return extractMessage(parsePayload(body))
}
