package errorfmt

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

const nonFieldErrorsKey = "non_field_errors"

// payload is a response body prepared for shape matching.
type payload struct {
	// present is false when there is nothing to interpret.
	present bool
	// text holds a body that is a JSON string or not JSON at all.
	text   string
	isText bool
	doc    gjson.Result
}

func parsePayload(body []byte) payload {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return payload{}
	}
	if !gjson.ValidBytes(trimmed) {
		return payload{present: true, isText: true, text: string(body)}
	}

	doc := gjson.ParseBytes(trimmed)
	if !truthy(doc) {
		return payload{}
	}
	if doc.Type == gjson.String {
		return payload{present: true, isText: true, text: doc.Str}
	}
	return payload{present: true, doc: doc}
}

// messageShape extracts the raw message from one payload form.
type messageShape struct {
	name  string
	match func(p payload) (string, bool)
}

// messageShapes are tried in order; the first match wins.
var messageShapes = []messageShape{
	{name: "text", match: matchText},
	{name: "detail", match: matchField("detail")},
	{name: "message", match: matchField("message")},
	{name: "field_errors", match: matchFieldErrors},
}

func extractMessage(p payload) string {
	if !p.present {
		return MessageUnexpected
	}
	for _, shape := range messageShapes {
		if message, ok := shape.match(p); ok {
			return message
		}
	}
	return MessageValidation
}

// matchConflict recognizes a protected-delete refusal:
// {"detail": "...", "related_objects": ["...", ...]}.
func matchConflict(p payload) (Normalized, bool) {
	if !p.present || p.isText || !p.doc.IsObject() {
		return Normalized{}, false
	}
	detail := p.doc.Get("detail")
	related := p.doc.Get("related_objects")
	if !truthy(detail) || !related.IsArray() {
		return Normalized{}, false
	}

	names := make([]string, 0, len(related.Array()))
	for _, name := range related.Array() {
		names = append(names, text(name))
	}
	return Normalized{
		Title:       TitleCannotDelete,
		Description: text(detail) + "\nRelated items: " + strings.Join(names, ", "),
	}, true
}

func matchText(p payload) (string, bool) {
	return p.text, p.isText
}

func matchField(key string) func(p payload) (string, bool) {
	return func(p payload) (string, bool) {
		if !p.doc.IsObject() {
			return "", false
		}
		value := p.doc.Get(gjson.Escape(key))
		if !truthy(value) {
			return "", false
		}
		return text(value), true
	}
}

// matchFieldErrors collects non_field_errors first, then every other key in
// document order.
func matchFieldErrors(p payload) (string, bool) {
	var lines []string

	if p.doc.IsObject() {
		if nonField := p.doc.Get(nonFieldErrorsKey); nonField.IsArray() {
			for _, entry := range nonField.Array() {
				lines = append(lines, text(entry))
			}
		}
	}

	index := 0
	p.doc.ForEach(func(key, value gjson.Result) bool {
		field := key.String()
		if p.doc.IsArray() {
			field = strconv.Itoa(index)
			index++
		}
		if field == nonFieldErrorsKey {
			return true
		}

		switch {
		case value.IsArray():
			name := HumanizeField(field)
			for _, entry := range value.Array() {
				lines = append(lines, name+": "+text(entry))
			}
		case value.Type == gjson.String:
			lines = append(lines, HumanizeField(field)+": "+value.Str)
		}
		return true
	})

	if len(lines) == 0 {
		return "", false
	}
	return strings.Join(lines, "\n"), true
}

// HumanizeField turns a serializer field name into a label: the first
// underscore becomes a space and every word starts with an upper-case
// letter, so "amount_pledged" reads "Amount Pledged".
func HumanizeField(field string) string {
	replaced := []rune(strings.Replace(field, "_", " ", 1))
	for i, r := range replaced {
		if isWordRune(r) && (i == 0 || !isWordRune(replaced[i-1])) && r >= 'a' && r <= 'z' {
			replaced[i] = r - 'a' + 'A'
		}
	}
	return string(replaced)
}

func isWordRune(r rune) bool {
	return r == '_' || (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// truthy reports whether r counts as a value: null, false, 0 and "" do not.
func truthy(r gjson.Result) bool {
	switch r.Type {
	case gjson.Null:
		return false
	case gjson.False:
		return false
	case gjson.Number:
		return r.Num != 0
	case gjson.String:
		return r.Str != ""
	default:
		return true
	}
}

// text renders a value as a message: strings verbatim, anything else as its
// JSON source.
func text(r gjson.Result) string {
	if r.Type == gjson.String {
		return r.Str
	}
	return r.Raw
}
