package errorfmt_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jrsteele09/go-budget-client/errorfmt"
	"github.com/jrsteele09/go-budget-client/gateway"
	"github.com/stretchr/testify/require"
)

func TestFormatPayload(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected errorfmt.Normalized
	}{
		{
			name:     "plain json string",
			body:     `"Something went wrong"`,
			expected: errorfmt.Normalized{Title: "Error", Description: "Something went wrong"},
		},
		{
			name:     "non json body",
			body:     `Bad Gateway`,
			expected: errorfmt.Normalized{Title: "Error", Description: "Bad Gateway"},
		},
		{
			name:     "single field array",
			body:     `{"amount": ["This field is required."]}`,
			expected: errorfmt.Normalized{Title: "Error", Description: "Amount: This field is required."},
		},
		{
			name: "several fields keep document order with non_field_errors first",
			body: `{"amount": ["Ensure this value is greater than 0."], "non_field_errors": ["Pledge exceeds budget.", "Event is closed."], "event_date": ["Date has wrong format."]}`,
			expected: errorfmt.Normalized{
				Title: "Validation Error",
				Description: "• Pledge exceeds budget.\n" +
					"• Event is closed.\n" +
					"• Amount: Ensure this value is greater than 0.\n" +
					"• Event Date: Date has wrong format.",
			},
		},
		{
			name: "one field with two messages",
			body: `{"password": ["This password is too short.", "This password is too common."]}`,
			expected: errorfmt.Normalized{
				Title:       "Validation Error",
				Description: "• Password: This password is too short.\n• Password: This password is too common.",
			},
		},
		{
			name:     "field with string value",
			body:     `{"username": "A user with that username already exists."}`,
			expected: errorfmt.Normalized{Title: "Error", Description: "Username: A user with that username already exists."},
		},
		{
			name:     "protected delete",
			body:     `{"detail": "Cannot delete", "related_objects": ["Event A", "Event B"]}`,
			expected: errorfmt.Normalized{Title: "Cannot Delete", Description: "Cannot delete\nRelated items: Event A, Event B"},
		},
		{
			name:     "protected delete without related names",
			body:     `{"detail": "Cannot delete", "related_objects": []}`,
			expected: errorfmt.Normalized{Title: "Cannot Delete", Description: "Cannot delete\nRelated items: "},
		},
		{
			name:     "related_objects that is not a list falls back to detail",
			body:     `{"detail": "Cannot delete", "related_objects": "Event A"}`,
			expected: errorfmt.Normalized{Title: "Error", Description: "Cannot delete"},
		},
		{
			name:     "detail",
			body:     `{"detail": "Invalid credentials."}`,
			expected: errorfmt.Normalized{Title: "Error", Description: "Invalid credentials."},
		},
		{
			name:     "detail wins over field errors",
			body:     `{"amount": ["Required."], "detail": "Not found."}`,
			expected: errorfmt.Normalized{Title: "Error", Description: "Not found."},
		},
		{
			name:     "empty detail falls through to message",
			body:     `{"detail": "", "message": "Payment recorded twice"}`,
			expected: errorfmt.Normalized{Title: "Error", Description: "Payment recorded twice"},
		},
		{
			name:     "multi-line detail is bulleted",
			body:     `{"detail": "first\nsecond"}`,
			expected: errorfmt.Normalized{Title: "Validation Error", Description: "• first\n• second"},
		},
		{
			name:     "non string messages are rendered as json",
			body:     `{"amount": [10]}`,
			expected: errorfmt.Normalized{Title: "Error", Description: "Amount: 10"},
		},
		{
			name:     "unrecognized object",
			body:     `{"meta": {"code": 7}, "count": 3}`,
			expected: errorfmt.Normalized{Title: "Error", Description: "Validation error occurred"},
		},
		{
			name:     "empty object",
			body:     `{}`,
			expected: errorfmt.Normalized{Title: "Error", Description: "Validation error occurred"},
		},
		{
			name:     "number",
			body:     `42`,
			expected: errorfmt.Normalized{Title: "Error", Description: "Validation error occurred"},
		},
		{
			name:     "top level list is keyed by index",
			body:     `["Only one pledge per event."]`,
			expected: errorfmt.Normalized{Title: "Error", Description: "0: Only one pledge per event."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, errorfmt.FormatPayload([]byte(tt.body)))
		})
	}
}

func TestFormatPayload_NoPayload(t *testing.T) {
	unexpected := errorfmt.Normalized{Title: "Error", Description: "An unexpected error occurred"}
	for _, body := range []string{"", "   \n", "null", `""`, "false", "0"} {
		t.Run(fmt.Sprintf("%q", body), func(t *testing.T) {
			require.Equal(t, unexpected, errorfmt.FormatPayload([]byte(body)))
		})
	}
	require.Equal(t, unexpected, errorfmt.FormatPayload(nil))
}

type payloadError struct {
	body []byte
}

func (e *payloadError) Error() string   { return "request failed" }
func (e *payloadError) Payload() []byte { return e.body }

func TestFormat(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		require.Equal(t, errorfmt.Normalized{Title: "Error", Description: "An unexpected error occurred"}, errorfmt.Format(nil))
	})

	t.Run("transport failure", func(t *testing.T) {
		err := fmt.Errorf("GET /events/: %w", errors.New("connection refused"))
		require.Equal(t, "An unexpected error occurred", errorfmt.Format(err).Description)
	})

	t.Run("wrapped status error", func(t *testing.T) {
		statusErr := &gateway.StatusError{
			StatusCode: http.StatusUnauthorized,
			Body:       []byte(`{"detail": "Token is invalid or expired", "code": "token_not_valid"}`),
		}
		err := fmt.Errorf("session terminated: token renewal failed: %w", statusErr)
		require.Equal(t, errorfmt.Normalized{Title: "Error", Description: "Token is invalid or expired"}, errorfmt.Format(err))
	})

	t.Run("any payload carrier", func(t *testing.T) {
		err := &payloadError{body: []byte(`{"name": ["This field may not be blank."], "venue": ["This field may not be blank."]}`)}
		normalized := errorfmt.Format(err)
		require.Equal(t, "Validation Error", normalized.Title)
		require.Equal(t, "• Name: This field may not be blank.\n• Venue: This field may not be blank.", normalized.Description)
		require.Equal(t, "Validation Error: "+normalized.Description, normalized.String())
	})
}

func TestMessage(t *testing.T) {
	require.Equal(t, "Amount: Required.\nEvent: Invalid pk.", errorfmt.Message([]byte(`{"amount": ["Required."], "event": ["Invalid pk."]}`)))
	require.Equal(t, "An unexpected error occurred", errorfmt.Message(nil))
	require.Equal(t, "Validation error occurred", errorfmt.Message([]byte(`{"count": 1}`)))
}

func TestHumanizeField(t *testing.T) {
	tests := map[string]string{
		"amount":               "Amount",
		"event_date":           "Event Date",
		"amount_pledged_total": "Amount Pledged_total",
		"non-field":            "Non-Field",
		"2fa_code":             "2fa Code",
		"":                     "",
	}
	for field, expected := range tests {
		t.Run(field, func(t *testing.T) {
			require.Equal(t, expected, errorfmt.HumanizeField(field))
		})
	}
}
