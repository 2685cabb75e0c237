package happiness

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMetric is returned when a metric key is not registered.
// Summarize rejects unknown columns instead of silently returning zeros.
var ErrUnknownMetric = errors.New("unknown metric")

// MalformedDataError is returned by Load when the source file is missing,
// unreadable, or contains a non-numeric year value. It is fatal to startup;
// the caller decides whether to halt or show a message.
type MalformedDataError struct {
	Path   string
	Line   int    // 0 when the error is not tied to a specific row
	Reason string
	Err    error
}

func (e *MalformedDataError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed dataset %s: line %d: %s", e.Path, e.Line, e.Reason)
	}
	return fmt.Sprintf("malformed dataset %s: %s", e.Path, e.Reason)
}

func (e *MalformedDataError) Unwrap() error {
	return e.Err
}

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns maps technical error patterns (case-insensitive) to user
// messages. Patterns are matched with strings.Contains; the first match wins,
// so more specific patterns come before general ones.
//
//	DATA001 - Malformed dataset: the CSV could not be loaded
//	DATA002 - Dataset file missing or unreadable
//	QRY001  - Unknown metric key requested
//	QRY002  - Unknown country requested
//	RATE001 - Too many requests
//	ERR000  - Fallback for unexpected errors
var errorPatterns = []errorPattern{
	{
		pattern: "malformed dataset",
		msg: UserMessage{
			Message: "The happiness dataset could not be loaded",
			Action:  "Check that the CSV file matches the World Happiness Report format",
			Code:    "DATA001",
		},
	},
	{
		pattern: "no such file",
		msg: UserMessage{
			Message: "The happiness dataset file was not found",
			Action:  "Verify the DATA_FILE path points to the report CSV",
			Code:    "DATA002",
		},
	},
	{
		pattern: "permission denied",
		msg: UserMessage{
			Message: "The happiness dataset file could not be read",
			Action:  "Check file permissions on the report CSV",
			Code:    "DATA002",
		},
	},
	{
		pattern: "unknown metric",
		msg: UserMessage{
			Message: "The requested metric does not exist",
			Action:  "Pick one of the metrics listed by /api/meta",
			Code:    "QRY001",
		},
	},
	{
		pattern: "unknown country",
		msg: UserMessage{
			Message: "No data is available for that country",
			Action:  "Pick a country from the selection list",
			Code:    "QRY002",
		},
	},
	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},
}

// defaultMessage is returned when no pattern matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// It searches the known patterns (case-insensitive) and returns the first
// match; unmatched errors map to the generic ERR000 fallback.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}
