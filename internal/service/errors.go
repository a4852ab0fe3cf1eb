package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrBlankContent is returned when a note with empty or whitespace-only
	// content is submitted for analysis.
	ErrBlankContent = errors.New("note content is blank")

	// ErrConfiguration is returned when the analyzer cannot run because of
	// missing configuration, such as the API key.
	ErrConfiguration = errors.New("analyzer is not configured")

	// ErrAnalysisFailed is returned for network failures, non-success
	// replies and replies that do not match the expected format.
	ErrAnalysisFailed = errors.New("analysis failed")

	// ErrMalformedReply is wrapped together with ErrAnalysisFailed when the
	// reply cannot be parsed.
	ErrMalformedReply = errors.New("malformed analysis reply")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
