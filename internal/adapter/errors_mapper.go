package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"google.golang.org/genai"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return mapStatusCode(resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
}

// mapGenaiError converts an SDK error into the package sentinels when it
// carries an HTTP status.
func mapGenaiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return mapStatusCode(apiErr.Code, apiErr.Message)
	}

	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return mapStatusCode(apiErrPtr.Code, apiErrPtr.Message)
	}

	return err
}

func mapStatusCode(code int, body string) error {
	switch {
	case code == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case code == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case code == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case code == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrRateLimited, body)
	case code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrUpstreamUnavailable, code, body)
	default:
		if body == "" {
			body = http.StatusText(code)
		}
		return fmt.Errorf("http %d: %s", code, body)
	}
}
