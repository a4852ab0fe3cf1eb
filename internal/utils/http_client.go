package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:11434/v1", 30*time.Second)
//	resp, err := client.R().Post("/chat/completions")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent HTTPClient rooted at baseURL.
// A zero timeout leaves requests bounded only by their context.
// Retries are disabled.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetRetryCount(0)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
