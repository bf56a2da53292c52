package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	gatewayRetries   = 2
	gatewayRetryWait = 200 * time.Millisecond
)

// HTTPClient is a resty client preset for JSON round trips against one base
// URL.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client that posts JSON to baseURL and gives up on a
// request after timeout (zero disables the limit). Responses from a proxy
// that could not reach the server (502, 503, 504) are retried twice.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetRetryCount(gatewayRetries).
		SetRetryWaitTime(gatewayRetryWait).
		AddRetryCondition(isGatewayError)

	if timeout > 0 {
		c.SetTimeout(timeout)
	}

	return &HTTPClient{Client: c}
}

func isGatewayError(resp *resty.Response, err error) bool {
	if err != nil || resp == nil {
		return false
	}
	switch resp.StatusCode() {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}
