package network

import (
	"net/http"
	"time"
)

const DefaultRequestTimeout = 30 * time.Second

// NewHttpClient returns the http client shared by all rpc endpoints. A non positive timeout uses
// DefaultRequestTimeout.
func NewHttpClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConnsPerHost: 4,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
		},
	}
}
