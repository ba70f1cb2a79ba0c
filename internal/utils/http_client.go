package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "go-pass-vault-client"

// HTTPClient is the resty client the client adapter talks to the vault
// service with. It embeds *resty.Client so requests are built directly on
// it.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client bound to baseURL. Every request asks for
// JSON, identifies the client in User-Agent and is cancelled after timeout.
// A non-positive timeout leaves requests bounded only by their context.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080", 30*time.Second)
//	resp, err := client.R().SetContext(ctx).Get("/api/version")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}
