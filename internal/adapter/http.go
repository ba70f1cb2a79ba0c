package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// restClient holds what every vault service client shares: the resty client
// bound to the service base URL, the identity token source and the optional
// body integrity key.
type restClient struct {
	client *utils.HTTPClient
	tokens TokenSource

	// hasher signs request bodies; nil when no integrity key is set.
	hasher *utils.Hasher

	logger *logger.Logger
}

// newRestClient normalises and validates the base URL from
// adapterCfg.HTTPAddress, configures the HTTP client with the resolved base
// URL and request timeout, and keys the body hasher when an integrity key is
// configured.
func newRestClient(adapterCfg config.ClientAdapter, appCfg config.ClientApp, tokens TokenSource, log *logger.Logger) (*restClient, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)
	return &restClient{client: client, tokens: tokens, hasher: utils.NewHasher(appCfg.HashKey), logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// request starts a request carrying the identity token.
func (c *restClient) request(ctx context.Context) *resty.Request {
	req := c.client.R().SetContext(ctx)
	if token := c.tokens.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// jsonRequest is request with body marshalled up front so the integrity
// hash covers exactly the bytes that are sent.
func (c *restClient) jsonRequest(ctx context.Context, body any) (*resty.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request body: %w", err)
	}

	req := c.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload)
	if c.hasher != nil {
		req.SetHeader(models.HeaderBodyHash, c.hasher.HexSum(payload))
	}
	return req, nil
}
