package twist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
)

// Client is a Twist API client. It is safe for concurrent use once
// [Client.Connect] has returned.
type Client struct {
	baseURL string
	options *Options

	connectMu sync.Mutex
	client    *resty.Client

	tokenMu     sync.RWMutex
	accessToken string
}

var _ API = (*Client)(nil)

// New returns an unconnected client for the API rooted at baseURL. An empty
// baseURL selects [DefaultBaseURL].
func New(baseURL string, opts ...Option) *Client {
	options := newClientOptions()

	for _, o := range opts {
		o(options)
	}

	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	return &Client{
		baseURL:     baseURL,
		options:     options,
		accessToken: options.accessToken,
	}
}

// Connect validates the configuration and prepares the HTTP transport.
// Calling it again after a successful call is a no-op. Connect performs no
// network I/O.
func (c *Client) Connect(_ context.Context) error {
	if c == nil {
		return errors.New("twist client is nil")
	}

	c.connectMu.Lock()
	defer c.connectMu.Unlock()

	if c.client != nil {
		return nil
	}

	if err := validateAbsoluteURL("base URL", c.baseURL); err != nil {
		return err
	}

	if err := c.options.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	var client *resty.Client
	if c.options.httpClient != nil {
		client = resty.NewWithClient(c.options.httpClient)
	} else {
		client = resty.New()
	}

	client.
		SetBaseURL(c.baseURL).
		SetHeaders(c.options.requestHeaders).
		SetHeader("User-Agent", c.options.userAgent).
		SetLogger(c.options.requestLogger).
		SetRetryCount(0)

	c.client = client

	return nil
}

// Close releases idle connections held by the transport.
func (c *Client) Close() {
	if c == nil {
		return
	}

	c.connectMu.Lock()
	defer c.connectMu.Unlock()

	if c.client != nil {
		c.client.GetClient().CloseIdleConnections()
	}
}

// SetAccessToken replaces the bearer token used by authenticated calls. An
// empty token returns the client to the unauthenticated state.
func (c *Client) SetAccessToken(token string) {
	c.tokenMu.Lock()
	defer c.tokenMu.Unlock()

	c.accessToken = strings.TrimSpace(token)
}

// AccessToken returns the current bearer token, or an empty string.
func (c *Client) AccessToken() string {
	c.tokenMu.RLock()
	defer c.tokenMu.RUnlock()

	return c.accessToken
}

func (c *Client) HasAccessToken() bool {
	return c.AccessToken() != ""
}

// Do sends a request to endpoint and returns the response body exactly as
// received. It is the escape hatch for endpoints without a typed method.
// For GET the payload becomes query parameters, for POST the request body;
// DELETE ignores it.
func (c *Client) Do(ctx context.Context, method, endpoint string, payload any, authRequired bool) (json.RawMessage, error) {
	var out json.RawMessage

	if err := c.dispatch(ctx, method, endpoint, payload, authRequired, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) get(ctx context.Context, endpoint string, payload, out any) error {
	return c.dispatch(ctx, http.MethodGet, endpoint, payload, true, out)
}

func (c *Client) post(ctx context.Context, endpoint string, payload, out any) error {
	return c.dispatch(ctx, http.MethodPost, endpoint, payload, true, out)
}

func (c *Client) postAnonymous(ctx context.Context, endpoint string, payload, out any) error {
	return c.dispatch(ctx, http.MethodPost, endpoint, payload, false, out)
}

func (c *Client) dispatch(ctx context.Context, method, endpoint string, payload any, authRequired bool, out any) error {
	if c == nil {
		return errors.New("twist client is nil")
	}

	c.connectMu.Lock()
	client := c.client
	c.connectMu.Unlock()

	if client == nil {
		return ErrNotConnected
	}

	if err := requireRelativeEndpoint(endpoint); err != nil {
		return err
	}

	req := client.R().SetContext(ctx)

	if authRequired {
		token := c.AccessToken()
		if token == "" {
			return ErrNoAccessToken
		}

		req.SetAuthToken(token)
	}

	switch method {
	case http.MethodGet:
		params, err := encodeParams(payload)
		if err != nil {
			return err
		}

		req.SetQueryParamsFromValues(params)
	case http.MethodPost:
		if c.options.jsonBody {
			body, err := payloadToMap(payload)
			if err != nil {
				return err
			}

			req.SetHeader("Content-Type", "application/json").SetBody(body)
		} else {
			params, err := encodeParams(payload)
			if err != nil {
				return err
			}

			req.SetFormDataFromValues(params)
		}
	case http.MethodDelete:
	default:
		return fmt.Errorf("unsupported method %s", method)
	}

	c.options.requestLogger.Debugf("%s %s", method, endpoint)

	resp, err := req.Execute(method, endpoint)
	if err != nil {
		c.options.requestLogger.Warnf("%s %s failed: %v", method, endpoint, err)
		return &RequestError{Method: method, Endpoint: endpoint, Err: err}
	}

	if resp.StatusCode() >= http.StatusMultipleChoices {
		c.options.requestLogger.Warnf("%s %s returned status %d", method, endpoint, resp.StatusCode())

		return &RequestError{
			Method:     method,
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode(),
			Body:       extractErrorMessage(resp.Body()),
			Err:        ErrRequestFailed,
		}
	}

	body := resp.Body()
	if out == nil || len(strings.TrimSpace(string(body))) == 0 {
		return nil
	}

	if raw, ok := out.(*json.RawMessage); ok {
		*raw = append((*raw)[:0], body...)
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &RequestError{Method: method, Endpoint: endpoint, StatusCode: resp.StatusCode(), Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	return nil
}

// requireRelativeEndpoint keeps every request on the configured base URL.
func requireRelativeEndpoint(endpoint string) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return &ValidationError{Field: "endpoint", Reason: ErrInvalidValue, Err: err}
	}

	if u.IsAbs() || u.Host != "" {
		return &ValidationError{
			Field:  "endpoint",
			Reason: ErrInvalidValue,
			Err:    errors.New("must be a path relative to the base URL"),
		}
	}

	return nil
}

// extractErrorMessage prefers the "error_string" or "error" field of a JSON
// error body and falls back to the raw body.
func extractErrorMessage(body []byte) string {
	var payload struct {
		ErrorString string `json:"error_string"`
		Error       string `json:"error"`
	}

	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.ErrorString != "" {
			return payload.ErrorString
		}

		if payload.Error != "" {
			return payload.Error
		}
	}

	return string(body)
}

type idPayload struct {
	ID int64 `json:"id"`
}

func getResult[T any](ctx context.Context, c *Client, endpoint string, payload any) (*T, error) {
	var out T
	if err := c.get(ctx, endpoint, payload, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func getList[T any](ctx context.Context, c *Client, endpoint string, payload any) ([]T, error) {
	var out []T
	if err := c.get(ctx, endpoint, payload, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func postResult[T any](ctx context.Context, c *Client, endpoint string, payload any) (*T, error) {
	var out T
	if err := c.post(ctx, endpoint, payload, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
