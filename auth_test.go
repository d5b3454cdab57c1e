package twist

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthURL(t *testing.T) {
	t.Parallel()

	client := New("", WithClientCredentials("client-1", "secret"))

	raw, err := client.AuthURL([]Scope{ScopeUserRead, ScopeChannelsWrite}, "xyz")
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "twist.com", u.Host)
	assert.Equal(t, "/oauth/authorize", u.Path)

	q := u.Query()
	assert.Equal(t, "client-1", q.Get("client_id"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "user:read,channels:write", q.Get("scope"))
	assert.Equal(t, "xyz", q.Get("state"))
	assert.Empty(t, q.Get("client_secret"))
}

func TestAuthURL_CustomEndpointNoScopes(t *testing.T) {
	t.Parallel()

	client := New("", WithClientCredentials("client-1", ""), WithAuthURL("http://localhost:8080/auth"))

	raw, err := client.AuthURL(nil, "abc")
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", u.Host)
	assert.False(t, u.Query().Has("scope"))
}

func TestAuthURL_Errors(t *testing.T) {
	t.Parallel()

	_, err := New("").AuthURL([]Scope{ScopeUserRead}, "xyz")
	assert.ErrorIs(t, err, ErrMissingClientCredentials)

	_, err = New("", WithClientCredentials("id", "")).AuthURL(nil, "   ")
	assert.ErrorIs(t, err, ErrEmptyField)

	var client *Client
	_, err = client.AuthURL(nil, "xyz")
	assert.EqualError(t, err, "twist client is nil")
}

func TestNewState(t *testing.T) {
	t.Parallel()

	a, b := NewState(), NewState()

	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}

func TestExchangeToken(t *testing.T) {
	t.Parallel()

	var form url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		form = r.PostForm
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"new-token","token_type":"Bearer"}`))
	}))
	defer server.Close()

	client := New("", WithClientCredentials("id", "secret"), WithTokenURL(server.URL+"/oauth/access_token"))

	tok, err := client.ExchangeToken(context.Background(), " the-code ")
	require.NoError(t, err)

	assert.Equal(t, &Token{AccessToken: "new-token", TokenType: "Bearer"}, tok)
	assert.Equal(t, "new-token", client.AccessToken())

	assert.Equal(t, "the-code", form.Get("code"))
	assert.Equal(t, "authorization_code", form.Get("grant_type"))
	assert.Equal(t, "id", form.Get("client_id"))
	assert.Equal(t, "secret", form.Get("client_secret"))
}

func TestExchangeToken_UsesHTTPClient(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"t","token_type":"Bearer"}`))
	}))
	defer server.Close()

	rt := &countingTransport{next: http.DefaultTransport}
	client := New("",
		WithClientCredentials("id", "secret"),
		WithTokenURL(server.URL),
		WithHTTPClient(&http.Client{Transport: rt}),
	)

	_, err := client.ExchangeToken(context.Background(), "code")
	require.NoError(t, err)

	assert.Equal(t, 1, rt.count)
}

func TestExchangeToken_Failure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer server.Close()

	client := New("", WithClientCredentials("id", "secret"), WithTokenURL(server.URL))

	tok, err := client.ExchangeToken(context.Background(), "bad-code")
	require.Error(t, err)
	assert.Nil(t, tok)

	var authErr *AuthError
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, http.StatusBadRequest, authErr.StatusCode)
	assert.Contains(t, authErr.Body, "invalid_grant")
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.False(t, client.HasAccessToken())
}

func TestExchangeToken_Validation(t *testing.T) {
	t.Parallel()

	_, err := New("", WithClientCredentials("id", "")).ExchangeToken(context.Background(), "code")
	assert.ErrorIs(t, err, ErrMissingClientCredentials)

	_, err = New("").ExchangeToken(context.Background(), "code")
	assert.ErrorIs(t, err, ErrMissingClientCredentials)

	_, err = New("", WithClientCredentials("id", "secret")).ExchangeToken(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyField)
}

type countingTransport struct {
	next  http.RoundTripper
	count int
}

func (t *countingTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	t.count++
	return t.next.RoundTrip(r)
}
