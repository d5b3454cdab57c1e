package twist

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientOptions(t *testing.T) {
	t.Parallel()

	opts := newClientOptions()

	assert.Equal(t, DefaultAuthURL, opts.authURL)
	assert.Equal(t, DefaultTokenURL, opts.tokenURL)
	assert.Equal(t, "twist-go-client", opts.userAgent)
	assert.NotNil(t, opts.requestLogger)
	assert.False(t, opts.jsonBody, "expected form bodies by default")
	assert.Equal(t, "application/json", opts.requestHeaders["Accept"])
	assert.NotContains(t, opts.requestHeaders, "Content-Type")
}

func TestWithClientCredentials(t *testing.T) {
	t.Parallel()

	opts := newClientOptions()
	WithClientCredentials(" id ", " secret\n")(opts)

	assert.Equal(t, "id", opts.clientID)
	assert.Equal(t, "secret", opts.clientSecret)
}

func TestWithAccessToken(t *testing.T) {
	t.Parallel()

	opts := newClientOptions()
	WithAccessToken("  tok  ")(opts)

	assert.Equal(t, "tok", opts.accessToken)
}

func TestWithAuthURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"custom", "http://localhost/authorize", "http://localhost/authorize"},
		{"empty ignored", "", DefaultAuthURL},
		{"blank ignored", "   ", DefaultAuthURL},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := newClientOptions()
			WithAuthURL(tt.input)(opts)

			assert.Equal(t, tt.expected, opts.authURL)
		})
	}
}

func TestWithTokenURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"custom", "http://localhost/token", "http://localhost/token"},
		{"empty ignored", "", DefaultTokenURL},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := newClientOptions()
			WithTokenURL(tt.input)(opts)

			assert.Equal(t, tt.expected, opts.tokenURL)
		})
	}
}

func TestWithUserAgent(t *testing.T) {
	t.Parallel()

	opts := newClientOptions()
	WithUserAgent("")(opts)

	assert.Equal(t, "twist-go-client", opts.userAgent, "expected empty user agent to be ignored")

	WithUserAgent("bot/2")(opts)

	assert.Equal(t, "bot/2", opts.userAgent)
}

func TestWithJSONBody(t *testing.T) {
	t.Parallel()

	opts := newClientOptions()
	WithJSONBody()(opts)

	assert.True(t, opts.jsonBody)
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()

	opts := newClientOptions()
	WithHTTPClient(nil)(opts)

	assert.Nil(t, opts.httpClient, "expected nil http client to be ignored")

	hc := &http.Client{Timeout: 5 * time.Second}
	WithHTTPClient(hc)(opts)

	assert.Same(t, hc, opts.httpClient)
}

func TestWithRequestLogger(t *testing.T) {
	t.Parallel()

	t.Run("valid logger", func(t *testing.T) {
		t.Parallel()

		opts := newClientOptions()
		logger := NewHCLogger(nil)
		WithRequestLogger(logger)(opts)

		assert.Equal(t, logger, opts.requestLogger)
	})

	t.Run("nil logger ignored", func(t *testing.T) {
		t.Parallel()

		opts := newClientOptions()
		original := opts.requestLogger
		WithRequestLogger(nil)(opts)

		assert.Equal(t, original, opts.requestLogger)
	})
}

func TestWithRequestHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		header      string
		value       string
		shouldBeSet bool
	}{
		{"custom header", "X-Custom", "value", true},
		{"empty header ignored", "", "value", false},
		{"whitespace header ignored", "   ", "value", false},
		{"Content-Type protected", "Content-Type", "text/plain", false},
		{"content-type protected", "content-type", "text/plain", false},
		{"Accept protected", "Accept", "text/plain", false},
		{"Authorization protected", "Authorization", "Basic abc", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := newClientOptions()
			before := len(opts.requestHeaders)
			WithRequestHeader(tt.header, tt.value)(opts)

			if tt.shouldBeSet {
				assert.Equal(t, tt.value, opts.requestHeaders[tt.header])
				return
			}

			assert.Len(t, opts.requestHeaders, before)
			assert.Equal(t, "application/json", opts.requestHeaders["Accept"])
		})
	}
}

func TestOptionsValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		modify    func(*Options)
		wantError string
	}{
		{
			name:      "valid defaults",
			modify:    func(_ *Options) {},
			wantError: "",
		},
		{
			name: "valid credentials",
			modify: func(o *Options) {
				o.clientID = "id"
				o.clientSecret = "secret"
			},
			wantError: "",
		},
		{
			name:      "client id only",
			modify:    func(o *Options) { o.clientID = "id" },
			wantError: "",
		},
		{
			name:      "nil requestLogger",
			modify:    func(o *Options) { o.requestLogger = nil },
			wantError: "requestLogger must not be nil",
		},
		{
			name:      "authURL without scheme",
			modify:    func(o *Options) { o.authURL = "twist.com/oauth/authorize" },
			wantError: "authURL must use http or https scheme",
		},
		{
			name:      "authURL unparsable",
			modify:    func(o *Options) { o.authURL = "http://[::1" },
			wantError: "authURL is not a valid URL",
		},
		{
			name:      "tokenURL without host",
			modify:    func(o *Options) { o.tokenURL = "https://" },
			wantError: "tokenURL must include a host",
		},
		{
			name:      "secret without id",
			modify:    func(o *Options) { o.clientSecret = "secret" },
			wantError: "clientSecret is set but clientID is empty",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := newClientOptions()
			tt.modify(opts)

			err := opts.Validate()

			if tt.wantError == "" {
				require.NoError(t, err)
				return
			}

			assert.EqualError(t, err, tt.wantError)
		})
	}
}
