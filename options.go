package twist

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
)

const (
	// DefaultBaseURL is the Twist REST API v3 root. Endpoint paths are appended to it.
	DefaultBaseURL = "https://api.twist.com/api/v3/"

	// DefaultAuthURL is the page end users are sent to in order to grant access.
	DefaultAuthURL = "https://twist.com/oauth/authorize"

	// DefaultTokenURL is the endpoint that exchanges an authorization code for an access token.
	DefaultTokenURL = "https://twist.com/oauth/access_token"

	defaultUserAgent = "twist-go-client"
)

type Option func(*Options)

type Options struct {
	clientID       string
	clientSecret   string
	accessToken    string
	authURL        string
	tokenURL       string
	userAgent      string
	jsonBody       bool
	httpClient     *http.Client
	requestLogger  RequestLogger
	requestHeaders map[string]string
}

func newClientOptions() *Options {
	return &Options{
		authURL:       DefaultAuthURL,
		tokenURL:      DefaultTokenURL,
		userAgent:     defaultUserAgent,
		requestLogger: &NoopLogger{},
		requestHeaders: map[string]string{
			"Accept": "application/json",
		},
	}
}

// WithClientCredentials sets the OAuth client id and secret issued for the
// integration. Both are needed by [Client.ExchangeToken]; only the id is
// needed by [Client.AuthURL].
func WithClientCredentials(clientID, clientSecret string) Option {
	return func(o *Options) {
		o.clientID = strings.TrimSpace(clientID)
		o.clientSecret = strings.TrimSpace(clientSecret)
	}
}

// WithAccessToken seeds the client with a previously obtained bearer token.
func WithAccessToken(token string) Option {
	return func(o *Options) {
		o.accessToken = strings.TrimSpace(token)
	}
}

func WithAuthURL(authURL string) Option {
	return func(o *Options) {
		if authURL = strings.TrimSpace(authURL); authURL != "" {
			o.authURL = authURL
		}
	}
}

func WithTokenURL(tokenURL string) Option {
	return func(o *Options) {
		if tokenURL = strings.TrimSpace(tokenURL); tokenURL != "" {
			o.tokenURL = tokenURL
		}
	}
}

func WithUserAgent(userAgent string) Option {
	return func(o *Options) {
		if userAgent = strings.TrimSpace(userAgent); userAgent != "" {
			o.userAgent = userAgent
		}
	}
}

// WithJSONBody makes POST requests carry a JSON body instead of the default
// form-urlencoded one.
func WithJSONBody() Option {
	return func(o *Options) {
		o.jsonBody = true
	}
}

// WithHTTPClient supplies the underlying HTTP client. It is used both for API
// calls and for the OAuth token exchange, so timeouts and proxies configured
// on it apply everywhere.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *Options) {
		if httpClient != nil {
			o.httpClient = httpClient
		}
	}
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" || isProtectedHeader(header) {
			return
		}

		o.requestHeaders[header] = value
	}
}

func isProtectedHeader(header string) bool {
	for _, h := range []string{"Content-Type", "Accept", "Authorization"} {
		if strings.EqualFold(header, h) {
			return true
		}
	}

	return false
}

func (o *Options) Validate() error {
	if o.requestLogger == nil {
		return errors.New("requestLogger must not be nil")
	}

	if err := validateAbsoluteURL("authURL", o.authURL); err != nil {
		return err
	}

	if err := validateAbsoluteURL("tokenURL", o.tokenURL); err != nil {
		return err
	}

	if o.clientSecret != "" && o.clientID == "" {
		return errors.New("clientSecret is set but clientID is empty")
	}

	return nil
}

func validateAbsoluteURL(name, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return errors.New(name + " is not a valid URL")
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New(name + " must use http or https scheme")
	}

	if u.Host == "" {
		return errors.New(name + " must include a host")
	}

	return nil
}
