package twist

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// Scope is an OAuth permission requested from the end user.
type Scope string

const (
	ScopeUserRead            Scope = "user:read"
	ScopeUserWrite           Scope = "user:write"
	ScopeWorkspacesRead      Scope = "workspaces:read"
	ScopeWorkspacesWrite     Scope = "workspaces:write"
	ScopeChannelsRead        Scope = "channels:read"
	ScopeChannelsWrite       Scope = "channels:write"
	ScopeChannelsRemove      Scope = "channels:remove"
	ScopeThreadsRead         Scope = "threads:read"
	ScopeThreadsWrite        Scope = "threads:write"
	ScopeThreadsRemove       Scope = "threads:remove"
	ScopeCommentsRead        Scope = "comments:read"
	ScopeCommentsWrite       Scope = "comments:write"
	ScopeCommentsRemove      Scope = "comments:remove"
	ScopeGroupsRead          Scope = "groups:read"
	ScopeGroupsWrite         Scope = "groups:write"
	ScopeGroupsRemove        Scope = "groups:remove"
	ScopeMessagesRead        Scope = "messages:read"
	ScopeMessagesWrite       Scope = "messages:write"
	ScopeMessagesRemove      Scope = "messages:remove"
	ScopeNotificationsRead   Scope = "notifications:read"
	ScopeNotificationsWrite  Scope = "notifications:write"
	ScopeSearchRead          Scope = "search:read"
	ScopeAttachmentsRead     Scope = "attachments:read"
	ScopeAttachmentsWrite    Scope = "attachments:write"
	ScopeReactionsRead       Scope = "reactions:read"
	ScopeReactionsWrite      Scope = "reactions:write"
	ScopeConversationsRead   Scope = "conversations:read"
	ScopeConversationsWrite  Scope = "conversations:write"
	ScopeConversationsRemove Scope = "conversations:remove"
)

// Token is the result of a successful authorization-code exchange. Persist
// it yourself; the client keeps it only in memory.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// NewState returns a random opaque value for the state parameter of
// [Client.AuthURL]. Compare it with the value echoed back on the redirect.
func NewState() string {
	return uuid.NewString()
}

func (c *Client) oauthConfig(scopes []Scope) *oauth2.Config {
	cfg := &oauth2.Config{
		ClientID:     c.options.clientID,
		ClientSecret: c.options.clientSecret,
		Endpoint: oauth2.Endpoint{
			AuthURL:   c.options.authURL,
			TokenURL:  c.options.tokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}

	// Twist expects a comma separated scope list, oauth2 joins with spaces.
	if len(scopes) > 0 {
		names := make([]string, len(scopes))
		for i, s := range scopes {
			names[i] = string(s)
		}

		cfg.Scopes = []string{strings.Join(names, ",")}
	}

	return cfg
}

// AuthURL builds the URL the end user visits to authorize the integration.
// The authorization server redirects back with a one-time code and the same
// state value.
func (c *Client) AuthURL(scopes []Scope, state string) (string, error) {
	if c == nil {
		return "", errors.New("twist client is nil")
	}

	if c.options.clientID == "" {
		return "", ErrMissingClientCredentials
	}

	if err := requireText(state, "state"); err != nil {
		return "", err
	}

	return c.oauthConfig(scopes).AuthCodeURL(state), nil
}

// ExchangeToken trades an authorization code for an access token. On
// success the token is installed on the client and returned.
func (c *Client) ExchangeToken(ctx context.Context, code string) (*Token, error) {
	if c == nil {
		return nil, errors.New("twist client is nil")
	}

	if c.options.clientID == "" || c.options.clientSecret == "" {
		return nil, ErrMissingClientCredentials
	}

	if err := requireText(code, "authorization code"); err != nil {
		return nil, err
	}

	if c.options.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, c.options.httpClient)
	}

	c.options.requestLogger.Debugf("POST %s", c.options.tokenURL)

	tok, err := c.oauthConfig(nil).Exchange(ctx, strings.TrimSpace(code))
	if err != nil {
		c.options.requestLogger.Warnf("token exchange failed: %v", err)

		authErr := &AuthError{Err: err}

		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
			authErr.StatusCode = retrieveErr.Response.StatusCode
			authErr.Body = string(retrieveErr.Body)
		}

		return nil, authErr
	}

	c.SetAccessToken(tok.AccessToken)

	return &Token{
		AccessToken: tok.AccessToken,
		TokenType:   tok.TokenType,
	}, nil
}
