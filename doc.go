// Package twist provides an HTTP client for the Twist team-messaging API.
//
// The client wraps [github.com/go-resty/resty/v2] for transport and
// [golang.org/x/oauth2] for the authorization-code exchange. Every operation
// validates its arguments locally before any request is sent.
//
// # Basic Usage
//
//	c := twist.New(twist.DefaultBaseURL,
//	    twist.WithClientCredentials(clientID, clientSecret),
//	    twist.WithAccessToken(storedToken),
//	)
//
//	if err := c.Connect(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//
//	user, err := c.GetSessionUser(ctx)
//
// # Authentication
//
// Send the end user to [Client.AuthURL] with the scopes you need and an
// opaque state value (see [NewState]). The authorization server redirects
// back with a one-time code; pass it to [Client.ExchangeToken] to obtain an
// access token. The client keeps the token in memory only. Persist it
// yourself and restore it with [WithAccessToken] or [Client.SetAccessToken].
// Tokens are never refreshed; an expired token surfaces as a [RequestError].
//
// Calling an authenticated operation without a token fails with
// [ErrNoAccessToken] and sends nothing. [Client.ResetPassword] and
// [Client.SetPasswordByCode] are the only operations that work without one.
//
// # Errors
//
// Bad arguments produce a [ValidationError] that matches one of
// [ErrInvalidID], [ErrEmptyField], [ErrInvalidValue] or [ErrNothingToUpdate].
// Network failures and any HTTP status of 300 or above produce a
// [RequestError], which matches [ErrRequestFailed]. Requests are never
// retried.
//
// # Request Encoding
//
// GET parameters travel in the query string. POST bodies are
// form-urlencoded by default, with list and object values JSON encoded;
// [WithJSONBody] switches POST bodies to JSON.
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to
// integrate with your logging library, or wrap an hclog logger with
// [NewHCLogger]. The default [NoopLogger] discards all log output. The
// client never logs tokens or request bodies.
package twist
