package sdk

import (
	"io"
	"time"

	"github.com/convox/logger"
)

// Option configures a Client at construction time.
type Option func(*Client)

// WithRealm appends the given realm to every validate and trigger
// request.
func WithRealm(realm string) Option {
	return func(c *Client) {
		c.Realm = realm
	}
}

// WithServiceAccount sets the credential used to obtain bearer tokens
// for privileged endpoints.
func WithServiceAccount(name, password string) Option {
	return func(c *Client) {
		c.Service.Name = name
		c.Service.Password = password
	}
}

// WithServiceRealm sets a separate realm for the service account if it
// lives in a different realm than the users.
func WithServiceRealm(realm string) Option {
	return func(c *Client) {
		c.Service.Realm = realm
	}
}

// WithTimeout bounds each blocking wait on the transport. The token
// sub-request and the main request each get the full timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.Timeout = timeout
	}
}

// WithInsecureSkipVerify disables TLS peer verification. Not
// recommended outside of test setups.
func WithInsecureSkipVerify() Option {
	return func(c *Client) {
		c.Insecure = true
	}
}

// WithLogExcludedEndpoints overrides the set of endpoints whose
// response bodies are kept out of the logs.
func WithLogExcludedEndpoints(paths ...string) Option {
	return func(c *Client) {
		c.LogExcluded = paths
	}
}

// WithLogOutput redirects the client's log stream. Use io.Discard to
// disable logging.
func WithLogOutput(w io.Writer) Option {
	return func(c *Client) {
		c.log = logger.NewWriter("ns=sdk", w)
	}
}

// WithTransport replaces the HTTP transport, mainly for tests.
func WithTransport(t Transport) Option {
	return func(c *Client) {
		c.transport = t
	}
}
