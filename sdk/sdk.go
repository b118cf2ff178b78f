// Package sdk is a client for the eduMFA authentication API. It wraps
// the challenge/response endpoints of the server as methods, runs every
// request on a bounded worker pool and acquires a bearer token first
// for operations that require one.
package sdk

import (
	"net/url"
	"strings"
	"time"

	"github.com/convox/logger"
	"github.com/pkg/errors"
)

// Server endpoints.
const (
	EndpointAuth             = "/auth"
	EndpointPollTransaction  = "/validate/polltransaction"
	EndpointToken            = "/token/"
	EndpointTokenInit        = "/token/init"
	EndpointTriggerChallenge = "/validate/triggerchallenge"
	EndpointValidateCheck    = "/validate/check"
)

const (
	DefaultTimeout = 30 * time.Second

	poolWorkers = 20
	poolQueue   = 1000
	poolIdle    = 10 * time.Second
)

// ServiceAccount is the administrative credential used to obtain bearer
// tokens for privileged endpoints.
type ServiceAccount struct {
	Name     string
	Password string
	Realm    string
}

// Client talks to one eduMFA server. Configuration is set at
// construction and never mutated afterwards; a Client is safe for
// concurrent use.
type Client struct {
	Endpoint  *url.URL
	UserAgent string
	Realm     string
	Service   ServiceAccount
	Timeout   time.Duration
	Insecure  bool

	// LogExcluded lists endpoints whose response bodies are not
	// logged, to keep credentials and poll spam out of the logs.
	LogExcluded []string

	log       *logger.Logger
	pool      *pool
	transport Transport
}

// ensure interface parity
var _ Interface = &Client{}

// New creates a client for the server at endpoint. The user agent
// should identify the plugin using this client.
func New(endpoint, userAgent string, opts ...Option) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "parse endpoint")
	}

	if u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("invalid endpoint: %s", endpoint)
	}

	u.Path = strings.TrimSuffix(u.Path, "/")

	c := &Client{
		Endpoint:    u,
		UserAgent:   userAgent,
		Timeout:     DefaultTimeout,
		LogExcluded: []string{EndpointAuth, EndpointPollTransaction},
		log:         logger.New("ns=sdk"),
	}

	for _, o := range opts {
		o(c)
	}

	if c.transport == nil {
		c.transport = newHTTPTransport(c)
	}

	c.pool = newPool(poolWorkers, poolQueue, poolIdle)

	return c, nil
}

// Close stops the worker pool. Queued requests that have not started
// fail with ErrClosed; requests already on the wire run to completion.
func (c *Client) Close() error {
	c.pool.close()
	return nil
}

// ServiceAccountAvailable reports whether a service account is
// configured.
func (c *Client) ServiceAccountAvailable() bool {
	return c.Service.Name != "" && c.Service.Password != ""
}

func (c *Client) serviceAccountParams() url.Values {
	params := url.Values{}

	params.Set("username", c.Service.Name)
	params.Set("password", c.Service.Password)

	switch {
	case c.Service.Realm != "":
		params.Set("realm", c.Service.Realm)
	case c.Realm != "":
		params.Set("realm", c.Realm)
	}

	return params
}

func (c *Client) appendRealm(params url.Values) {
	if c.Realm != "" {
		params.Set("realm", c.Realm)
	}
}

func (c *Client) logExcluded(path string) bool {
	for _, p := range c.LogExcluded {
		if p == path {
			return true
		}
	}

	return false
}
