package sdk

import (
	"net/url"
	"time"

	"github.com/edumfa/edumfa-go/pkg/decode"
	"github.com/edumfa/edumfa-go/pkg/structs"
)

// execute runs a request on the worker pool and blocks until the body
// arrives or the timeout elapses. For operations that need a bearer
// token the /auth exchange happens first, on the same worker, with its
// own timeout; if no service account is configured the request is
// rejected before anything is submitted.
func (c *Client) execute(path, method string, params url.Values, headers map[string]string, authRequired bool) (*structs.Response, error) {
	if authRequired && !c.ServiceAccountAvailable() {
		return nil, ErrServiceAccountMissing
	}

	f, err := c.pool.submit(func() (string, error) {
		return c.run(path, method, params, headers, authRequired)
	})
	if err != nil {
		return nil, err
	}

	body, err := f.wait()
	if err != nil {
		return nil, err
	}

	if !c.logExcluded(path) {
		c.log.At("response").Logf("path=%s body=%s", path, decode.FormatJSON(body))
	}

	return decode.Response(body), nil
}

func (c *Client) run(path, method string, params url.Values, headers map[string]string, authRequired bool) (string, error) {
	hdrs := map[string]string{}

	for k, v := range headers {
		hdrs[k] = v
	}

	if authRequired {
		token, err := c.fetchAuthToken()
		if err != nil {
			return "", err
		}

		hdrs["Authorization"] = token
	}

	return c.await(Request{Path: path, Method: method, Params: params, Headers: hdrs})
}

// fetchAuthToken performs the /auth exchange. Tokens are not cached;
// every privileged call fetches a fresh one.
func (c *Client) fetchAuthToken() (string, error) {
	body, err := c.await(Request{
		Path:   EndpointAuth,
		Method: "POST",
		Params: c.serviceAccountParams(),
	})
	if err != nil {
		return "", err
	}

	token, err := decode.AuthToken(body)
	if err != nil {
		c.log.At("auth").Error(err)
		return "", ErrTokenAcquisition
	}

	return token, nil
}

// await bridges the asynchronous transport back into a blocking call.
// The callback delivers into a buffered channel so a late completion
// after the timeout does not leak the transport goroutine.
func (c *Client) await(req Request) (string, error) {
	done := make(chan result, 1)

	c.transport.Do(req, func(body string, err error) {
		done <- result{body: body, err: err}
	})

	select {
	case r := <-done:
		return r.body, r.err
	case <-time.After(c.Timeout):
		return "", ErrTimeout
	}
}
