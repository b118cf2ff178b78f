package sdk

import (
	"crypto/tls"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/convox/logger"
	"github.com/pkg/errors"
)

// Request describes one HTTP exchange with the server.
type Request struct {
	Path    string
	Method  string
	Params  url.Values
	Headers map[string]string
}

// Transport executes a request asynchronously and reports completion
// through the callback. Implementations must invoke the callback
// exactly once per request.
type Transport interface {
	Do(req Request, cb func(body string, err error))
}

// WebAuthn and U2F sign response parameters arrive from the browser
// already in the encoding the server expects; they are excluded from
// form encoding.
var passthroughParams = map[string]bool{
	"credentialid":              true,
	"clientdata":                true,
	"signaturedata":             true,
	"authenticatordata":         true,
	"userhandle":                true,
	"assertionclientextensions": true,
}

type httpTransport struct {
	base      *url.URL
	client    *http.Client
	log       *logger.Logger
	userAgent string
}

func newHTTPTransport(c *Client) *httpTransport {
	t := &http.Transport{}

	if c.Insecure {
		t.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &httpTransport{
		base:      c.Endpoint,
		client:    &http.Client{Transport: t, Timeout: c.Timeout},
		log:       c.log,
		userAgent: c.UserAgent,
	}
}

func (t *httpTransport) Do(req Request, cb func(string, error)) {
	go func() {
		cb(t.roundTrip(req))
	}()
}

func (t *httpTransport) roundTrip(req Request) (string, error) {
	log := t.log.At("request")

	log.Logf("method=%s path=%s params=%q", req.Method, req.Path, maskedParams(req.Params))

	u := *t.base
	u.Path += req.Path

	var body io.Reader

	switch req.Method {
	case "GET":
		u.RawQuery = req.Params.Encode()
	case "POST":
		body = strings.NewReader(encodeForm(req.Params))
	}

	hreq, err := http.NewRequest(req.Method, u.String(), body)
	if err != nil {
		return "", errors.Wrap(err, "build request")
	}

	hreq.Header.Set("User-Agent", t.userAgent)

	if req.Method == "POST" {
		hreq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	for k, v := range req.Headers {
		hreq.Header.Set(k, v)
	}

	res, err := t.client.Do(hreq)
	if err != nil {
		return "", err
	}

	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	// Protocol-level errors come back as JSON on non-2xx statuses;
	// the body is handed to the decoder either way.
	return string(data), nil
}

// encodeForm builds a form body, leaving sign response parameters
// untouched.
func encodeForm(params url.Values) string {
	keys := make([]string, 0, len(params))

	for k := range params {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	pairs := []string{}

	for _, k := range keys {
		for _, v := range params[k] {
			if !passthroughParams[k] {
				v = url.QueryEscape(v)
			}
			pairs = append(pairs, url.QueryEscape(k)+"="+v)
		}
	}

	return strings.Join(pairs, "&")
}

// maskedParams renders params for logging with password-like values
// replaced by asterisks.
func maskedParams(params url.Values) string {
	keys := make([]string, 0, len(params))

	for k := range params {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	pairs := []string{}

	for _, k := range keys {
		v := params.Get(k)

		if k == "pass" || k == "password" {
			v = strings.Repeat("*", len(v))
		}

		pairs = append(pairs, k+"="+v)
	}

	return strings.Join(pairs, "&")
}
