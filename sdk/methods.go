package sdk

import (
	"net/url"

	"github.com/edumfa/edumfa-go/pkg/decode"
	"github.com/edumfa/edumfa-go/pkg/structs"
)

// ValidateCheck authenticates a user against /validate/check. The pass
// may be a PIN, an OTP, a concatenation of both or empty to trigger
// challenges for passthru policies.
func (c *Client) ValidateCheck(username, pass string, opts structs.CheckOptions) (*structs.Response, error) {
	return c.validate("user", username, pass, opts)
}

// ValidateCheckSerial authenticates against a single token identified
// by serial instead of a user.
func (c *Client) ValidateCheckSerial(serial, pass string, opts structs.CheckOptions) (*structs.Response, error) {
	return c.validate("serial", serial, pass, opts)
}

func (c *Client) validate(key, id, pass string, opts structs.CheckOptions) (*structs.Response, error) {
	params := url.Values{}

	params.Set(key, id)
	params.Set("pass", pass)

	c.appendRealm(params)

	if opts.TransactionID != "" {
		params.Set("transaction_id", opts.TransactionID)
	}

	return c.execute(EndpointValidateCheck, "POST", params, opts.Headers, false)
}

// ValidateCheckWebAuthn completes a WebAuthn challenge. The sign
// response is the JSON produced by the authenticator; origin is sent as
// the Origin header the server uses for verification.
func (c *Client) ValidateCheckWebAuthn(username, transactionID, signResponse, origin string, opts structs.CheckOptions) (*structs.Response, error) {
	params, err := decode.WebAuthnSignResponse(signResponse)
	if err != nil {
		return nil, err
	}

	params.Set("user", username)
	params.Set("transaction_id", transactionID)
	params.Set("pass", "")

	c.appendRealm(params)

	// caller headers override Origin
	headers := map[string]string{"Origin": origin}

	for k, v := range opts.Headers {
		headers[k] = v
	}

	return c.execute(EndpointValidateCheck, "POST", params, headers, false)
}

// ValidateCheckU2F completes a U2F challenge with the sign response
// JSON produced by the token.
func (c *Client) ValidateCheckU2F(username, transactionID, signResponse string, opts structs.CheckOptions) (*structs.Response, error) {
	params, err := decode.U2FSignResponse(signResponse)
	if err != nil {
		return nil, err
	}

	params.Set("user", username)
	params.Set("transaction_id", transactionID)
	params.Set("pass", "")

	c.appendRealm(params)

	return c.execute(EndpointValidateCheck, "POST", params, opts.Headers, false)
}

// TriggerChallenges fires challenges for all challenge/response tokens
// of the user. Requires a service account.
func (c *Client) TriggerChallenges(username string, opts structs.CheckOptions) (*structs.Response, error) {
	params := url.Values{}

	params.Set("user", username)

	c.appendRealm(params)

	return c.execute(EndpointTriggerChallenge, "POST", params, opts.Headers, true)
}

// PollTransaction reports whether the transaction has been confirmed,
// for example by a push token. A finalizing ValidateCheck with an empty
// pass is still required afterwards.
func (c *Client) PollTransaction(transactionID string) (bool, error) {
	params := url.Values{}

	params.Set("transaction_id", transactionID)

	r, err := c.execute(EndpointPollTransaction, "GET", params, nil, false)
	if err != nil {
		return false, err
	}

	if r == nil {
		return false, nil
	}

	return r.Value, nil
}

// AuthToken obtains a bearer token for the configured service account.
func (c *Client) AuthToken() (string, error) {
	if !c.ServiceAccountAvailable() {
		return "", ErrServiceAccountMissing
	}

	f, err := c.pool.submit(func() (string, error) {
		return c.fetchAuthToken()
	})
	if err != nil {
		return "", err
	}

	return f.wait()
}

// TokenInfo lists the tokens of the user. Requires a service account.
func (c *Client) TokenInfo(username string) ([]structs.TokenInfo, error) {
	if !c.ServiceAccountAvailable() {
		return nil, ErrServiceAccountMissing
	}

	params := url.Values{}

	params.Set("user", username)

	f, err := c.pool.submit(func() (string, error) {
		return c.run(EndpointToken, "GET", params, nil, true)
	})
	if err != nil {
		return nil, err
	}

	body, err := f.wait()
	if err != nil {
		return nil, err
	}

	if !c.logExcluded(EndpointToken) {
		c.log.At("response").Logf("path=%s body=%s", EndpointToken, decode.FormatJSON(body))
	}

	return decode.TokenInfoList(body)
}

// TokenRollout enrolls a new token for the user with a server-generated
// secret. Requires a service account.
func (c *Client) TokenRollout(username, tokenType string) (*structs.RolloutInfo, error) {
	params := url.Values{}

	params.Set("user", username)
	params.Set("type", tokenType)
	params.Set("genkey", "1")

	return c.tokenInit(params)
}

// TokenInit enrolls a new token for the user with a caller-provided
// secret. Requires a service account.
func (c *Client) TokenInit(username, tokenType, otpKey string) (*structs.RolloutInfo, error) {
	params := url.Values{}

	params.Set("user", username)
	params.Set("type", tokenType)
	params.Set("otpkey", otpKey)

	return c.tokenInit(params)
}

func (c *Client) tokenInit(params url.Values) (*structs.RolloutInfo, error) {
	if !c.ServiceAccountAvailable() {
		return nil, ErrServiceAccountMissing
	}

	f, err := c.pool.submit(func() (string, error) {
		return c.run(EndpointTokenInit, "POST", params, nil, true)
	})
	if err != nil {
		return nil, err
	}

	body, err := f.wait()
	if err != nil {
		return nil, err
	}

	if !c.logExcluded(EndpointTokenInit) {
		c.log.At("response").Logf("path=%s body=%s", EndpointTokenInit, decode.FormatJSON(body))
	}

	return decode.Rollout(body), nil
}
