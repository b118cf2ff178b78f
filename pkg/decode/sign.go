package decode

import (
	"encoding/json"
	"net/url"

	"github.com/pkg/errors"
)

// WebAuthnSignResponse parses the JSON a browser (or pkg/token) returns
// after signing a WebAuthn sign request into the request parameters
// expected by /validate/check. The userhandle and
// assertionclientextensions fields are optional.
func WebAuthnSignResponse(raw string) (url.Values, error) {
	var obj map[string]interface{}

	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return nil, errors.Wrap(err, "webauthn sign response has the wrong format")
	}

	params := url.Values{}

	params.Set("credentialid", getString(obj, "credentialid"))
	params.Set("clientdata", getString(obj, "clientdata"))
	params.Set("signaturedata", getString(obj, "signaturedata"))
	params.Set("authenticatordata", getString(obj, "authenticatordata"))

	if v := getString(obj, "userhandle"); v != "" {
		params.Set("userhandle", v)
	}

	if v := getString(obj, "assertionclientextensions"); v != "" {
		params.Set("assertionclientextensions", v)
	}

	return params, nil
}

// U2FSignResponse parses the JSON a browser returns after signing a U2F
// sign request into the request parameters expected by /validate/check.
func U2FSignResponse(raw string) (url.Values, error) {
	var obj map[string]interface{}

	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return nil, errors.Wrap(err, "u2f sign response has the wrong format")
	}

	params := url.Values{}

	params.Set("clientdata", getString(obj, "clientData"))
	params.Set("signaturedata", getString(obj, "signatureData"))

	return params, nil
}
