package structs

import "strings"

// Response is the decoded answer of the server for one request. It is
// constructed once per decode and not modified afterwards. Raw retains
// the body exactly as received.
//
// When Error is set the server reported a protocol-level failure and
// the remaining fields carry no meaning.
type Response struct {
	ID             int
	JSONRPCVersion string
	Version        string
	Signature      string

	Status         bool
	Value          bool
	Authentication AuthenticationStatus

	Message             string
	Messages            []string
	PreferredClientMode string
	Multichallenge      []Challenge
	TransactionID       string
	Serial              string
	Image               string
	Type                string
	OTPLength           int

	Raw   string
	Error *Error
}

// PushAvailable reports whether any triggered challenge is a push
// challenge.
func (r *Response) PushAvailable() bool {
	for _, c := range r.Multichallenge {
		if c.Type == TokenTypePush {
			return true
		}
	}
	return false
}

// PushMessage returns the messages of all push challenges combined,
// for display while waiting for confirmation on the device.
func (r *Response) PushMessage() string {
	return r.challengeMessages(func(c Challenge) bool {
		return c.Type == TokenTypePush
	})
}

// OTPMessage returns the messages of all challenges that expect an
// input field. Anything that is not push counts as OTP.
func (r *Response) OTPMessage() string {
	return r.challengeMessages(func(c Challenge) bool {
		return c.Type != TokenTypePush
	})
}

func (r *Response) challengeMessages(match func(Challenge) bool) string {
	seen := map[string]bool{}
	ms := []string{}

	for _, c := range r.Multichallenge {
		if match(c) && !seen[c.Message] {
			seen[c.Message] = true
			ms = append(ms, c.Message)
		}
	}

	return strings.Join(ms, ", ")
}

// TriggeredTokenTypes returns the distinct token types of the triggered
// challenges in server order.
func (r *Response) TriggeredTokenTypes() []string {
	seen := map[string]bool{}
	ts := []string{}

	for _, c := range r.Multichallenge {
		if !seen[c.Type] {
			seen[c.Type] = true
			ts = append(ts, c.Type)
		}
	}

	return ts
}

// WebAuthnSignRequests returns all WebAuthn challenges of the response.
func (r *Response) WebAuthnSignRequests() []Challenge {
	cs := []Challenge{}

	for _, c := range r.Multichallenge {
		if c.Kind == ChallengeWebAuthn {
			cs = append(cs, c)
		}
	}

	return cs
}

// U2FSignRequests returns all U2F challenges of the response.
func (r *Response) U2FSignRequests() []Challenge {
	cs := []Challenge{}

	for _, c := range r.Multichallenge {
		if c.Kind == ChallengeU2F {
			cs = append(cs, c)
		}
	}

	return cs
}

// MergedSignRequest returns a single WebAuthn sign request whose
// allowCredentials list is the union of all triggered WebAuthn
// challenges, so that any permitted device can answer it. Returns an
// empty string if no WebAuthn challenge was triggered or any sign
// request cannot be parsed.
func (r *Response) MergedSignRequest() string {
	reqs := r.WebAuthnSignRequests()

	switch len(reqs) {
	case 0:
		return ""
	case 1:
		return reqs[0].SignRequest
	}

	merged, err := MergeSignRequests(reqs)
	if err != nil {
		return ""
	}

	return merged
}
