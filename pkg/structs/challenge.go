package structs

// Token types as reported by the server in challenge and detail data.
const (
	TokenTypePush     = "push"
	TokenTypeOTP      = "otp"
	TokenTypeTOTP     = "totp"
	TokenTypeHOTP     = "hotp"
	TokenTypeWebAuthn = "webauthn"
	TokenTypeU2F      = "u2f"
)

// ChallengeKind selects the challenge variant. It is assigned once when
// the server response is decoded so that callers can switch on it
// without inspecting token type strings.
type ChallengeKind int

const (
	ChallengeGeneric ChallengeKind = iota
	ChallengeWebAuthn
	ChallengeU2F
)

func (k ChallengeKind) String() string {
	switch k {
	case ChallengeWebAuthn:
		return "webauthn"
	case ChallengeU2F:
		return "u2f"
	default:
		return "generic"
	}
}

// Challenge is one entry of a response's multi_challenge list.
// Challenges sharing a transaction id are alternative ways to complete
// the same authentication step.
type Challenge struct {
	Kind          ChallengeKind
	Serial        string
	Message       string
	ClientMode    string
	Image         string
	TransactionID string
	Type          string
	Attributes    []string

	// SignRequest is the vendor sign request JSON from the challenge
	// attributes. Set for WebAuthn and U2F challenges only.
	SignRequest string
}
