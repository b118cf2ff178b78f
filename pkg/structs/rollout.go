package structs

// ProvisioningURL is one encoding of the provisioning secret of a newly
// enrolled token.
type ProvisioningURL struct {
	Description string
	Image       string
	Value       string
}

// OTPKey is the raw secret of a newly enrolled token, also available in
// base32.
type OTPKey struct {
	Description string
	Image       string
	Value       string
	ValueB32    string
}

// RolloutInfo is the result of enrolling a new token via /token/init.
type RolloutInfo struct {
	GoogleURL ProvisioningURL
	OATHURL   ProvisioningURL
	OTPKey    OTPKey

	Serial       string
	RolloutState string

	Raw   string
	Error *Error
}
