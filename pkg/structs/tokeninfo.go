package structs

// TokenInfo is a snapshot of one enrolled token as returned by the
// /token/ endpoint.
type TokenInfo struct {
	Serial      string
	ID          int
	Description string
	TokenType   string
	Image       string

	Active       bool
	Locked       bool
	Revoked      bool
	UserEditable bool

	Count       int
	CountWindow int
	FailCount   int
	MaxFail     int
	SyncWindow  int
	OTPLength   int

	Username  string
	UserID    string
	UserRealm string
	Resolver  string

	RolloutState string
	Info         map[string]string
	Realms       []string

	Raw string
}
