package structs

// AuthenticationStatus is the overall authentication state reported in
// result.authentication.
type AuthenticationStatus int

const (
	AuthenticationNone AuthenticationStatus = iota
	AuthenticationAccept
	AuthenticationReject
	AuthenticationChallenge
)

func (s AuthenticationStatus) String() string {
	switch s {
	case AuthenticationAccept:
		return "ACCEPT"
	case AuthenticationReject:
		return "REJECT"
	case AuthenticationChallenge:
		return "CHALLENGE"
	default:
		return "NONE"
	}
}

// AuthenticationStatusFromString maps the server value to a status by
// exact match. Unrecognized values map to AuthenticationNone.
func AuthenticationStatusFromString(s string) AuthenticationStatus {
	switch s {
	case "ACCEPT":
		return AuthenticationAccept
	case "REJECT":
		return AuthenticationReject
	case "CHALLENGE":
		return AuthenticationChallenge
	default:
		return AuthenticationNone
	}
}
