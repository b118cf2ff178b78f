package structs

import "fmt"

// Error is a protocol-level failure reported by the server inside an
// otherwise well-formed response, e.g. an unknown user. It is carried
// on the Response rather than returned as a transport failure.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}
