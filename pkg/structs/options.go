package structs

// CheckOptions carries the optional parts of a validate or trigger
// request.
type CheckOptions struct {
	TransactionID string
	Headers       map[string]string
}
