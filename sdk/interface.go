package sdk

import "github.com/edumfa/edumfa-go/pkg/structs"

// Interface lists the operations of the client so that consumers can
// be tested against a mock.
type Interface interface {
	AuthToken() (string, error)
	PollTransaction(transactionID string) (bool, error)
	TokenInfo(username string) ([]structs.TokenInfo, error)
	TokenInit(username, tokenType, otpKey string) (*structs.RolloutInfo, error)
	TokenRollout(username, tokenType string) (*structs.RolloutInfo, error)
	TriggerChallenges(username string, opts structs.CheckOptions) (*structs.Response, error)
	ValidateCheck(username, pass string, opts structs.CheckOptions) (*structs.Response, error)
	ValidateCheckSerial(serial, pass string, opts structs.CheckOptions) (*structs.Response, error)
	ValidateCheckU2F(username, transactionID, signResponse string, opts structs.CheckOptions) (*structs.Response, error)
	ValidateCheckWebAuthn(username, transactionID, signResponse, origin string, opts structs.CheckOptions) (*structs.Response, error)
}
