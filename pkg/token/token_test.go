package token_test

import (
	"encoding/json"
	"testing"

	"github.com/edumfa/edumfa-go/pkg/token"
	"github.com/stretchr/testify/require"
)

func TestSignWebAuthnNoDevice(t *testing.T) {
	req := map[string]interface{}{
		"challenge": "Y2hhbGxlbmdl",
		"timeout":   120,
		"rpId":      "office.example.org",
		"allowCredentials": []map[string]interface{}{
			{
				"type": "public-key",
				"id":   "aWQx",
			},
		},
		"userVerification": "preferred",
	}

	reqBytes, err := json.Marshal(req)
	require.NoError(t, err)

	// no hid device attached in the test environment
	_, err = token.SignWebAuthn(reqBytes)
	require.Error(t, err)
}

func TestSignWebAuthnInvalidRequest(t *testing.T) {
	_, err := token.SignWebAuthn([]byte("not json"))
	require.Error(t, err)
}

func TestSignWebAuthnInvalidChallenge(t *testing.T) {
	_, err := token.SignWebAuthn([]byte(`{"challenge":"%%%","rpId":"x","allowCredentials":[]}`))
	require.Error(t, err)
}

func TestSignU2FInvalidRequest(t *testing.T) {
	_, err := token.SignU2F([]byte("{"))
	require.Error(t, err)
}
