package structs_test

import (
	"encoding/json"
	"testing"

	"github.com/edumfa/edumfa-go/pkg/structs"
	"github.com/stretchr/testify/require"
)

func signRequest(rpID string, credentials ...string) string {
	creds := []map[string]string{}

	for _, c := range credentials {
		creds = append(creds, map[string]string{"id": c, "type": "public-key"})
	}

	data, _ := json.Marshal(map[string]interface{}{
		"challenge":        "dG9rZW4tY2hhbGxlbmdl",
		"allowCredentials": creds,
		"rpId":             rpID,
		"timeout":          60000,
		"userVerification": "preferred",
	})

	return string(data)
}

func TestMergeSignRequests(t *testing.T) {
	cs := []structs.Challenge{
		{Kind: structs.ChallengeWebAuthn, SignRequest: signRequest("example.org", "credA")},
		{Kind: structs.ChallengeWebAuthn, SignRequest: signRequest("other.org", "credB", "credC")},
	}

	merged, err := structs.MergeSignRequests(cs)
	require.NoError(t, err)

	var req struct {
		Challenge        string `json:"challenge"`
		RpID             string `json:"rpId"`
		AllowCredentials []struct {
			ID string `json:"id"`
		} `json:"allowCredentials"`
	}

	require.NoError(t, json.Unmarshal([]byte(merged), &req))
	require.Equal(t, "example.org", req.RpID)
	require.Equal(t, "dG9rZW4tY2hhbGxlbmdl", req.Challenge)
	require.Len(t, req.AllowCredentials, 3)
	require.Equal(t, "credA", req.AllowCredentials[0].ID)
	require.Equal(t, "credB", req.AllowCredentials[1].ID)
	require.Equal(t, "credC", req.AllowCredentials[2].ID)
}

func TestMergeSignRequestsEmpty(t *testing.T) {
	merged, err := structs.MergeSignRequests([]structs.Challenge{})
	require.NoError(t, err)
	require.Equal(t, "", merged)
}

func TestMergeSignRequestsInvalid(t *testing.T) {
	cs := []structs.Challenge{
		{Kind: structs.ChallengeWebAuthn, SignRequest: signRequest("example.org", "credA")},
		{Kind: structs.ChallengeWebAuthn, SignRequest: "not json"},
	}

	_, err := structs.MergeSignRequests(cs)
	require.Error(t, err)
}
