package structs

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// MergeSignRequests combines the sign requests of the given WebAuthn
// challenges into one. The allowCredentials arrays are concatenated in
// input order into the first request; all other fields of the first
// request are left unchanged. Any parse failure aborts the merge.
func MergeSignRequests(challenges []Challenge) (string, error) {
	if len(challenges) == 0 {
		return "", nil
	}

	var first map[string]json.RawMessage

	if err := json.Unmarshal([]byte(challenges[0].SignRequest), &first); err != nil {
		return "", errors.Wrap(err, "parse sign request")
	}

	combined := []json.RawMessage{}

	for _, c := range challenges {
		var req struct {
			AllowCredentials []json.RawMessage `json:"allowCredentials"`
		}

		if err := json.Unmarshal([]byte(c.SignRequest), &req); err != nil {
			return "", errors.Wrap(err, "parse sign request")
		}

		combined = append(combined, req.AllowCredentials...)
	}

	ac, err := json.Marshal(combined)
	if err != nil {
		return "", err
	}

	first["allowCredentials"] = ac

	data, err := json.Marshal(first)
	if err != nil {
		return "", err
	}

	return string(data), nil
}
