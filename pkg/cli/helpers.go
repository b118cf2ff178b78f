package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/convox/stdcli"
	"github.com/edumfa/edumfa-go/pkg/structs"
)

type serviceAccount struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Realm    string `json:"realm,omitempty"`
}

func coalesce(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

func currentHost(c *stdcli.Context) (string, error) {
	if h := os.Getenv("EDUMFA_HOST"); h != "" {
		return h, nil
	}

	if h, _ := c.SettingRead("host"); h != "" {
		return h, nil
	}

	return "", fmt.Errorf("no server configured, try `edumfa login`")
}

func currentRealm(c *stdcli.Context) string {
	if r := c.String("realm"); r != "" {
		return r
	}

	if r := os.Getenv("EDUMFA_REALM"); r != "" {
		return r
	}

	if r, _ := c.SettingRead("realm"); r != "" {
		return r
	}

	return ""
}

func hostServiceAccount(c *stdcli.Context, host string) (*serviceAccount, error) {
	data, err := c.SettingReadKey("service", host)
	if err != nil {
		return nil, err
	}

	var sa serviceAccount

	if data != "" {
		if err := json.Unmarshal([]byte(data), &sa); err != nil {
			return nil, err
		}
	}

	return &sa, nil
}

func saveServiceAccount(c *stdcli.Context, host string, sa serviceAccount) error {
	data, err := json.Marshal(sa)
	if err != nil {
		return err
	}

	return c.SettingWriteKey("service", host, string(data))
}

func userAgent(version string) string {
	return fmt.Sprintf("edumfa/%s", version)
}

func statusTag(s structs.AuthenticationStatus) string {
	switch s {
	case structs.AuthenticationAccept:
		return "<ok>ACCEPT</ok>"
	case structs.AuthenticationReject:
		return "<fail>REJECT</fail>"
	case structs.AuthenticationChallenge:
		return "<info>CHALLENGE</info>"
	default:
		return "NONE"
	}
}
