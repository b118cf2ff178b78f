package cli

import (
	"fmt"
	"time"

	"github.com/convox/stdcli"
	"github.com/edumfa/edumfa-go/pkg/structs"
	"github.com/edumfa/edumfa-go/sdk"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

func init() {
	register("enroll", "enroll a new token for a user", Enroll, stdcli.CommandOptions{
		Flags: []stdcli.Flag{
			stdcli.StringFlag("type", "", "token type"),
			stdcli.StringFlag("otpkey", "", "use an existing secret instead of generating one"),
		},
		Usage:    "<user>",
		Validate: stdcli.Args(1),
	})
}

func Enroll(cl sdk.Interface, c *stdcli.Context) error {
	user := c.Arg(0)
	tokenType := coalesce(c.String("type"), structs.TokenTypeTOTP)

	c.Startf("Enrolling <info>%s</info> token for <info>%s</info>", tokenType, user)

	var ri *structs.RolloutInfo
	var err error

	if key := c.String("otpkey"); key != "" {
		ri, err = cl.TokenInit(user, tokenType, key)
	} else {
		ri, err = cl.TokenRollout(user, tokenType)
	}
	if err != nil {
		return err
	}

	if ri == nil {
		return fmt.Errorf("empty response")
	}

	if ri.Error != nil {
		return ri.Error
	}

	if err := c.OK(ri.Serial); err != nil {
		return err
	}

	if u := ri.GoogleURL.Value; u != "" {
		c.Writef("Provisioning URL: <info>%s</info>\n", u)

		// show a current code so the enrollment can be verified right away
		if k, err := otp.NewKeyFromURL(u); err == nil && k.Type() == "totp" {
			if code, err := totp.GenerateCode(k.Secret(), time.Now()); err == nil {
				c.Writef("Current code: <info>%s</info>\n", code)
			}
		}
	}

	if ri.OTPKey.ValueB32 != "" {
		c.Writef("Secret (base32): <info>%s</info>\n", ri.OTPKey.ValueB32)
	}

	return nil
}
