package cli

import (
	"fmt"
	"time"

	"github.com/convox/stdcli"
	"github.com/edumfa/edumfa-go/pkg/structs"
	"github.com/edumfa/edumfa-go/pkg/token"
	"github.com/edumfa/edumfa-go/sdk"
)

func init() {
	register("authenticate", "run a complete challenge/response authentication", Authenticate, stdcli.CommandOptions{
		Flags: []stdcli.Flag{
			flagRealm,
			flagTimeout,
			stdcli.StringFlag("mode", "m", "force a mode: push, otp, webauthn"),
			stdcli.StringFlag("origin", "", "origin for webauthn verification"),
			stdcli.StringFlag("otp", "o", "supply the otp instead of prompting"),
		},
		Usage:    "<user>",
		Validate: stdcli.Args(1),
	})
}

func Authenticate(cl sdk.Interface, c *stdcli.Context) error {
	user := c.Arg(0)

	r, err := cl.TriggerChallenges(user, structs.CheckOptions{})
	if err != nil {
		return err
	}

	if r == nil {
		return fmt.Errorf("empty response")
	}

	if r.Error != nil {
		return r.Error
	}

	if len(r.Multichallenge) == 0 {
		return fmt.Errorf("no challenges triggered for %s", user)
	}

	mode := coalesce(c.String("mode"), r.PreferredClientMode)

	switch mode {
	case "push":
		return authenticatePush(cl, c, user, r)
	case "webauthn":
		return authenticateWebAuthn(cl, c, user, r)
	default:
		return authenticateOTP(cl, c, user, r)
	}
}

func authenticatePush(cl sdk.Interface, c *stdcli.Context, user string, r *structs.Response) error {
	if !r.PushAvailable() {
		return fmt.Errorf("no push token available for %s", user)
	}

	c.Startf("%s", r.PushMessage())

	timeout := 60 * time.Second

	if t := c.Int("timeout"); t > 0 {
		timeout = time.Duration(t) * time.Second
	}

	tick := time.NewTicker(1 * time.Second)
	defer tick.Stop()

	deadline := time.After(timeout)

	for {
		select {
		case <-deadline:
			return fmt.Errorf("timeout waiting for confirmation")
		case <-tick.C:
			ok, err := cl.PollTransaction(r.TransactionID)
			if err != nil {
				return err
			}

			if !ok {
				continue
			}

			fr, err := cl.ValidateCheck(user, "", structs.CheckOptions{TransactionID: r.TransactionID})
			if err != nil {
				return err
			}

			if err := c.OK(); err != nil {
				return err
			}

			return writeResult(c, fr)
		}
	}
}

func authenticateWebAuthn(cl sdk.Interface, c *stdcli.Context, user string, r *structs.Response) error {
	sreq := r.MergedSignRequest()

	if sreq == "" {
		return fmt.Errorf("no webauthn token available for %s", user)
	}

	c.Writef("Touch your security key... ")

	sres, err := token.SignWebAuthn([]byte(sreq))
	if err != nil {
		return err
	}

	c.Writef("<ok>OK</ok>\n")

	origin := c.String("origin")

	if origin == "" {
		host, err := currentHost(c)
		if err != nil {
			return err
		}

		origin = fmt.Sprintf("https://%s", host)
	}

	fr, err := cl.ValidateCheckWebAuthn(user, r.TransactionID, string(sres), origin, structs.CheckOptions{})
	if err != nil {
		return err
	}

	return writeResult(c, fr)
}

func authenticateOTP(cl sdk.Interface, c *stdcli.Context, user string, r *structs.Response) error {
	otp := c.String("otp")

	if otp == "" {
		if m := r.OTPMessage(); m != "" {
			c.Writef("%s\n", m)
		}

		c.Writef("OTP: ")

		read, err := c.ReadSecret()
		if err != nil {
			return err
		}

		c.Writef("\n")

		otp = read
	}

	fr, err := cl.ValidateCheck(user, otp, structs.CheckOptions{TransactionID: r.TransactionID})
	if err != nil {
		return err
	}

	return writeResult(c, fr)
}
