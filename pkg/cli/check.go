package cli

import (
	"fmt"

	"github.com/convox/stdcli"
	"github.com/edumfa/edumfa-go/pkg/structs"
	"github.com/edumfa/edumfa-go/sdk"
)

func init() {
	register("check", "validate an otp for a user", Check, stdcli.CommandOptions{
		Flags: []stdcli.Flag{
			flagRealm,
			stdcli.StringFlag("serial", "", "check against a single token serial"),
			stdcli.StringFlag("transaction-id", "", "answer a pending challenge"),
		},
		Usage:    "<user> <pass>",
		Validate: stdcli.Args(2),
	})
}

func Check(cl sdk.Interface, c *stdcli.Context) error {
	opts := structs.CheckOptions{
		TransactionID: c.String("transaction-id"),
	}

	var r *structs.Response
	var err error

	if serial := c.String("serial"); serial != "" {
		r, err = cl.ValidateCheckSerial(serial, c.Arg(1), opts)
	} else {
		r, err = cl.ValidateCheck(c.Arg(0), c.Arg(1), opts)
	}
	if err != nil {
		return err
	}

	return writeResult(c, r)
}

func writeResult(c *stdcli.Context, r *structs.Response) error {
	if r == nil {
		return fmt.Errorf("empty response")
	}

	if r.Error != nil {
		return r.Error
	}

	c.Writef("%s\n", statusTag(r.Authentication))

	if r.Message != "" {
		c.Writef("%s\n", r.Message)
	}

	if r.Authentication == structs.AuthenticationReject {
		return stdcli.Exit(1)
	}

	return nil
}
