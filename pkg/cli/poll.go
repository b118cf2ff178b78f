package cli

import (
	"github.com/convox/stdcli"
	"github.com/edumfa/edumfa-go/sdk"
)

func init() {
	register("poll", "check whether a transaction was confirmed", Poll, stdcli.CommandOptions{
		Usage:    "<transaction-id>",
		Validate: stdcli.Args(1),
	})
}

func Poll(cl sdk.Interface, c *stdcli.Context) error {
	ok, err := cl.PollTransaction(c.Arg(0))
	if err != nil {
		return err
	}

	if !ok {
		c.Writef("pending\n")
		return stdcli.Exit(1)
	}

	c.Writef("confirmed\n")

	return nil
}
