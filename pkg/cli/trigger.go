package cli

import (
	"fmt"

	"github.com/convox/stdcli"
	"github.com/edumfa/edumfa-go/pkg/structs"
	"github.com/edumfa/edumfa-go/sdk"
)

func init() {
	register("trigger", "trigger challenges for a user", Trigger, stdcli.CommandOptions{
		Flags:    []stdcli.Flag{flagRealm},
		Usage:    "<user>",
		Validate: stdcli.Args(1),
	})
}

func Trigger(cl sdk.Interface, c *stdcli.Context) error {
	r, err := cl.TriggerChallenges(c.Arg(0), structs.CheckOptions{})
	if err != nil {
		return err
	}

	if r == nil {
		return fmt.Errorf("empty response")
	}

	if r.Error != nil {
		return r.Error
	}

	t := c.Table("SERIAL", "TYPE", "MODE", "TRANSACTION", "MESSAGE")

	for _, ch := range r.Multichallenge {
		t.AddRow(ch.Serial, ch.Type, ch.ClientMode, ch.TransactionID, ch.Message)
	}

	return t.Print()
}
