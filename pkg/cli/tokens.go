package cli

import (
	"fmt"

	"github.com/convox/stdcli"
	"github.com/edumfa/edumfa-go/sdk"
)

func init() {
	register("tokens", "list the tokens of a user", Tokens, stdcli.CommandOptions{
		Usage:    "<user>",
		Validate: stdcli.Args(1),
	})
}

func Tokens(cl sdk.Interface, c *stdcli.Context) error {
	ts, err := cl.TokenInfo(c.Arg(0))
	if err != nil {
		return err
	}

	t := c.Table("SERIAL", "TYPE", "ACTIVE", "FAILS", "DESCRIPTION")

	for _, ti := range ts {
		t.AddRow(ti.Serial, ti.TokenType, fmt.Sprintf("%t", ti.Active), fmt.Sprintf("%d/%d", ti.FailCount, ti.MaxFail), ti.Description)
	}

	return t.Print()
}
