package cli

import (
	"github.com/convox/stdcli"
	"github.com/edumfa/edumfa-go/pkg/jwt"
	"github.com/edumfa/edumfa-go/sdk"
)

func init() {
	register("auth", "obtain a bearer token for the service account", Auth, stdcli.CommandOptions{
		Flags: []stdcli.Flag{
			stdcli.BoolFlag("token", "", "print only the raw token"),
		},
		Validate: stdcli.Args(0),
	})
}

func Auth(cl sdk.Interface, c *stdcli.Context) error {
	tok, err := cl.AuthToken()
	if err != nil {
		return err
	}

	if c.Bool("token") {
		c.Writef("%s\n", tok)
		return nil
	}

	claims, err := jwt.Decode(tok)
	if err != nil {
		return err
	}

	i := c.Info()

	i.Add("Username", claims.Username)
	i.Add("Realm", claims.Realm)
	i.Add("Role", claims.Role)
	i.Add("Expires", claims.ExpiresIn().String())

	return i.Print()
}
