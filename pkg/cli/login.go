package cli

import (
	"github.com/convox/stdcli"
	"github.com/edumfa/edumfa-go/sdk"
)

func init() {
	registerWithoutClient("login", "configure a server and service account", Login, stdcli.CommandOptions{
		Flags: []stdcli.Flag{
			stdcli.StringFlag("service-account", "s", "service account name"),
			stdcli.StringFlag("password", "p", "service account password"),
			stdcli.StringFlag("service-realm", "", "service account realm"),
		},
		Usage:    "<url>",
		Validate: stdcli.Args(1),
	})
}

func Login(_ sdk.Interface, c *stdcli.Context) error {
	host := c.Arg(0)

	name := c.String("service-account")
	password := c.String("password")

	if name != "" && password == "" {
		c.Writef("Password: ")

		pw, err := c.ReadSecret()
		if err != nil {
			return err
		}

		c.Writef("\n")

		password = pw
	}

	c.Startf("Connecting to <info>%s</info>", host)

	opts := []sdk.Option{}

	if name != "" {
		opts = append(opts, sdk.WithServiceAccount(name, password))

		if r := c.String("service-realm"); r != "" {
			opts = append(opts, sdk.WithServiceRealm(r))
		}
	}

	cl, err := sdk.New(host, userAgent(c.Version()), opts...)
	if err != nil {
		return err
	}

	defer cl.Close()

	if name != "" {
		if _, err := cl.AuthToken(); err != nil {
			return err
		}

		sa := serviceAccount{
			Name:     name,
			Password: password,
			Realm:    c.String("service-realm"),
		}

		if err := saveServiceAccount(c, host, sa); err != nil {
			return err
		}
	}

	if err := c.SettingWrite("host", host); err != nil {
		return err
	}

	return c.OK()
}
