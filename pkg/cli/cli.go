package cli

import (
	"github.com/convox/stdcli"
	"github.com/edumfa/edumfa-go/sdk"
)

type HandlerFunc func(sdk.Interface, *stdcli.Context) error

var (
	flagRealm   = stdcli.StringFlag("realm", "r", "user realm")
	flagTimeout = stdcli.IntFlag("timeout", "t", "timeout in seconds")
)

func New(name, version string) *Engine {
	e := &Engine{
		Engine: stdcli.New(name, version),
	}

	e.RegisterCommands()

	return e
}
