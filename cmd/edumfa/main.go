package main

import (
	"os"

	"github.com/edumfa/edumfa-go/pkg/cli"
)

var version = "dev"

func main() {
	os.Exit(cli.New("edumfa", version).Execute(os.Args[1:]))
}
