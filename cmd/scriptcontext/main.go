package main

import (
	"os"

	"github.com/codysoyland/scriptcontext/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
