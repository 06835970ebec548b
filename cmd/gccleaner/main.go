package main

import (
	"os"

	"github.com/arthur-debert/gccleaner/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
