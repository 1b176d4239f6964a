package main

import (
	"os"
	"path/filepath"

	"flacted/internal/cli"
)

func main() {
	if err := cli.Execute(filepath.Base(os.Args[0])); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
