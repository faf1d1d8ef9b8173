package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/theSprog/FlameCrafter/pkg/cli"
)

func main() {
	if err := cli.New().Execute(); err != nil {
		os.Stderr.Write([]byte(color.RedString("Error: ") + err.Error() + "\n"))
		os.Exit(1)
	}
}
