// Command argv shows how command lines split into a program, named options,
// and orphan tokens.
package main

import (
	"fmt"
	"os"

	"github.com/sasanktumpati/argv/internal/cli"
)

func main() {
	if err := cli.Run(os.Args, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
