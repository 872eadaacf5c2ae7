// Package main implements the arith CLI.
// Running it without arguments performs the fixed arithmetic demonstration;
// subcommands evaluate arbitrary operations and manage history.
package main

import (
	"os"

	"github.com/l3aro/go-arith/cmd/arith/commands"
)

var (
	version   = "dev"
	buildTime = ""
)

func main() {
	commands.RootCmd.Flags().BoolP("version", "v", false, "Print version information")
	commands.RootCmd.SetVersionTemplate(`arith version {{.Version}}
`)
	commands.RootCmd.Version = version

	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
