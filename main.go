// Package main is the entry point for the tables CLI.
package main

import (
	"tables/cli/cmd"
)

func main() {
	cmd.Execute()
}
