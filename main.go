// Package main is the entry point for the repattern CLI.
package main

import "repattern.dev/pkg/repattern/cmd"

func main() {
	cmd.Execute()
}
