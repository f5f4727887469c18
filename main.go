// Package main is the entry point for the devkit CLI.
package main

import "devkit.dev/pkg/devkit/cmd"

func main() {
	cmd.Execute()
}
