// Package main is the entry point for the promptgen CLI.
package main

import "promptgen.dev/pkg/promptgen/cmd"

func main() {
	cmd.Execute()
}
