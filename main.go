// Package main is the entry point for the unprint CLI.
package main

import "unprint.dev/pkg/unprint/cmd"

func main() {
	cmd.Execute()
}
