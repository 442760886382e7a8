// Package main implements the otable binary, a command-line front end
// to the otable package for record files and SQLite queries.
package main

import "github.com/replit/otable/internal/cli"

// Main entry point for the otable binary.
func main() {
	cli.DoCLI()
}
