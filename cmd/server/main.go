// Package main implements the entry point for the hunterprice API server,
// which serves users' shopping lists and the shared product catalog.
package main

import (
	"os"
)

// main is the entry point for the hunterprice server. Without a subcommand
// it loads configuration, connects to the database and serves HTTP until
// SIGINT or SIGTERM.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
