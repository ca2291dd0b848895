// Package main provides the ledgerctl CLI.
package main

import (
	"os"

	"github.com/mehak6/accounting/cmd/ledgerctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
