// ABOUTME: Entry point for balungpisah-admin CLI
// ABOUTME: Terminal admin console for the Balungpisah reporting backend

package main

import (
	"fmt"
	"os"

	"github.com/balungpisah/balungpisah-admin/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
