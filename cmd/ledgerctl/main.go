// ledgerctl is a command-line client for the ledger gRPC API.
package main

import (
	"os"

	"github.com/pterm/pterm"
	"google.golang.org/grpc/status"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		pterm.Error.Println(status.Convert(err).Message())
		os.Exit(1)
	}
}
