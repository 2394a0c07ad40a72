package main

import (
	"fmt"
	"os"

	"github.com/filiphsps/MiNET-protocol-converter/internal/logging"
)

func main() {
	logging.ConfigureRuntime()
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "protogen: %v\n", err)
		os.Exit(1)
	}
}
