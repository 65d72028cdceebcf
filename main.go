package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/verakore/mojifix/internal/adapters/inbound/cli"
	"github.com/verakore/mojifix/internal/domain"
)

func main() {
	if err := cli.Execute(); err != nil {
		if !errors.Is(err, domain.ErrFindings) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
