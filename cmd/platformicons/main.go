// Package main previews platform icon tiles in the terminal and prints the
// platform icon catalog.
package main

import (
	"context"
	"flag"
	"os"

	platformiconscmd "github.com/louisbranch/onboarding/internal/cmd/platformicons"
	"github.com/louisbranch/onboarding/internal/platform/config"
)

func main() {
	cfg, err := platformiconscmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	if err := platformiconscmd.Run(context.Background(), cfg, os.Stdout); err != nil {
		config.Exitf("platformicons: %v", err)
	}
}
