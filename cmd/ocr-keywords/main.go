package main

import (
	"fmt"
	"os"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := NewCLI().Run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "ocr-keywords: %v\n", err)
		os.Exit(1)
	}
}
