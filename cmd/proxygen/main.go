package main

import (
	"os"

	"github.com/panagiotisptr/inject/cmd/proxygen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
