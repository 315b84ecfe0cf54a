package main

import (
	"fmt"
	"os"

	"github.com/hanfei1991/collections/pkg/ctl"
)

func main() {
	if err := ctl.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
