package main

import (
	"fmt"
	"os"

	"github.com/logrusorgru/aurora"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err))
		os.Exit(2)
	}

	if err := Run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err))
		os.Exit(1)
	}
}
