package main

import (
	"os"

	"github.com/abhisek/smartassess/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
