package main

import (
	"os"

	"github.com/billel/trivia/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
