package main

import (
	"os"

	"github.com/tmacher/homefit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
