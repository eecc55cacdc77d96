package main

import (
	"os"

	"github.com/bianoble/line-view/cmd/line-view/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
