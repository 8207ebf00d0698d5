package main

import (
	"os"

	"github.com/RZI3D/HifdhApp/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
