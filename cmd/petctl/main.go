package main

import (
	"os"

	"pet-adoption/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
