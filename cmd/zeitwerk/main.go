package main

import (
	"os"

	"github.com/msto63/zeitwerk/cmd/zeitwerk/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
