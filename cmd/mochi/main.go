package main

import (
	"os"

	"github.com/mochi-tools/mochi-go/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
