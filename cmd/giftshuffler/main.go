package main

import (
	"os"

	"github.com/mmynk/giftshuffler/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewRootCommand()))
}
