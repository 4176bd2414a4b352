package main

import (
	"os"

	"github.com/dwikikusuma/storefront-cart/cmd/cartctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
