package main

import (
	"os"

	"github.com/OmMakwana02/CreditCardParser/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
