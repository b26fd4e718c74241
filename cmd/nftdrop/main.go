package main

import (
	"os"

	"github.com/TENK-DAO/NFT/cmd/nftdrop/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
