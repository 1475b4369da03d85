package main

import (
	"github.com/avendel/pokerledger/internal/cli"
)

func main() {
	cli.Execute()
}
