package main

import (
	"log"

	"github.com/andrescamacho/x4empire/internal/adapters/cli"
)

func main() {
	log.SetFlags(0)
	cli.Execute()
}
