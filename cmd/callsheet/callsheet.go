package main

import (
	"log"

	"github.com/callsheet/callsheet/pkg/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
