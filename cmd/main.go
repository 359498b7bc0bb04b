package main

import (
	"log"
	"os"

	"focustimer/internal/cli"
)

var version = "dev"

func main() {
	if err := cli.NewRootCommand(version).Execute(); err != nil {
		log.Printf("focustimer: %v", err)
		os.Exit(1)
	}
}
