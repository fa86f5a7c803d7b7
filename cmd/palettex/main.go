package main

import (
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	if err := newRootCmd(newApp()).Execute(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}
