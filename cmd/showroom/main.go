package main

import (
	"log"

	"showroom/cmd/showroom/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		log.Fatal(err)
	}
}
