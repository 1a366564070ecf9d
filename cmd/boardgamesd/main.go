package main

import (
	"log"

	"github.com/technigo/boardgames-api/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
