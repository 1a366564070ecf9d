package main

import (
	"github.com/technigo/boardgames-api/pkg/cli"
)

func main() {
	cli.Execute()
}
