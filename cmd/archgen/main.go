package main

import (
	"log"

	"github.com/GoSim-25-26J-441/archgen-backend/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
