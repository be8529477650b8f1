package main

import (
	"flag"
	"log"
	"os"

	"github.com/automoto/doomerang-mapgen/config"
	"github.com/automoto/doomerang-mapgen/pipeline"
)

func main() {
	config.C.BindFlags(flag.CommandLine)
	flag.Parse()

	if err := pipeline.Run(config.C, os.Stdout); err != nil {
		log.Fatalf("Map pipeline failed: %v", err)
	}
}
