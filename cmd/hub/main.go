package main

import (
	"log"

	"github.com/nexai/hub/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ hub failed to start: %v", err)
	}
}
