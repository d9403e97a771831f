// Package main implements the entry point for the almanac API server,
// a multi-user calendar service with per-session account and calendar
// selection.
package main

import (
	"context"
	"log"
)

func main() {
	app, err := initializeApp(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(context.Background()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
