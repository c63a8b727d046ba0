package main

import (
	"log"

	"microblog/app/routes"
	"microblog/config"

	"github.com/dgraph-io/badger/v4"
)

func main() {
	cfg := config.Load()

	// Open or initialize the Badger DB. Failing to open the store aborts
	// startup; the service never serves without persistence.
	opts := badger.DefaultOptions(cfg.DBPath).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open Badger DB: %v", err)
	}
	defer db.Close()

	router := routes.Setup(db, cfg)

	log.Printf("Starting blog service on %s", cfg.Addr)
	if err := routes.StartServer(cfg.Addr, router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
