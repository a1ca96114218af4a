package main

import (
	"context"
	"log"

	"ton-dns-resolver/config"
	"ton-dns-resolver/pkg/api"
	"ton-dns-resolver/pkg/resolver"
	"ton-dns-resolver/pkg/storage"
	"ton-dns-resolver/pkg/tonlib"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()

	// Initialize BadgerDB cache backing
	store, err := storage.NewBadgerStore(cfg.CacheDBPath)
	if err != nil {
		log.Fatalf("Failed to initialize cache store: %v", err)
	}
	defer store.Close()
	log.Printf("Cache store initialized at %s", cfg.CacheDBPath)

	// Connect to the tonlib gateway
	client, err := tonlib.NewClient(cfg.TonlibRPC)
	if err != nil {
		log.Fatalf("Failed to connect to tonlib gateway at %s: %v", cfg.TonlibRPC, err)
	}
	defer client.Close()
	log.Printf("Connected to tonlib gateway at %s", cfg.TonlibRPC)

	// Initialize Resolver and let the ledger connection catch up in the
	// background; resolution traffic is not blocked on it.
	res := resolver.NewResolver(client, store)
	res.StartSyncWatchdog(context.Background())

	// Initialize API Handlers
	handlers := api.NewHandlers(res)

	// Setup Gin router
	router := gin.Default()
	handlers.RegisterRoutes(router)

	// Run the server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(cfg.ServerPort); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
