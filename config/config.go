package config

import (
	"log"
	"os"
	"path/filepath"
)

// Config holds the application configuration.
type Config struct {
	CacheDBPath string // Path to the BadgerDB directory backing the resolution cache
	ServerPort  string // Port for the HTTP server
	TonlibRPC   string // Tonlib JSON-RPC gateway URL
}

// LoadConfig loads and returns the application configuration.
func LoadConfig() *Config {
	// Initialize cache DB path and ensure directory exists
	dbPath := filepath.Join(".", "data", "dnscache")
	if err := os.MkdirAll(dbPath, 0755); err != nil {
		log.Fatalf("Failed to create cache directory %s: %v", dbPath, err)
	}

	// Load server port
	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = ":8080"
		log.Println("Warning: SERVER_PORT not set, using default :8080")
	}

	// Load tonlib gateway RPC URL
	tonlibRPC := os.Getenv("TONLIB_RPC")
	if tonlibRPC == "" {
		tonlibRPC = "http://127.0.0.1:8191"
		log.Println("Warning: TONLIB_RPC not set, using default local gateway URL")
	}

	return &Config{
		CacheDBPath: dbPath,
		ServerPort:  serverPort,
		TonlibRPC:   tonlibRPC,
	}
}
