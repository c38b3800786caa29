package config

import (
	"log"
	"path/filepath"

	"think-shop/storage"
)

var Store storage.Storage

// InitStorage opens the persistence driver named by the configuration.
// Cart and order state lives behind it; a driver that cannot open is fatal.
func InitStorage() {
	var err error

	switch AppConfig.StorageDriver {
	case "redis":
		Store, err = storage.NewRedisStorage(AppConfig.RedisURL)
		if err != nil {
			log.Fatalf("Unable to connect storage: %v", err)
		}
		log.Println("Redis storage connected successfully")
	case "memory":
		Store = storage.NewMemoryStorage()
		log.Println("Using in-memory storage (state will not survive restarts)")
	default:
		path := filepath.Join(AppConfig.DataDir, "state.json")
		Store, err = storage.NewFileStorage(path)
		if err != nil {
			log.Fatalf("Unable to open storage file: %v", err)
		}
		log.Printf("File storage opened at %s", path)
	}
}

func CloseStorage() {
	type closer interface{ Close() error }
	if c, ok := Store.(closer); ok && c != nil {
		if err := c.Close(); err != nil {
			log.Printf("Error closing storage: %v", err)
		}
	}
}
