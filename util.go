package main

import (
	"os"

	"github.com/joho/godotenv"
)

// Loads .env and .env.local from the working directory, the latter overriding.
// Missing files are ignored.
func LoadEnv() {
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")
}

func GetEnvOr(key, other string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return other
}
