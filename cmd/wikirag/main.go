package main

import (
	"github.com/joho/godotenv"
)

func main() {
	// Missing .env is fine, the environment itself may be configured
	_ = godotenv.Load()

	Execute()
}
