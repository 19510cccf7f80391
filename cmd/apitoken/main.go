// Command apitoken mints credentials for the administrative API.
//
// With -new-key it generates a fresh fernet key for INTERNAL_API_KEY.
// Otherwise it reads INTERNAL_API_KEY from the environment (or .env) and
// prints a signed token for the X-API-Key request header.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fernet/fernet-go"
	"github.com/joho/godotenv"

	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/api/middleware"
)

func main() {
	newKey := flag.Bool("new-key", false, "generate a new fernet key instead of minting a token")
	flag.Parse()

	if *newKey {
		var key fernet.Key
		if err := key.Generate(); err != nil {
			log.Fatalf("Failed to generate key: %v", err)
		}
		fmt.Println(key.Encode())
		return
	}

	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	rawKey := os.Getenv("INTERNAL_API_KEY")
	if rawKey == "" {
		log.Fatal("INTERNAL_API_KEY is not set; run with -new-key to generate one")
	}

	token, err := middleware.GenerateAPIToken(rawKey)
	if err != nil {
		log.Fatalf("Failed to mint token: %v", err)
	}
	fmt.Println(token)
}
