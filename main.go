package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/hbcon/festvote/cmd/app"
)

// @securityDefinitions.apikey BearerToken
// @in header
// @name Authorization
// @description Bearer token
//
// @securityDefinitions.apikey APIKey
// @in header
// @name X-API-Key
// @description Export API key
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
