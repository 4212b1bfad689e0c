// Command hrtoken mints an HR bearer token for local development and
// operational access. Production tokens come from the identity
// provider; this tool signs with the same shared secret.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"talent-bridge/internal/pkg/hrauth"
)

func main() {
	_ = godotenv.Load()

	email := flag.String("email", "", "staff email the token identifies")
	role := flag.String("role", "hr", "role claim")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *email == "" {
		flag.Usage()
		os.Exit(2)
	}

	secret := os.Getenv("HR_TOKEN_SECRET")
	if secret == "" {
		log.Fatal("HR_TOKEN_SECRET is not set")
	}

	svc := hrauth.NewHMACService(secret, *ttl)
	token, err := svc.Generate(*email, *role)
	if err != nil {
		log.Fatalf("failed to generate token: %v", err)
	}
	fmt.Println(token)
}
