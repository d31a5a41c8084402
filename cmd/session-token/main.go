// Command session-token mints a session cookie value for local testing of
// the admin pages, signed with SESSION_SECRET.
package main

import (
	"flag"
	"fmt"
	"os"
	"shop-admin/internal/auth"
	"shop-admin/internal/config"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	email := flag.String("email", "", "email to put in the session")
	userID := flag.String("user", "", "user id (optional)")
	ttl := flag.Duration("ttl", 24*time.Hour, "session lifetime")
	flag.Parse()

	_ = godotenv.Load()

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	if *email == "" {
		fmt.Fprintln(os.Stderr, "-email is required")
		os.Exit(2)
	}

	token, err := auth.NewSessionCodec(cfg.Auth.SessionSecret).Issue(auth.Identity{UserID: *userID, Email: *email}, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "issue session: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s=%s\n", cfg.Auth.SessionCookie, token)
}
