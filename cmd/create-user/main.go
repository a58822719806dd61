package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/config"
	"github.com/jafarshop/storefront/internal/format"
	"github.com/jafarshop/storefront/internal/identity"
)

func main() {
	if len(os.Args) < 4 {
		fmt.Println("Usage: go run cmd/create-user/main.go <name> <email> <password>")
		fmt.Println("Example: go run cmd/create-user/main.go \"Jafar Demo\" \"demo@example.com\" \"secret123\"")
		os.Exit(1)
	}

	name := os.Args[1]
	email := os.Args[2]
	password := os.Args[3]

	if !format.ValidEmail(email) {
		fmt.Fprintf(os.Stderr, "Invalid email address: %s\n", email)
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if cfg.Identity.Mode != "remote" {
		fmt.Fprintln(os.Stderr, "create-user registers against the remote identity service; set IDENTITY_MODE=remote and IDENTITY_BASE_URL")
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	client := identity.NewClient(cfg.Identity, logger)
	session, err := client.Register(context.Background(), name, email, password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ User created successfully!\n\n")
	fmt.Printf("User ID: %s\n", session.User.ID)
	fmt.Printf("Name: %s\n", session.User.Name)
	fmt.Printf("Email: %s\n", session.User.Email)
	fmt.Printf("\nUse this token in the Authorization header:\n")
	fmt.Printf("Authorization: Bearer %s\n", session.Token)
}
