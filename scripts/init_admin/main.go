// Command init_admin creates the first admin account for a fresh install.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/mutantsite/internal/config"
	"github.com/mutantsite/internal/db"
)

func main() {
	username := flag.String("username", "admin", "admin account name")
	password := flag.String("password", "", "admin account password")
	flag.Parse()

	if *password == "" {
		log.Fatal("a password is required: -password <value>")
	}

	cfg := config.Load()
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	if err := db.EnsureUser(*username, *password); err != nil {
		log.Fatalf("failed to create admin user: %v", err)
	}

	fmt.Printf("admin account %q is ready\n", *username)
}
