package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"corkboard/app/config"
	"corkboard/app/routes"
	"corkboard/dbadmin"

	"github.com/dgraph-io/badger/v4"
	"github.com/sirupsen/logrus"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("corkboard version %s\n", cliVersion)
	case "serve":
		serve()
	case "db":
		cfg := config.Load()
		dbadmin.HandleCommand(cfg.DBPath, os.Args[2:])
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: corkboard <command> [options]
Commands:
  help                           Display this help message.
  version                        Show version information.
  serve                          Run the discussion board server.
  db <init|clean|backup|restore> Manage the board database.
`
	fmt.Println(helpText)
}

// serve opens the board database and runs the HTTP server
func serve() {
	cfg := config.Load()

	opts := badger.DefaultOptions(cfg.DBPath).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		logrus.Fatalf("Failed to open Badger DB: %v", err)
	}
	defer db.Close()

	handler := routes.SetupRoutes(db, cfg)

	logrus.Infof("Starting discussion board on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		logrus.Fatalf("Server error: %v", err)
	}
}
