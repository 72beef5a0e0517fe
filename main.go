package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"connectly/app/auth"
	"connectly/app/config"
	"connectly/app/logging"
	"connectly/app/repositories"
	"connectly/app/routes"
	"connectly/app/services"

	"github.com/dgraph-io/badger/v4"
)

const cliVersion = "1.0.0"

const defaultDBPath = "data/badger"

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
		fmt.Printf("connectly version %s\n", cliVersion)
	case "serve":
		serve(os.Args[2:])
	case "init":
		initDB(os.Args[2:])
	case "clean":
		clean(os.Args[2:])
	case "createadmin":
		createAdmin(os.Args[2:])
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: connectly <command> [options]
Commands:
  help                                     Display this help message.
  version                                  Show version information.
  serve [--addr :8080] [--db <path>]       Run the API server.
  init [--db <path>]                       Initialize a new empty database.
  clean [--db <path>]                      Drop all keys from the database.
  createadmin <username> <email> <password> [--db <path>]
                                           Create an administrator account.
`
	fmt.Println(helpText)
}

// flagValue extracts "--name value" from args, returning the remaining args.
func flagValue(args []string, name, fallback string) (string, []string) {
	for i, arg := range args {
		if arg == name && i+1 < len(args) {
			rest := append(append([]string{}, args[:i]...), args[i+2:]...)
			return args[i+1], rest
		}
	}
	return fallback, args
}

func openDB(path string) *badger.DB {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open Badger DB: %v", err)
	}
	return db
}

// serve runs the API server.
func serve(args []string) {
	addr, args := flagValue(args, "--addr", ":8080")
	dbPath, _ := flagValue(args, "--db", defaultDBPath)

	db := openDB(dbPath)
	defer db.Close()

	sink := logging.NewSink()
	settings := config.Load()

	router := routes.SetupRoutes(db, sink, settings)
	sink.Info("starting API server", "addr", addr, "db", dbPath)
	if err := routes.StartServer(addr, router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initDB creates an empty database directory.
func initDB(args []string) {
	dbPath, _ := flagValue(args, "--db", defaultDBPath)
	db := openDB(dbPath)
	defer db.Close()
	fmt.Printf("Initialized database at %s\n", dbPath)
}

// clean drops every key in the database.
func clean(args []string) {
	dbPath, _ := flagValue(args, "--db", defaultDBPath)
	db := openDB(dbPath)
	defer db.Close()

	if err := db.DropAll(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("Database cleaned")
}

// createAdmin bootstraps an administrator account.
func createAdmin(args []string) {
	var positional []string
	dbPath, args := flagValue(args, "--db", defaultDBPath)
	positional = args
	if len(positional) < 3 {
		fmt.Println("Error: username, email and password are required for createadmin")
		os.Exit(1)
	}
	username, email, password := positional[0], positional[1], positional[2]

	db := openDB(dbPath)
	defer db.Close()

	sink := logging.NewSink()
	userRepo := repositories.NewBadgerUserRepository(db)
	postRepo := repositories.NewBadgerPostRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)
	sessionRepo := repositories.NewBadgerSessionRepository(db)
	userService := services.NewUserService(userRepo, postRepo, commentRepo, sessionRepo, auth.NewPolicy(), sink)

	user, err := userService.Create(username, email, password)
	if err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}
	user.IsAdmin = true
	if err := userRepo.Update(user); err != nil {
		log.Fatalf("Failed to promote admin: %v", err)
	}
	fmt.Printf("Admin %s created with id %d\n", user.Username, user.ID)
}
