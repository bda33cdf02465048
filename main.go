package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bikeoff/blog-backend/api"
	"github.com/bikeoff/blog-backend/config"
	"github.com/bikeoff/blog-backend/database"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	c := config.New()

	currentDB, err := openDatabase(c)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	allowDestructive := config.GetBool(c, "ALLOW_DESTRUCTIVE_SCHEMA_RESET", false)
	if err := currentDB.ReconcileSchema(allowDestructive); err != nil {
		fmt.Printf("Error reconciling schema: %v\n", err)
		os.Exit(1)
	}

	// Sample data is a local-development convenience; a production database
	// (explicit DATABASE_URL) is never seeded.
	if config.GetBool(c, "INIT_SAMPLE_DATA", false) && config.GetString(c, "DATABASE_URL", "") == "" {
		if err := currentDB.SeedSampleData(); err != nil {
			fmt.Printf("Error seeding sample data: %v\n", err)
			os.Exit(1)
		}
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB)
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// openDatabase connects to postgres when DATABASE_URL is set, falls back to
// a local sqlite file otherwise, and can run fully in memory for demos.
func openDatabase(c map[string]string) (database.Database, error) {
	if config.GetBool(c, "IN_MEMORY_STORE", false) {
		fmt.Println("Using in-memory post store (nothing is persisted)")
		return database.NewInMemory(), nil
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)
	gormConfig := &gorm.Config{Logger: newLogger}

	var (
		db  *gorm.DB
		err error
	)
	if connStr := config.GetString(c, "DATABASE_URL", ""); connStr != "" {
		fmt.Println("Connecting to PostgreSQL database...")
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  connStr,
			PreferSimpleProtocol: true,
		}), gormConfig)
	} else {
		path := config.GetString(c, "SQLITE_PATH", "blog.db")
		fmt.Printf("No DATABASE_URL set, using local sqlite file %s\n", path)
		db, err = gorm.Open(sqlite.Open(path), gormConfig)
	}
	if err != nil {
		return database.Database{}, err
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		return database.Database{}, err
	}

	return database.New(db), nil
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
