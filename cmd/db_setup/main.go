package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/2beens/traininglog/internal/config"
	"github.com/2beens/traininglog/internal/db"
)

// creates the training log tables and indexes, safe to run repeatedly
func main() {
	fmt.Println("starting db setup ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		fmt.Printf("load config: %s\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     os.Getenv("TRAININGLOG_DB_USER"),
		DBPassword: os.Getenv("TRAININGLOG_DB_PASS"),
	})
	if err != nil {
		fmt.Printf("db pool: %s\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := db.Migrate(ctx, pool); err != nil {
		fmt.Printf("db setup failed: %s\n", err)
		os.Exit(1)
	}

	fmt.Println("\ndb setup completed")
}
