package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	DBDSN    string
	StateDir string
	LogFile  string
}

func Load() Config {
	// .env is optional; real env always wins.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "luxeshop.db" // sqlite file in project root
	}
	stateDir := os.Getenv("STATE_DIR")
	if stateDir == "" {
		stateDir = "./luxeshop-state"
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./luxeshop.log"
	}

	cfg := Config{Port: port, DBDSN: dsn, StateDir: stateDir, LogFile: logFile}
	log.Printf("[config] PORT=%s DB_DSN=%s STATE_DIR=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.StateDir, cfg.LogFile)
	return cfg
}
