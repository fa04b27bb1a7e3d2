// Package config provides configuration for the bookpal client and the
// companion server, combining command-line flags, environment variables
// and an optional JSON config file.
package config

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// ServerOptions holds configuration for the companion server.
type ServerOptions struct {
	// Addr is the listening address (ip:port).
	Addr string `json:"addr"`
	// DatabasePath is the SQLite database file path.
	DatabasePath string `json:"database_path"`
	// JWTSecret signs the access tokens issued on login and signup.
	JWTSecret string `json:"jwt_secret"`
	// BookDir is the directory holding the book's markdown chapters.
	BookDir string `json:"book_dir"`
	// LogLevel sets the zap log level.
	LogLevel string `json:"log_level"`
	// Config is the path to the JSON config file.
	Config string `json:"-"`
}

var serverOptions = &ServerOptions{}

func init() {
	flag.StringVar(&serverOptions.Addr, "a", "localhost:8081", "run on ip:port server")
	flag.StringVar(&serverOptions.DatabasePath, "d", "bookpald.db", "path to sqlite database")
	flag.StringVar(&serverOptions.JWTSecret, "s", "", "jwt signing secret")
	flag.StringVar(&serverOptions.BookDir, "book", "docs", "path to book chapters")
	flag.StringVar(&serverOptions.LogLevel, "l", "Info", "log level")
	flag.StringVar(&serverOptions.Config, "config", "config.json", "path to config file")
	flag.StringVar(&serverOptions.Config, "c", "config.json", "path to config file (shorthand)")
}

// ParseServer parses flags, the optional config file and environment
// variables into ServerOptions. Environment variables win over the file,
// the file wins over flag defaults. A missing .env file is not an error.
func ParseServer() *ServerOptions {
	_ = godotenv.Load()
	flag.Parse()

	if configPath := os.Getenv("CONFIG"); configPath != "" {
		serverOptions.Config = configPath
	}

	if serverOptions.Config != "" {
		if _, err := os.Stat(serverOptions.Config); err == nil {
			data, err := os.ReadFile(serverOptions.Config)
			if err != nil {
				log.Fatalf("error while reading config file: %v", err)
			}
			if err := json.Unmarshal(data, serverOptions); err != nil {
				log.Fatalf("error while parsing config file: %v", err)
			}
		}
	}

	if addr := os.Getenv("SERVER_ADDRESS"); addr != "" {
		serverOptions.Addr = addr
	}
	if dbPath := os.Getenv("DATABASE_PATH"); dbPath != "" {
		serverOptions.DatabasePath = dbPath
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		serverOptions.JWTSecret = secret
	}
	if bookDir := os.Getenv("BOOK_DIR"); bookDir != "" {
		serverOptions.BookDir = bookDir
	}

	return serverOptions
}

// ClientOptions holds configuration for the reader client.
type ClientOptions struct {
	// APIBaseURL is the base URL of the companion backend.
	APIBaseURL string
	// StateDir is where the session files live.
	StateDir string
	// BookDir is the directory holding the book's markdown chapters.
	BookDir string
	// MockAuth switches the session store to the simulated authenticator.
	MockAuth bool
}

// ClientDefaults returns client options seeded from the environment,
// suitable as cobra flag defaults. A .env file in the working directory
// is honored when present.
func ClientDefaults() ClientOptions {
	_ = godotenv.Load()

	opts := ClientOptions{
		APIBaseURL: "http://localhost:8081",
		StateDir:   defaultStateDir(),
		BookDir:    "docs",
	}
	if v := os.Getenv("BOOKPAL_API_BASE_URL"); v != "" {
		opts.APIBaseURL = v
	}
	if v := os.Getenv("BOOKPAL_STATE_DIR"); v != "" {
		opts.StateDir = v
	}
	if v := os.Getenv("BOOK_DIR"); v != "" {
		opts.BookDir = v
	}
	return opts
}

func defaultStateDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".bookpal"
	}
	return filepath.Join(base, "bookpal")
}
