// Package config provides functionality for managing configuration options
// for the application using command-line flags and environment variables.
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"log"
	"os"
)

// Options holds the configuration values for the application.
type Options struct {
	// Addr defines the server's listening address (ip:port).
	Addr string

	// MongoURI holds the MongoDB connection string.
	MongoURI string

	// Database is the name of the MongoDB database to use.
	Database string

	// JWTSecret signs session tokens. Required.
	JWTSecret string

	// FrontendURL is the origin allowed by CORS. "*" when unset.
	FrontendURL string

	// Env is the deployment environment ("dev" or "production").
	// Error responses include failure details only outside production.
	Env string

	// LogLevel sets the minimum log level ("debug", "info", "warn", "error").
	LogLevel string

	// Config is the path to an optional JSON config file.
	Config string
}

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.Addr, "a", "localhost:8080", "run on ip:port server")
	flag.StringVar(&options.MongoURI, "m", "", "mongodb connection string")
	flag.StringVar(&options.Database, "db", "nextbite", "mongodb database name")
	flag.StringVar(&options.Env, "env", "dev", "deployment environment")
	flag.StringVar(&options.LogLevel, "l", "info", "log level")
	flag.StringVar(&options.Config, "config", "", "path to config file")
	flag.StringVar(&options.Config, "c", "", "path to config file (shorthand)")
}

// Parse parses the command-line flags and environment variables to set
// configuration values. Environment variables take precedence over flags,
// and flags take precedence over the JSON config file. It returns a pointer
// to the Options struct containing the parsed configuration values.
func Parse() *Options {
	flag.Parse()

	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if _, err := os.Stat(options.Config); err == nil {
			data, err := os.ReadFile(options.Config)
			if err != nil {
				log.Fatalf("error while reading config file: %v", err)
			}
			if err := json.Unmarshal(data, options); err != nil {
				log.Fatalf("error while parsing config file: %v", err)
			}
		}
	}

	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		options.Addr = serverAddress
	}
	if mongoURI := os.Getenv("MONGODB_URI"); mongoURI != "" {
		options.MongoURI = mongoURI
	}
	if database := os.Getenv("MONGODB_DATABASE"); database != "" {
		options.Database = database
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		options.JWTSecret = secret
	}
	if frontend := os.Getenv("FRONTEND_URL"); frontend != "" {
		options.FrontendURL = frontend
	}
	if env := os.Getenv("APP_ENV"); env != "" {
		options.Env = env
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		options.LogLevel = level
	}

	return options
}

// Validate checks that required configuration values are present.
// The server refuses to start without a store address and a signing
// secret rather than degrade silently.
func (o *Options) Validate() error {
	if o.MongoURI == "" {
		return errors.New("configuration error: MONGODB_URI is not set")
	}
	if o.JWTSecret == "" {
		return errors.New("configuration error: JWT_SECRET is not set")
	}
	return nil
}

// IsProduction reports whether the server runs in the production environment.
func (o *Options) IsProduction() bool {
	return o.Env == "production" || o.Env == "prod"
}
