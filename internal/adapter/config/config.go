package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Database *Database
	HTTP     *HTTP
	Token    *Token
	App      *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string `env:"APP_MODE"`
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Token struct {
	// Hex-encoded 32-byte symmetric key. A random key is generated when
	// empty, which invalidates issued tokens on restart.
	SymmetricKey string `env:"TOKEN_KEY"`
}

func NewConfig() (*Config, error) {
	// Local development drops overrides in a .env file, same as the other
	// services of this project. Missing file is fine.
	_ = godotenv.Load()

	var db Database
	var http HTTP
	var token Token
	var app App

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.Parse()

	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&token)
	if err != nil {
		return nil, fmt.Errorf("error parsing token config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}

	config := Config{
		Database: &db,
		HTTP:     &http,
		Token:    &token,
		App:      &app,
	}

	return &config, nil
}
