package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

const (
	defaultDBPath          = "./dev.db"
	defaultPort            = "8080"
	defaultClimateState    = "TX"
	defaultElectricityRate = 0.12
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	DBPath string
	Port   string
	Env    string

	// ClimateState and ElectricityRate seed the energy-savings export when a
	// request does not choose its own.
	ClimateState    string
	ElectricityRate float64
}

// IsDev reports whether the server runs in development mode.
func (c Config) IsDev() bool {
	return c.Env == "" || c.Env == "dev" || c.Env == "development"
}

// Load reads environment variables and returns a populated Config.
func Load() Config {
	// Best-effort: production should use real env injection.
	if err := loadDotEnv(".env"); err != nil {
		log.Printf("warning: read .env: %v", err)
	}

	cfg := Config{
		DBPath:          os.Getenv("DB_PATH"),
		Port:            os.Getenv("PORT"),
		Env:             strings.ToLower(os.Getenv("APP_ENV")),
		ClimateState:    strings.ToUpper(strings.TrimSpace(os.Getenv("CLIMATE_STATE"))),
		ElectricityRate: defaultElectricityRate,
	}

	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.ClimateState == "" {
		cfg.ClimateState = defaultClimateState
	}

	if raw := os.Getenv("ELECTRICITY_RATE"); raw != "" {
		rate, err := strconv.ParseFloat(raw, 64)
		if err != nil || rate <= 0 {
			log.Printf("warning: ELECTRICITY_RATE %q is not a positive number, using %.2f", raw, defaultElectricityRate)
		} else {
			cfg.ElectricityRate = rate
		}
	}

	return cfg
}
