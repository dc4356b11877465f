package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// DB stores PostgreSQL connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN builds a pgx connection string.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		d.User, d.Pass, d.Host, d.Port, d.Name)
}

// Pricing stores the fixed pricing constants.
type Pricing struct {
	PricePerKm int
}

// Geo stores geocoder settings. The geocode path is off unless both
// Enabled is set and AppID is non-empty.
type Geo struct {
	Enabled bool
	AppID   string
	BaseURL string
	Timeout time.Duration
}

// Kafka stores event publishing settings. Empty brokers/topic disables
// publishing.
type Kafka struct {
	Brokers []string
	Topic   string
}

// Config stores service settings.
type Config struct {
	Port    int
	DB      DB
	Pricing Pricing
	Geo     Geo
	Kafka   Kafka
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:    DefaultPort(),
		DB:      DefaultDB(),
		Pricing: DefaultPricing(),
		Geo:     DefaultGeo(),
	}

	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}

	envString(&cfg.DB.Host, "POSTGRES_HOST")
	envString(&cfg.DB.Port, "POSTGRES_PORT")
	envString(&cfg.DB.User, "POSTGRES_USER")
	envString(&cfg.DB.Pass, "POSTGRES_PASSWORD")
	envString(&cfg.DB.Name, "POSTGRES_DB")

	if v := os.Getenv("PRICE_PER_KM"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil || p <= 0 {
			return nil, fmt.Errorf("invalid PRICE_PER_KM: %q", v)
		}
		cfg.Pricing.PricePerKm = p
	}

	if v := os.Getenv("GEOCODER_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid GEOCODER_ENABLED: %q", v)
		}
		cfg.Geo.Enabled = b
	}
	envString(&cfg.Geo.AppID, "GEOCODER_APP_ID")
	envString(&cfg.Geo.BaseURL, "GEOCODER_BASE_URL")
	if v := os.Getenv("GEOCODER_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid GEOCODER_TIMEOUT: %q", v)
		}
		cfg.Geo.Timeout = d
	}

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		for _, b := range strings.Split(v, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.Kafka.Brokers = append(cfg.Kafka.Brokers, b)
			}
		}
	}
	envString(&cfg.Kafka.Topic, "KAFKA_ORDERS_TOPIC")

	fs := pflag.NewFlagSet(os.Args[0], pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.IntVar(&cfg.Port, "port", cfg.Port, "port to listen on")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	return cfg, nil
}

func envString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
