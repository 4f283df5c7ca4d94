package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// AdminPasswordHash is the bcrypt hash of the single admin password.
	AdminPasswordHash string

	FrontendBaseURL string

	// RatesFetchTimeout bounds a single exchange-rate GET.
	RatesFetchTimeout time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "cost-manager-app")
	viper.SetDefault("ADMIN_PASSWORD_HASH", "")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("RATES_FETCH_TIMEOUT", "10s")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.AdminPasswordHash = viper.GetString("ADMIN_PASSWORD_HASH")
	if cfg.AdminPasswordHash == "" {
		log.Println("Warning: ADMIN_PASSWORD_HASH not set. A hash of the default password will be used. THIS IS NOT FOR PRODUCTION.")
	}

	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")

	ratesTimeoutStr := viper.GetString("RATES_FETCH_TIMEOUT")
	ratesTimeout, err := time.ParseDuration(ratesTimeoutStr)
	if err != nil {
		ratesTimeout = 10 * time.Second
		log.Printf("Warning: Invalid value for RATES_FETCH_TIMEOUT ('%s'). Defaulting to %s.\n", ratesTimeoutStr, ratesTimeout.String())
	}
	cfg.RatesFetchTimeout = ratesTimeout

	return cfg, nil
}
