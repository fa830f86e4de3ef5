package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	RunMigrations     bool
	MigrationsPath    string
	DBMaxConns        int32
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	LoginRateLimit    string
	CORSOrigins       []string
}

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "4000")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("RUN_MIGRATIONS", true)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "api-cuenta-corrientes")
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "4000"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 12 * time.Hour
		if jwtExpiryStr != "" {
			log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
		}
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "api-cuenta-corrientes"
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}

	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")
	if cfg.LoginRateLimit == "" {
		cfg.LoginRateLimit = "5-M"
	}

	maxConns := viper.GetInt32("DB_MAX_CONNS")
	if maxConns <= 0 {
		log.Printf("Warning: Invalid value for DB_MAX_CONNS (%d). Defaulting to 10.\n", maxConns)
		maxConns = 10
	}
	cfg.DBMaxConns = maxConns

	cfg.CORSOrigins = splitOrigins(viper.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.RunMigrations = viper.GetBool("RUN_MIGRATIONS")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	return cfg, nil
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
