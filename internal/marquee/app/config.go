package app

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	// MaxDBConns caps DB_MAX_CONNS. pgxpool takes an int32.
	MaxDBConns = 1024

	// MinSecretLength is the shortest JWT_SECRET accepted outside dev.
	MinSecretLength = 32
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	JWTSecret           string        // Required outside dev: HS256 signing secret, at least 32 bytes
	DatabaseDriver      string        // Optional: sqlite or postgres (default: sqlite)
	DatabaseFile        string        // Optional: path to SQLite database file (default: ./marquee.db)
	DatabaseURL         string        // Required for postgres: connection URL
	DBMaxConns          int           // Optional: pool size (default: 5)
	PepperFile          string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	BcryptCost          int           // Optional: bcrypt work factor (default: 10)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 3000)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)

	// LogOutput defaults to stdout. Not read from the environment.
	LogOutput io.Writer
}

// LoadConfig reads the environment, after loading envFile into it when the
// file exists. Variables already set win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := Config{
		JWTSecret:           os.Getenv("JWT_SECRET"),
		DatabaseDriver:      getEnvOrDefault("DATABASE_DRIVER", DriverSQLite),
		DatabaseFile:        getEnvOrDefault("DATABASE_FILE", "marquee.db"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		DBMaxConns:          getEnvIntOrDefault("DB_MAX_CONNS", 5),
		PepperFile:          getEnvOrDefault("PEPPER_FILE", "pepper"),
		BcryptCost:          getEnvIntOrDefault("BCRYPT_COST", bcrypt.DefaultCost),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 3000),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	return cfg, nil
}

// IsDev reports whether the process runs in the dev environment, where an
// ephemeral signing secret is allowed.
func (c Config) IsDev() bool { return c.Env == "dev" }

// Validate reports every problem at once.
func (c Config) Validate() error {
	var errs []error

	switch c.DatabaseDriver {
	case DriverSQLite:
		if c.DatabaseFile == "" {
			errs = append(errs, errors.New("DATABASE_FILE is required for sqlite"))
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required for postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown DATABASE_DRIVER %q", c.DatabaseDriver))
	}

	if !c.IsDev() && len(c.JWTSecret) < MinSecretLength {
		errs = append(errs, fmt.Errorf("JWT_SECRET must be at least %d bytes outside dev", MinSecretLength))
	}

	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost))
	}

	if c.DBMaxConns < 1 || c.DBMaxConns > MaxDBConns {
		errs = append(errs, fmt.Errorf("DB_MAX_CONNS must be between 1 and %d", MaxDBConns))
	}

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d out of range", c.Port))
	}

	if c.PepperFile == "" {
		errs = append(errs, errors.New("PEPPER_FILE is required"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are seconds.
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
