package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DriverMongo stores documents in MongoDB.
	DriverMongo = "mongo"
	// DriverMySQL stores rows in MySQL through GORM.
	DriverMySQL = "mysql"

	defaultJWTSecret = "change-me"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort    string
	Env           string
	LogLevel      string
	StoreDriver   string
	MongoURI      string
	MongoDatabase string
	MySQLDSN      string
	RedisAddr     string
	RedisDB       int
	RedisPass     string
	JWTSecret     string
	CORSOrigins   []string
	SwaggerHost   string
	ResetDB       bool
}

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is read first when present.
func Load() *Config {
	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = getEnv("SECRET_TOKEN", defaultJWTSecret)
	}

	return &Config{
		ServerPort:    getEnv("PORT", "5000"),
		Env:           getEnv("APP_ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		StoreDriver:   strings.ToLower(getEnv("STORE_DRIVER", DriverMongo)),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGO_DATABASE", "doctor_portal_server"),
		MySQLDSN:      getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/doctor_portal?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		RedisPass:     os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     secret,
		CORSOrigins:   splitList(getEnv("CORS_ORIGINS", "*")),
		SwaggerHost:   os.Getenv("SWAGGER_HOST"),
		ResetDB:       os.Getenv("RESET_DB") == "true",
	}
}

// Validate reports configuration that the server cannot start with.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverMongo, DriverMySQL:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if c.IsProduction() && c.JWTSecret == defaultJWTSecret {
		return fmt.Errorf("JWT_SECRET must be set in production")
	}
	return nil
}

// IsProduction returns true when the server is configured for production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
