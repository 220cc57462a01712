package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DriverMySQL stores users and ledger rows in MySQL through GORM.
	DriverMySQL = "mysql"
	// DriverMongo stores users and ledger documents in MongoDB.
	DriverMongo = "mongo"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort    string
	DBDriver      string
	MySQLDSN      string
	MongoURL      string
	DBName        string
	RedisAddr     string
	RedisDB       int
	RedisPass     string
	JWTSecret     string
	GeminiAPIKey  string
	GeminiModel   string
	GeminiTimeout time.Duration
	SwaggerHost   string
	ResetDB       bool
}

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is applied first when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: ignoring .env: %v", err)
	}

	return &Config{
		ServerPort:    getEnv("SERVER_PORT", "8001"),
		DBDriver:      getEnv("DB_DRIVER", DriverMySQL),
		MySQLDSN:      getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/calorie_tracker?charset=utf8mb4&parseTime=True&loc=UTC"),
		MongoURL:      getEnv("MONGO_URL", "mongodb://localhost:27017"),
		DBName:        getEnv("DB_NAME", "calorie_tracker"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		RedisPass:     os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     getEnv("JWT_SECRET", "change-me"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		GeminiTimeout: getEnvDuration("GEMINI_TIMEOUT", 30*time.Second),
		SwaggerHost:   os.Getenv("SWAGGER_HOST"),
		ResetDB:       os.Getenv("RESET_DB") == "true",
	}
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

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
