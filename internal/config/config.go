package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is built once at startup and passed to collaborators.
type Config struct {
	Port string
	Env  string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret      string
	JWTExpiryHours int
	BcryptCost     int

	LogLevel string
	LogJSON  bool
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	return &Config{
		Port: getEnv("PORT", "5000"),
		Env:  getEnv("APP_ENV", "development"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "pulse_user"),
		DBPassword: getEnv("DB_PASSWORD", "pulse_pass"),
		DBName:     getEnv("DB_NAME", "pulse_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret:      getEnv("JWT_SECRET", "your-secret-key"),
		JWTExpiryHours: getEnvInt("JWT_EXPIRY_HOURS", 168),
		BcryptCost:     getEnvInt("BCRYPT_ROUNDS", 10),

		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogJSON:  getEnv("LOG_JSON", "false") == "true",
	}
}

// IsDevelopment reports whether error details may be exposed in responses.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultVal
}
