package config

import "os"

// Values read from the environment once at startup, after godotenv has loaded
// the .env file (see main).
var (
	APIPort string

	// Origin allowed by CORS, the address the web frontend is served from
	FrontendURL string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	RedisAddress  string
	RedisPassword string

	JWTSecret string

	// Credentials for the admin account created when the users table is empty
	DefaultAdminUsername string
	DefaultAdminPassword string

	// When "true", Populate seeds a sample game into an empty games table
	SeedSampleData string
)

// LoadEnv fills the config variables from the environment
func LoadEnv() {
	APIPort = getEnv("API_PORT", "8080")
	FrontendURL = getEnv("FRONTEND_URL", "http://localhost:5173")

	PostgresHost = getEnv("POSTGRES_HOST", "localhost")
	PostgresPort = getEnv("POSTGRES_PORT", "5432")
	PostgresUser = getEnv("POSTGRES_USER", "postgres")
	PostgresPassword = getEnv("POSTGRES_PASSWORD", "postgres")
	PostgresDB = getEnv("POSTGRES_DB", "gamebase")

	RedisAddress = getEnv("REDIS_ADDRESS", "localhost:6379")
	RedisPassword = os.Getenv("REDIS_PASSWORD")

	JWTSecret = getEnv("JWT_SECRET", "change-me")

	DefaultAdminUsername = getEnv("DEFAULT_ADMIN_USERNAME", "admin")
	DefaultAdminPassword = os.Getenv("DEFAULT_ADMIN_PASSWORD")

	SeedSampleData = os.Getenv("SEED_SAMPLE_DATA")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
