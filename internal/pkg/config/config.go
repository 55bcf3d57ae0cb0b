package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/roadmate/roadmate/internal/pkg/models"
)

// InitConfig loads configuration from the environment, reading a local
// .env file first when running outside a deployed environment.
func InitConfig(configPath string) *models.Config {
	env := GetEnv("APP_ENV", "local")
	if env == "local" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "roadmate-discovery")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 9990)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 10)

	// Database config
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 60)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "")

	// Collaborator services config
	configs.Services.PersonsURL = GetEnv("PERSONS_SERVICE_URL", "http://localhost:9981")
	configs.Services.PlacesURL = GetEnv("PLACES_SERVICE_URL", "http://localhost:9982")
	configs.Services.EmergencyURL = GetEnv("EMERGENCY_SERVICE_URL", "http://localhost:9983")
	configs.Services.RelationshipURL = GetEnv("RELATIONSHIP_SERVICE_URL", "http://localhost:9984")
	configs.Services.SafetyURL = GetEnv("SAFETY_SERVICE_URL", "http://localhost:9985")
	configs.Services.NotifyURL = GetEnv("NOTIFY_SERVICE_URL", "http://localhost:9986")

	// Tracker config
	configs.Tracker.Accuracy = GetEnv("TRACKER_ACCURACY", "balanced")
	configs.Tracker.MinIntervalSecs = GetEnvAsInt("TRACKER_MIN_INTERVAL_SECS", 10)
	configs.Tracker.MinDistanceMeters = GetEnvAsFloat("TRACKER_MIN_DISTANCE_METERS", 100.0)

	// Discovery config
	configs.Discovery.DefaultLatitude = GetEnvAsFloat("DISCOVERY_DEFAULT_LAT", 41.0082)
	configs.Discovery.DefaultLongitude = GetEnvAsFloat("DISCOVERY_DEFAULT_LNG", 28.9784)
	configs.Discovery.PlaceRadiusM = GetEnvAsInt("DISCOVERY_PLACE_RADIUS_M", 10000)
	configs.Discovery.EmergencyRefreshSecs = GetEnvAsInt("DISCOVERY_EMERGENCY_REFRESH_SECS", 0)
	configs.Discovery.CacheTTLSecs = GetEnvAsInt("DISCOVERY_CACHE_TTL_SECS", 900)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "logs/roadmate.log")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
