package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	JWT       JWTConfig
	Logger    LoggerConfig
	Services  ServicesConfig
	Tracker   TrackerConfig
	Discovery DiscoveryConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// ServicesConfig contains base URLs for the remote collaborator services
type ServicesConfig struct {
	PersonsURL      string
	PlacesURL       string
	EmergencyURL    string
	RelationshipURL string
	SafetyURL       string
	NotifyURL       string
}

// TrackerConfig contains location tracker policy knobs
type TrackerConfig struct {
	Accuracy          string
	MinIntervalSecs   int
	MinDistanceMeters float64
}

// DiscoveryConfig contains discovery engine configuration
type DiscoveryConfig struct {
	DefaultLatitude  float64
	DefaultLongitude float64
	PlaceRadiusM     int
	// EmergencyRefreshSecs controls periodic SOS registry refresh.
	// Zero means fetch once on the first fix only.
	EmergencyRefreshSecs int
	CacheTTLSecs         int
}
