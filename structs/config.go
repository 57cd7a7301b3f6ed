package structs

import "time"

type Config struct {
	Server   *ServerConfig
	Cors     *CorsConfig
	Database *DatabaseConfig
	Auth     *AuthConfig
	Redis    *RedisConfig
	Email    *EmailConfig
}

type ServerConfig struct {
	AppName        string        // LUGX Gaming
	Environment    string        // development, production
	Port           string        // :3002
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxHeaderBytes int // in bytes
}

type CorsConfig struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	ExposedHeaders   []string
	AllowCredentials bool
}

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	Name        string
	SSLMode     string
	MaxConns    int
	MinConns    int
	MaxLifetime time.Duration
	MaxIdleTime time.Duration
}

// AuthConfig holds the shared secret compared against the x-api-key header.
// There are no sessions and no expiry; every protected call re-checks the key.
type AuthConfig struct {
	APIKey string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	CacheTTL time.Duration
}

type EmailConfig struct {
	ResendAPIKey string
	FromAddress  string
}
