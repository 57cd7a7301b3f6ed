package config

import (
	"sync"
	"time"

	"lugx_gaming_server/structs"
)

var (
	configInstance *structs.Config
	configOnce     sync.Once
)

func GetConfig() *structs.Config {
	configOnce.Do(func() {
		configInstance = &structs.Config{
			Server: &structs.ServerConfig{
				AppName:        getEnvAsString("APP_NAME", "LUGX Gaming API"),
				Environment:    getEnvAsString("APP_ENV", "development"),
				Port:           getEnvAsString("APP_PORT", ":3002"),
				ReadTimeout:    getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
				WriteTimeout:   getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
				IdleTimeout:    getEnvAsDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
				MaxHeaderBytes: getEnvAsInt("SERVER_MAX_HEADER_BYTES", 1<<20), // 1 MB
			},
			Cors: &structs.CorsConfig{
				AllowOrigins:     getEnvAsSlice("CORS_ALLOW_ORIGINS", []string{"http://localhost:3000"}),
				AllowMethods:     getEnvAsSlice("CORS_ALLOW_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
				AllowHeaders:     getEnvAsSlice("CORS_ALLOW_HEADERS", []string{"Origin", "Content-Type", "Accept", "x-api-key"}),
				AllowCredentials: getEnvAsBool("CORS_ALLOW_CREDENTIALS", false),
				ExposedHeaders:   getEnvAsSlice("CORS_EXPOSED_HEADERS", []string{"Content-Length"}),
			},
			Database: &structs.DatabaseConfig{
				Host:        getEnvAsString("DB_HOST", "localhost"),
				Port:        getEnvAsInt("DB_PORT", 5432),
				User:        getEnvAsString("DB_USER", "postgres"),
				Password:    getEnvAsString("DB_PASSWORD", "password"),
				Name:        getEnvAsString("DB_NAME", "lugx_gaming"),
				SSLMode:     getEnvAsString("DB_SSLMODE", "disable"),
				MaxConns:    getEnvAsInt("DB_MAX_CONNS", 10),
				MinConns:    getEnvAsInt("DB_MIN_CONNS", 2),
				MaxLifetime: getEnvAsDuration("DB_MAX_LIFETIME", 30*time.Minute),
				MaxIdleTime: getEnvAsDuration("DB_MAX_IDLE_TIME", 5*time.Minute),
			},
			Auth: &structs.AuthConfig{
				APIKey: getEnvAsString("API_KEY", "dev-api-key"),
			},
			Redis: &structs.RedisConfig{
				Addr:     getEnvAsString("REDIS_ADDR", "localhost:6379"),
				Password: getEnvAsString("REDIS_PASSWORD", ""),
				DB:       getEnvAsInt("REDIS_DB", 0),
				CacheTTL: getEnvAsDuration("REDIS_CACHE_TTL", 5*time.Minute),
			},
			Email: &structs.EmailConfig{
				ResendAPIKey: getEnvAsString("RESEND_API_KEY", ""),
				FromAddress:  getEnvAsString("EMAIL_FROM", "orders@lugx-gaming.example"),
			},
		}
	})
	return configInstance
}

func GetLogLevel() string {
	if GetConfig().Server.Environment == "production" {
		return "info"
	}
	return "debug"
}

func IsProduction() bool {
	return GetConfig().Server.Environment == "production"
}
