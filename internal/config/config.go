package config

import "os"

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string
	MySQLDSN    string
	JWTSecret   string
	JWTIssuer   string
	JWTAudience string
	SwaggerHost string
}

// Load builds Config from environment with sensible defaults.
// The DSN enables clientFoundRows so an update that matches a row but
// changes nothing still reports one affected row.
func Load() *Config {
	return &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		MySQLDSN:    getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/store?charset=utf8mb4&parseTime=True&loc=Local&clientFoundRows=true"),
		JWTSecret:   getEnv("JWT_SECRET", "change-me"),
		JWTIssuer:   getEnv("JWT_ISSUER", "storeapi"),
		JWTAudience: getEnv("JWT_AUDIENCE", "storeapi-clients"),
		SwaggerHost: os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
