package config

import (
	"errors"
	"fmt"
	"os"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey    = "API_PORT"
	dbHostEnvKey     = "DB_HOST"
	dbPortEnvKey     = "DB_PORT"
	dbUserEnvKey     = "DB_USER"
	dbPasswordEnvKey = "DB_PASSWORD"
	dbNameEnvKey     = "DB_NAME"
	ethNodeEnvKey    = "ETH_NODE_URL"
	jwtSecretEnvKey  = "JWT_SECRET"
	corsOriginEnvKey = "CORS_ALLOW_ORIGIN"
	redisAddrEnvKey  = "REDIS_ADDR"
	appEnvEnvKey     = "APP_ENV"
	logFileEnvKey    = "LOG_FILE"

	// ProductionEnv disables error detail in responses and the test-data generator.
	ProductionEnv = "production"
)

type App struct {
	Port        string
	NodeURL     string
	JWTSecret   string
	CORSOrigin  string
	RedisAddr   string
	Environment string
	LogFile     string

	dbHost     string
	dbPort     string
	dbUser     string
	dbPassword string
	dbName     string
}

func NewApp() (App, error) {
	app := App{}

	required := map[string]*string{
		apiPortEnvKey:    &app.Port,
		dbHostEnvKey:     &app.dbHost,
		dbUserEnvKey:     &app.dbUser,
		dbPasswordEnvKey: &app.dbPassword,
		dbNameEnvKey:     &app.dbName,
		ethNodeEnvKey:    &app.NodeURL,
		jwtSecretEnvKey:  &app.JWTSecret,
	}

	for key, target := range required {
		value, ok := os.LookupEnv(key)
		if !ok {
			return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, key)
		}
		*target = value
	}

	app.dbPort = envOrDefault(dbPortEnvKey, "3306")
	app.CORSOrigin = envOrDefault(corsOriginEnvKey, "*")
	app.RedisAddr = envOrDefault(redisAddrEnvKey, "")
	app.Environment = envOrDefault(appEnvEnvKey, "development")
	app.LogFile = envOrDefault(logFileEnvKey, "")

	return app, nil
}

// DBConnectionString builds the MySQL DSN. parseTime is required so gorm can
// scan DATETIME columns into time.Time.
func (a App) DBConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		a.dbUser, a.dbPassword, a.dbHost, a.dbPort, a.dbName)
}

// IsProduction reports whether the service runs with production hardening.
func (a App) IsProduction() bool {
	return a.Environment == ProductionEnv
}

func envOrDefault(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	return value
}
