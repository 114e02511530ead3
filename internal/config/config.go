package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvProduction = "production"

	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type Config struct {
	AppEnv            string
	AppPort           string
	DbDriver          string
	DbHost            string
	DbPort            string
	DbUser            string
	DbPassword        string
	DbName            string
	DbParams          string
	SqlitePath        string
	DbAutoMigrate     bool
	JwtAccessSecret   string
	JwtRefreshSecret  string
	JwtAccessTTL      time.Duration
	JwtRefreshTTL     time.Duration
	JwtIssuer         string
	TranslationFolder string
	ClientOrigins     []string
	TrustedProxies    []string
	NotifyWorkers     int
	NotifyQueueSize   int
	ShutdownTimeout   time.Duration
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppEnv:            getEnv("APP_ENV", "development"),
		AppPort:           getEnv("APP_PORT", "8080"),
		DbDriver:          getEnv("DB_DRIVER", DriverMySQL),
		DbHost:            getEnv("MYSQL_HOST", "db"),
		DbPort:            getEnv("MYSQL_PORT", "3306"),
		DbUser:            getEnv("MYSQL_USER", "taskcollab"),
		DbPassword:        getEnv("MYSQL_PASSWORD", "taskcollab"),
		DbName:            getEnv("MYSQL_DATABASE", "taskcollab"),
		DbParams:          getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		SqlitePath:        getEnv("SQLITE_PATH", "taskcollab.db"),
		DbAutoMigrate:     getBool("DB_AUTO_MIGRATE", true),
		JwtAccessSecret:   getEnv("JWT_ACCESS_SECRET", "change-me-access"),
		JwtRefreshSecret:  getEnv("JWT_REFRESH_SECRET", "change-me-refresh"),
		JwtAccessTTL:      getDuration("JWT_ACCESS_TTL", 15*time.Minute),
		JwtRefreshTTL:     getDuration("JWT_REFRESH_TTL", 7*24*time.Hour),
		JwtIssuer:         getEnv("JWT_ISSUER", "taskcollab"),
		TranslationFolder: getEnv("TRANSLATION_FOLDER", "pkg/translator/translation"),
		ClientOrigins:     parseList(os.Getenv("CLIENT_ORIGIN")),
		TrustedProxies:    parseList(os.Getenv("TRUSTED_PROXIES")),
		NotifyWorkers:     getInt("NOTIFY_WORKERS", 2),
		NotifyQueueSize:   getInt("NOTIFY_QUEUE_SIZE", 256),
		ShutdownTimeout:   getDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
	}
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == EnvProduction
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	value, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func getBool(key string, fallback bool) bool {
	value, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return value
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

// parseList splits a comma separated value, dropping blanks.
func parseList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil
	}

	return items
}
