package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	AppEnv       string
	IsProduction bool
	JwtSecret    string
	Issuer       string
	ServerPort   string

	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string

	AdminUsername string
	AdminPassword string

	MinioEnabled   bool
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	KafkaBrokers []string
	KafkaTopic   string

	ExportDir    string
	SettingsFile string

	AllowedOrigins []string
	SessionCookie  string

	InProcessWorker bool
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppEnv = getEnv("APP_ENV", "development")
	IsProduction = AppEnv == "production"
	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("ISSUER", "forms")
	ServerPort = getEnv("SERVER_PORT", "8080")

	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "forms")

	AdminUsername = getEnv("ADMIN_USERNAME", "admin")
	AdminPassword = getEnv("ADMIN_PASSWORD", "")

	MinioEnabled, _ = strconv.ParseBool(getEnv("MINIO_ENABLED", "false"))
	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "form-exports")
	MinioUseSSL, _ = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))

	// Empty address keeps anti-spam tokens in process memory.
	RedisAddr = getEnv("REDIS_ADDR", "")
	RedisPassword = getEnv("REDIS_PASSWORD", "")
	RedisDB, _ = strconv.Atoi(getEnv("REDIS_DB", "0"))

	KafkaBrokers = splitList(getEnv("KAFKA_BROKERS", ""))
	KafkaTopic = getEnv("KAFKA_TOPIC", "forms.events")

	ExportDir = getEnv("EXPORT_DIR", "storage/exports")
	SettingsFile = getEnv("FORMS_SETTINGS_FILE", "")

	AllowedOrigins = splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:"))
	SessionCookie = getEnv("SESSION_COOKIE", "forms_session")

	// The API runs export jobs itself unless a separate worker is deployed.
	InProcessWorker, _ = strconv.ParseBool(getEnv("INPROCESS_WORKER", "true"))
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
