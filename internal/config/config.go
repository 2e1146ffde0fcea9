package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	SMTP      SMTPConfig
	Keys      APIKeys
	Assistant AssistantConfig
	Storage   StorageConfig
	Credits   CreditsConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type APIKeys struct {
	JWTSecret           string
	MidtransServerKey   string
	MidtransEnvironment string
	MaterialTopic       string // async artifact generation topic
	MaterialWorkers     int
}

type AssistantConfig struct {
	BaseURL        string
	Model          string
	TimeoutSeconds int
}

type StorageConfig struct {
	UploadDir   string
	MaxUploadMB int
}

type CreditsConfig struct {
	SignupGrant int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "StudySage"),
		},
		Keys: APIKeys{
			JWTSecret:           getEnv("JWT_SECRET", "dev-secret-change-me"),
			MidtransServerKey:   getEnv("MIDTRANS_SERVER_KEY", ""),
			MidtransEnvironment: getEnv("MIDTRANS_ENVIRONMENT", "sandbox"),
			MaterialTopic:       getEnv("GENERATE_MATERIAL_TOPIC_NAME", "GENERATE_STUDY_MATERIAL"),
			MaterialWorkers:     getEnvAsInt("MATERIAL_WORKER_COUNT", 2),
		},
		Assistant: AssistantConfig{
			BaseURL:        getEnv("ASSISTANT_BASE_URL", "http://localhost:8000"),
			Model:          getEnv("ASSISTANT_MODEL", "default"),
			TimeoutSeconds: getEnvAsInt("ASSISTANT_TIMEOUT_SECONDS", 120),
		},
		Storage: StorageConfig{
			UploadDir:   getEnv("UPLOAD_DIR", "./uploads"),
			MaxUploadMB: getEnvAsInt("MAX_UPLOAD_MB", 25),
		},
		Credits: CreditsConfig{
			SignupGrant: getEnvAsInt("SIGNUP_CREDIT_GRANT", 50),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
