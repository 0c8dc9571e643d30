package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	Processing ProcessingConfig
	Essay      EssayConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	StatusTopic        string
}

type DatabaseConfig struct {
	Connection string
}

type ProcessingConfig struct {
	BaseURL        string
	TimeoutSeconds int
	MaxUploadBytes int64
}

type EssayConfig struct {
	DefaultTopic         string
	DefaultAnalysisTopic string
	DefaultWordCount     int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			StatusTopic:        getEnv("PIPELINE_STATUS_TOPIC_NAME", "PIPELINE_STATUS"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Processing: ProcessingConfig{
			BaseURL:        getEnv("PROCESSING_API_BASE_URL", "http://127.0.0.1:8080/api/evidence"),
			TimeoutSeconds: getEnvAsInt("PROCESSING_API_TIMEOUT_SECONDS", 120),
			MaxUploadBytes: int64(getEnvAsInt("MAX_UPLOAD_BYTES", 10*1024*1024)),
		},
		Essay: EssayConfig{
			DefaultTopic:         getEnv("ESSAY_DEFAULT_TOPIC", "Write an essay about the selected evidence"),
			DefaultAnalysisTopic: getEnv("ANALYSIS_DEFAULT_TOPIC", "Analyze the key findings and methodology of this research paper"),
			DefaultWordCount:     getEnvAsInt("ESSAY_DEFAULT_WORD_COUNT", 1000),
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
