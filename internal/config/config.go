package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Recaptcha RecaptchaConfig
	Storage   StorageConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type RecaptchaConfig struct {
	Secret    string
	VerifyURL string
	Timeout   time.Duration
}

type StorageConfig struct {
	UploadPath     string
	ApplicantsPath string
	MaxFileSize    int64
	PublicPath     string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Recaptcha: RecaptchaConfig{
			Secret:    getEnv("RECAPTCHA_SECRET", ""),
			VerifyURL: getEnv("RECAPTCHA_VERIFY_URL", "https://www.google.com/recaptcha/api/siteverify"),
			Timeout:   getEnvAsDuration("RECAPTCHA_TIMEOUT", "10s"),
		},
		Storage: StorageConfig{
			UploadPath:     getEnv("UPLOAD_PATH", "./uploads"),
			ApplicantsPath: getEnv("APPLICANTS_PATH", "./applicants"),
			MaxFileSize:    getEnvAsInt64("MAX_FILE_SIZE", 2*1024*1024),
			PublicPath:     getEnv("PUBLIC_PATH", "./public"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
