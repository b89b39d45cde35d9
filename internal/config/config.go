package config

import (
	"os"
)

type Config struct {
	Port       string
	Env        string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	// Upload directories, created recursively at startup.
	ImageDir    string
	DocumentDir string
}

func Load() *Config {
	return &Config{
		Port:        getenv("PORT", "5000"),
		Env:         getenv("APP_ENV", "dev"),
		DBHost:      getenv("DB_HOST", "localhost"),
		DBPort:      getenv("DB_PORT", "5432"),
		DBUser:      getenv("DB_USER", "postgres"),
		DBPassword:  getenv("DB_PASSWORD", "postgres"),
		DBName:      getenv("DB_NAME", "fast_app"),
		DBSSLMode:   getenv("DB_SSLMODE", "disable"),
		ImageDir:    getenv("UPLOAD_IMG_DIR", "uploads/img"),
		DocumentDir: getenv("UPLOAD_DOC_DIR", "uploads/file_permohonan"),
	}
}

func getenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
