package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything the process reads from the environment.
type Config struct {
	Port      string
	DBPath    string
	JWTSecret string

	// "cloudinary" (default) or "s3"
	ImageStoreDriver string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	S3Bucket   string
	S3Region   string
	S3Key      string
	S3Secret   string
	S3Endpoint string // leave empty for real AWS
	S3BaseURL  string // public base URL; derived from bucket/region if empty
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment directly")
	}

	return &Config{
		Port:      getEnv("PORT", "8000"),
		DBPath:    getEnv("DB_PATH", "food_ordering.db"),
		JWTSecret: getEnv("JWT_SECRET", "food_ordering_super_secret_2024"),

		ImageStoreDriver: getEnv("IMAGE_STORE_DRIVER", "cloudinary"),

		CloudinaryCloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: getEnv("CLOUDINARY_API_SECRET", ""),

		S3Bucket:   getEnv("S3_BUCKET", ""),
		S3Region:   getEnv("S3_REGION", "us-east-1"),
		S3Key:      getEnv("S3_KEY", ""),
		S3Secret:   getEnv("S3_SECRET", ""),
		S3Endpoint: getEnv("S3_ENDPOINT", ""),
		S3BaseURL:  getEnv("S3_URL", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
