package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type DB struct {
	DbHOST     string
	DbPORT     string
	DbUSER     string
	DbPASSWORD string
	DbNAME     string
	DbSSLMODE  string
}

type MinIO struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	UseSSL     bool
	Region     string
}

// Areas holds the five filesystem areas a staged file can live in.
// The defaults match the directory layout of the legacy deployment so
// already-staged files keep working after an upgrade.
type Areas struct {
	Images         string
	Videos         string
	UploadedImages string
	UploadedVideos string
	Deleted        string
}

type Config struct {
	ServerPort       int
	DB               DB
	MinIO            MinIO
	Areas            Areas
	FFmpegPath       string
	TranscodeTimeout time.Duration
	RedditTimeout    time.Duration
	JWTSecretKey     string
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return duration
}

func LoadDB() DB {
	return DB{
		DbHOST:     getEnv("DB_HOST", "localhost"),
		DbPORT:     getEnv("DB_PORT", "5432"),
		DbUSER:     getEnv("DB_USER", "postgres"),
		DbPASSWORD: getEnv("DB_PASSWORD", "password"),
		DbNAME:     getEnv("DB_NAME", "redditstage"),
		DbSSLMODE:  getEnv("DB_SSLMODE", "disable"),
	}
}

// LoadMinIO reads the settings of the optional published-files archive.
// An empty endpoint means the archive is disabled.
func LoadMinIO() MinIO {
	return MinIO{
		Endpoint:   getEnv("MINIO_ENDPOINT", ""),
		AccessKey:  getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		SecretKey:  getEnv("MINIO_SECRET_KEY", "minioadmin"),
		BucketName: getEnv("MINIO_BUCKET_NAME", "published"),
		UseSSL:     getEnvBool("MINIO_USE_SSL", false),
		Region:     getEnv("MINIO_REGION", "us-east-1"),
	}
}

func LoadAreas() Areas {
	return Areas{
		Images:         getEnv("IMAGES_DIR", "Files/Images"),
		Videos:         getEnv("VIDEOS_DIR", "Files/Videos"),
		UploadedImages: getEnv("UPLOADED_IMAGES_DIR", "Uploaded Files/Images"),
		UploadedVideos: getEnv("UPLOADED_VIDEOS_DIR", "Uploaded Files/Videos"),
		Deleted:        getEnv("DELETED_DIR", "deleted_files"),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		ServerPort:       getEnvAsInt("SERVER_PORT", 5000),
		DB:               LoadDB(),
		MinIO:            LoadMinIO(),
		Areas:            LoadAreas(),
		FFmpegPath:       getEnv("FFMPEG_PATH", "ffmpeg"),
		TranscodeTimeout: parseDuration(getEnv("TRANSCODE_TIMEOUT", "5m"), 5*time.Minute),
		RedditTimeout:    parseDuration(getEnv("REDDIT_TIMEOUT", "60s"), 60*time.Second),
		JWTSecretKey:     getEnv("JWT_SECRET_KEY", ""),
	}
}
