package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret              string
	SuperadminEmail        string
	SuperadminPasswordHash string
	SendgridAPIKey         string
	EmailFrom              string
	ClientURL              string
	UploadDir              string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	SuperadminEmail = GetEnv("SUPERADMIN_EMAIL")
	SuperadminPasswordHash = GetEnv("SUPERADMIN_PASSWORD_HASH")
	SendgridAPIKey = GetEnv("SENDGRID_API_KEY")
	EmailFrom = GetEnv("EMAIL_FROM", "no-reply@learnhub.local")
	ClientURL = GetEnv("CLIENT_URL", "http://localhost:5173")
	UploadDir = GetEnv("UPLOAD_DIR", "uploads")

	if JWTSecret == "" {
		log.Println("JWT_SECRET is not set; tokens cannot be issued or verified")
	}
	if SuperadminEmail == "" || SuperadminPasswordHash == "" {
		log.Println("superadmin identity is not configured (SUPERADMIN_EMAIL / SUPERADMIN_PASSWORD_HASH)")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
