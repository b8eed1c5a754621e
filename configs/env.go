package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

func load() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on process environment")
	}
}

func EnvMongoURI() string {
	load()
	return os.Getenv("MONGOURI")
}

func EnvDatabaseName() string {
	load()
	if name := os.Getenv("DB_NAME"); name != "" {
		return name
	}
	return "furnitureShop"
}

func EnvPort() string {
	load()
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8080"
}

func EnvJWTSecret() string {
	load()
	return os.Getenv("JWT_SECRET")
}

func EnvClientURL() string {
	load()
	return os.Getenv("CLIENT_URL")
}

func EnvRazorpayKeyId() string {
	load()
	return os.Getenv("RAZORPAY_KEY_ID")
}

func EnvRazorpayKeySecret() string {
	load()
	return os.Getenv("RAZORPAY_KEY_SECRET")
}

func EnvEmailUser() string {
	load()
	return os.Getenv("EMAIL_USER")
}

func EnvEmailPass() string {
	load()
	return os.Getenv("EMAIL_PASS")
}

func EnvSMTPHost() string {
	load()
	if host := os.Getenv("SMTP_HOST"); host != "" {
		return host
	}
	return "smtp.gmail.com"
}

func EnvSMTPPort() int {
	load()
	if raw := os.Getenv("SMTP_PORT"); raw != "" {
		if port, err := strconv.Atoi(raw); err == nil {
			return port
		}
	}
	return 465
}

func EnvLogLevel() string {
	load()
	return os.Getenv("LOG_LEVEL")
}
