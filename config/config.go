package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr           string `mapstructure:"REDIS_ADDR"`
	RedisPassword       string `mapstructure:"REDIS_PASSWORD"`
	RedisNotificationDB int    `mapstructure:"REDIS_NOTIFICATION_DB"`
	RedisMirrorDB       int    `mapstructure:"REDIS_MIRROR_DB"`

	// Notification banner lifetime in seconds.
	NotificationTTLSeconds int `mapstructure:"NOTIFICATION_TTL_SECONDS"`

	// Email gateway (EmailJS-compatible). An empty public key means the
	// gateway is not configured and confirmation emails are skipped.
	EmailPublicKey  string `mapstructure:"EMAIL_PUBLIC_KEY"`
	EmailServiceID  string `mapstructure:"EMAIL_SERVICE_ID"`
	EmailTemplateID string `mapstructure:"EMAIL_TEMPLATE_ID"`
	EmailGatewayURL string `mapstructure:"EMAIL_GATEWAY_URL"`

	// Salon identity, included in confirmation emails.
	SalonName    string `mapstructure:"SALON_NAME"`
	SalonPhone   string `mapstructure:"SALON_PHONE"`
	SalonAddress string `mapstructure:"SALON_ADDRESS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_NOTIFICATION_DB", 0)
	viper.SetDefault("REDIS_MIRROR_DB", 1)
	viper.SetDefault("NOTIFICATION_TTL_SECONDS", 4)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "salonbook")
	viper.SetDefault("EMAIL_PUBLIC_KEY", "")
	viper.SetDefault("EMAIL_SERVICE_ID", "")
	viper.SetDefault("EMAIL_TEMPLATE_ID", "")
	viper.SetDefault("EMAIL_GATEWAY_URL", "https://api.emailjs.com")
	viper.SetDefault("SALON_NAME", "Salon Belleza")
	viper.SetDefault("SALON_PHONE", "")
	viper.SetDefault("SALON_ADDRESS", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
