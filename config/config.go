package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server       Server
	Database     Database
	Auth         Auth
	Email        Email
	Storage      Storage
	GeminiApiKey string
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Auth holds the signing secret and token lifetimes. The same secret keys
// both the session JWT and the magic-link fingerprint HMAC.
type Auth struct {
	Secret       string
	MagicLinkTTL time.Duration
	SessionTTL   time.Duration
}

type Email struct {
	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	From     string
	LinkBase string
}

type Storage struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("MAGIC_LINK_TTL_MINUTES", 15)
	viper.SetDefault("SESSION_TTL_MINUTES", 60)
	viper.SetDefault("SMTP_PORT", 587)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Auth.Secret = viper.GetString("SECRET_KEY")
	config.Auth.MagicLinkTTL = time.Duration(viper.GetInt("MAGIC_LINK_TTL_MINUTES")) * time.Minute
	config.Auth.SessionTTL = time.Duration(viper.GetInt("SESSION_TTL_MINUTES")) * time.Minute

	config.Email.SMTPHost = viper.GetString("SMTP_HOST")
	config.Email.SMTPPort = viper.GetInt("SMTP_PORT")
	config.Email.SMTPUser = viper.GetString("SMTP_USER")
	config.Email.SMTPPass = viper.GetString("SMTP_PASS")
	config.Email.From = viper.GetString("EMAIL_FROM")
	config.Email.LinkBase = viper.GetString("MAGIC_LINK_BASE_URL")

	config.Storage.Endpoint = viper.GetString("S3_ENDPOINT")
	config.Storage.Region = viper.GetString("S3_REGION")
	config.Storage.Bucket = viper.GetString("S3_BUCKET")
	config.Storage.AccessKey = viper.GetString("S3_ACCESS_KEY")
	config.Storage.SecretKey = viper.GetString("S3_SECRET_KEY")

	config.GeminiApiKey = viper.GetString("GEMINI_API_KEY")

	log.Info().Str("port", config.Server.Port).Str("db_host", config.Database.Host).Msg("Config loaded")
	return &config, nil
}
