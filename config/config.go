package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	BackendBaseURL string        `envconfig:"BACKEND_BASE_URL" default:"https://sm-furnishing-backend.onrender.com"`
	Port           string        `envconfig:"ADMIN_SERVER_PORT" default:":5000"`
	LogLevel       string        `envconfig:"LOG_LEVEL"         default:"info"`
	AdminUsername  string        `envconfig:"ADMIN_USERNAME"    default:"admin"`
	AdminPassword  string        `envconfig:"ADMIN_PASSWORD"    default:"admin"`
	BackendTimeout time.Duration `envconfig:"BACKEND_TIMEOUT"   default:"30s"`
}

func LoadConfig(logger *logrus.Logger) (*Config, error) {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		logger.Warnf("Error loading .env file (but continuing): %v", err)
	} else if err == nil {
		logger.Info("Loaded configuration from .env file")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	logger.Infof("Configuration loaded: Port=%s, LogLevel=%s, Backend=%s", cfg.Port, cfg.LogLevel, cfg.BackendBaseURL)
	return &cfg, nil
}
