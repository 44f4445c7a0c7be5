package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost string
	ServicePort int

	RedisEndpoint string
	RedisPassword string

	// External catalog source.
	FleetyardsBaseURL string
	FleetyardsPerPage int

	// Shared secret for the /api/cron endpoints. Empty leaves them open.
	CronSecret string

	// Query service.
	MaxPageSize int

	// Image cache warming.
	WarmBaseURL     string
	WarmWidths      []int
	WarmConcurrency int

	// Background job schedules (cron expressions), used by the worker binary.
	SyncSchedule string
	WarmSchedule string

	// MinIO bucket backing the optimized-image cache.
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
}

const (
	defaultFleetyardsBaseURL = "https://api.fleetyards.net"
	defaultFleetyardsPerPage = 200
	defaultMaxPageSize       = 200
	defaultWarmConcurrency   = 5
)

func NewConfig() (*Config, error) {
	var err error
	configName := "config"
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")

	err = viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = godotenv.Load()
	if err != nil {
		logrus.Warn("Error loading .env file, using defaults")
	}

	viper.BindEnv("RedisEndpoint", "REDIS_ENDPOINT")
	viper.BindEnv("RedisPassword", "REDIS_PASSWORD")
	viper.BindEnv("CronSecret", "CRON_SECRET")
	viper.BindEnv("FleetyardsBaseURL", "FLEETYARDS_BASE_URL")
	viper.BindEnv("WarmBaseURL", "WARM_BASE_URL")
	viper.BindEnv("MinioEndpoint", "MINIO_ENDPOINT")
	viper.BindEnv("MinioAccessKey", "MINIO_ACCESS_KEY")
	viper.BindEnv("MinioSecretKey", "MINIO_SECRET_KEY")
	viper.BindEnv("MinioBucket", "MINIO_BUCKET")

	cfg := &Config{}
	err = viper.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.FleetyardsBaseURL == "" {
		cfg.FleetyardsBaseURL = defaultFleetyardsBaseURL
	}
	if cfg.FleetyardsPerPage <= 0 {
		cfg.FleetyardsPerPage = defaultFleetyardsPerPage
	}
	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = defaultMaxPageSize
	}
	if cfg.WarmConcurrency <= 0 {
		cfg.WarmConcurrency = defaultWarmConcurrency
	}
	if len(cfg.WarmWidths) == 0 {
		// Card and thumbnail sizes.
		cfg.WarmWidths = []int{640, 256}
	}

	logrus.Info("config parsed")
	return cfg, nil
}
