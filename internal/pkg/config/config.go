package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, intervals, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	Redis    RedisConfig
	Jobs     JobsConfig
	Delivery DeliveryConfig
	CORS     CORSConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type JobsConfig struct {
	PersistInterval    time.Duration `envconfig:"JOBS_PERSIST_INTERVAL" default:"5s"`
	PersistBatchSize   int           `envconfig:"JOBS_PERSIST_BATCH_SIZE" default:"100"`
	RetryInterval      time.Duration `envconfig:"JOBS_RETRY_INTERVAL" default:"10s"`
	RetryBatchSize     int           `envconfig:"JOBS_RETRY_BATCH_SIZE" default:"50"`
	RetryBaseDelay     time.Duration `envconfig:"JOBS_RETRY_BASE_DELAY" default:"30s"`
	MaxRetryCount      int           `envconfig:"JOBS_MAX_RETRY_COUNT" default:"3"`
	OutboxInterval     time.Duration `envconfig:"JOBS_OUTBOX_INTERVAL" default:"10s"`
	OutboxBatchSize    int           `envconfig:"JOBS_OUTBOX_BATCH_SIZE" default:"100"`
	OutboxMaxRetry     int           `envconfig:"JOBS_OUTBOX_MAX_RETRY" default:"5"`
	GrantTTL           time.Duration `envconfig:"JOBS_GRANT_TTL" default:"720h"` // 30 days
	CampaignCacheTTL   time.Duration `envconfig:"JOBS_CAMPAIGN_CACHE_TTL" default:"10s"`
	CampaignCacheSweep time.Duration `envconfig:"JOBS_CAMPAIGN_CACHE_SWEEP" default:"1m"`
}

type DeliveryConfig struct {
	Endpoint string        `envconfig:"DELIVERY_ENDPOINT" default:"http://localhost:9090/events"`
	Timeout  time.Duration `envconfig:"DELIVERY_TIMEOUT" default:"5s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-User-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Tokyo",
		},
		Redis: RedisConfig{
			Addr: "localhost:16380",
		},
		Jobs: JobsConfig{
			PersistInterval:    time.Second,
			PersistBatchSize:   100,
			RetryInterval:      time.Second,
			RetryBatchSize:     50,
			RetryBaseDelay:     30 * time.Second,
			MaxRetryCount:      3,
			OutboxInterval:     time.Second,
			OutboxBatchSize:    100,
			OutboxMaxRetry:     5,
			GrantTTL:           720 * time.Hour,
			CampaignCacheTTL:   10 * time.Second,
			CampaignCacheSweep: time.Minute,
		},
		Delivery: DeliveryConfig{
			Endpoint: "http://localhost:19090/events",
			Timeout:  time.Second,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
	}
}
