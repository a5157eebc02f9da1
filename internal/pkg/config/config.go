// Package config reads the server's settings from the environment.
//
// Values that differ per deployment (ports, credentials, brokers) are
// required; operational knobs carry defaults that suit a single-region
// install.
package config

import (
	"net/url"
	"time"

	"signage-sync/internal/pkg/errs"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Scheduler SchedulerConfig
	Realtime  RealtimeConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" required:"true"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`

	MaxConnLifetime time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
	// ConnectAttempts covers the database coming up after the server in
	// compose-style deployments.
	ConnectAttempts uint64        `envconfig:"DB_CONNECT_ATTEMPTS" default:"5"`
	ConnectTimeout  time.Duration `envconfig:"DB_CONNECT_TIMEOUT" default:"10s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Request-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone   string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	// TimeZoneOffset is used only when TimeZone cannot be loaded.
	TimeZoneOffset int `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// Tokens are issued by the account service; this service only validates them.
type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
	// Issuer, when set, must match the iss claim.
	Issuer string        `envconfig:"JWT_ISSUER" default:"signage-accounts"`
	Leeway time.Duration `envconfig:"JWT_LEEWAY" default:"30s"`
}

type SchedulerConfig struct {
	Interval time.Duration `envconfig:"SCHEDULER_INTERVAL" default:"30s"`
}

type RealtimeConfig struct {
	SendBuffer   int           `envconfig:"REALTIME_SEND_BUFFER" default:"16"`
	PingInterval time.Duration `envconfig:"REALTIME_PING_INTERVAL" default:"30s"`
	// Without brokers, signals stay inside this process.
	KafkaBrokers []string `envconfig:"REALTIME_KAFKA_BROKERS"`
	KafkaTopic   string   `envconfig:"REALTIME_KAFKA_TOPIC" default:"signage.changes"`
}

func (c *DBConfig) BuildDSN() string {
	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   c.Host + ":" + c.Port,
		Path:   "/" + c.DBName,
	}
	q := dsn.Query()
	q.Set("sslmode", c.SSLMode)
	q.Set("timezone", c.TimeZone)
	dsn.RawQuery = q.Encode()
	return dsn.String()
}

func (c RealtimeConfig) RelayEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

func (c Config) Validate() error {
	if c.Scheduler.Interval <= 0 {
		return errs.New("SCHEDULER_INTERVAL must be positive")
	}
	if _, err := time.ParseDuration(c.JWT.Duration); err != nil {
		return errs.Wrap(err, "JWT_DURATION")
	}
	if c.Realtime.RelayEnabled() && c.Realtime.KafkaTopic == "" {
		return errs.New("REALTIME_KAFKA_TOPIC is required with brokers")
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, errs.Wrap(err, "process env config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errs.Wrap(err, "invalid config")
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8889",
			ShutdownTimeout: 5 * time.Second,
		},
		DB: DBConfig{
			Host:            "localhost",
			Port:            "15433",
			User:            "test",
			Password:        "test",
			DBName:          "test_db",
			SSLMode:         "disable",
			TimeZone:        "UTC",
			MaxConns:        10,
			MaxConnLifetime: time.Hour,
			ConnectAttempts: 1,
			ConnectTimeout:  10 * time.Second,
		},
		Log: LogConfig{
			Level:      "error",
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
			Issuer:   "signage-accounts",
		},
		Scheduler: SchedulerConfig{
			Interval: 30 * time.Second,
		},
		Realtime: RealtimeConfig{
			SendBuffer:   16,
			PingInterval: 30 * time.Second,
			KafkaTopic:   "signage.changes",
		},
	}
}
