package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/Dastan7k/gig-track-system/internal/domain/types"
	"github.com/Dastan7k/gig-track-system/pkg/configparser"
)

// Flags
var (
	modeFlag = flag.String("mode", "", "application mode")
)

// Errors
var (
	ErrModeNotProvided = errors.New("mode flag not provided")
)

// Config contains all configuration variables of the application
type (
	Config struct {
		Mode types.ServiceMode

		Database DatabaseConfig
		RabbitMQ RabbitMQConfig
		Services ServicesConfig
		Auth     Auth
		Session  SessionConfig
	}

	DatabaseConfig struct {
		Host     string `env:"DATABASE_HOST" default:"localhost"`
		Port     string `env:"DATABASE_PORT" default:"5432"`
		User     string `env:"DATABASE_USER" default:"gigtrack_user"`
		Password string `env:"DATABASE_PASSWORD" default:"gigtrack_pass"`
		Database string `env:"DATABASE_DATABASE" default:"gigtrack_db"`

		MaxConns        int32         `env:"DATABASE_MAXCONNS" default:"20"`         // максимум открытых соединений
		MinConns        int32         `env:"DATABASE_MINCONNS" default:"2"`          // минимум соединений в пуле
		MaxConnLifetime time.Duration `env:"DATABASE_MAXCONNLIFETIME" default:"30m"` // макс. "время жизни" соединения
		MaxConnIdleTime time.Duration `env:"DATABASE_MAXCONNIDLETIME" default:"5m"`  // макс. "время простоя" соединения
	}

	RabbitMQConfig struct {
		Host     string `env:"RABBITMQ_HOST" default:"localhost"`
		Port     string `env:"RABBITMQ_PORT" default:"5672"`
		User     string `env:"RABBITMQ_USER" default:"guest"`
		Password string `env:"RABBITMQ_PASSWORD" default:"guest"`
	}

	ServicesConfig struct {
		RiderService string `env:"SERVICES_RIDER_SERVICE" default:"3000"`
		AdminService string `env:"SERVICES_ADMIN_SERVICE" default:"3001"`
	}

	Auth struct {
		AccessTokenTTL  time.Duration `env:"AUTH_ACCESS_TOKEN_TTL" default:"15m"`
		RefreshTokenTTL time.Duration `env:"AUTH_REFRESH_TOKEN_TTL" default:"168h"`
		JWTSecret       string        `env:"AUTH_JWT_SECRET" default:"supersecretkey"`
	}

	// SessionConfig controls the client-side device session used by the
	// riderctl tool.
	SessionConfig struct {
		StatePath string        `env:"SESSION_STATE_PATH" default:".gigtrack-state.json"`
		TTL       time.Duration `env:"SESSION_TTL" default:"720h"`
	}
)

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

func (c RabbitMQConfig) GetDSN() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/",
		c.User,
		c.Password,
		c.Host,
		c.Port,
	)
}

func NewConfig(filepath string) (*Config, error) {
	cfg := &Config{}

	// Loading enviromental variables and parsing to config struct.
	if err := configparser.LoadAndParseYaml(filepath, cfg); err != nil {
		return nil, fmt.Errorf("failed to load and parse config: %w", err)
	}

	// Parsing flags
	if err := parseFlags(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	return cfg, nil
}

func parseFlags(cfg *Config) error {
	if modeFlag == nil || *modeFlag == "" {
		return ErrModeNotProvided
	}

	cfg.Mode = types.ServiceMode(*modeFlag)

	return nil
}
