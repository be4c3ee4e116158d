package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	CodeGeneratorClass  = "class"
	CodeGeneratorNanoID = "nanoid"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Env             string `yaml:"env"`
	ShortCodeLength int    `yaml:"short_code_length"`
	VisitorIDLength int    `yaml:"visitor_id_length"`
	UserIDLength    int    `yaml:"user_id_length"`
	CodeGenerator   string `yaml:"code_generator"`
	MaxRetries      int    `yaml:"max_retries"`
	BcryptCost      int    `yaml:"bcrypt_cost"`
	HTTPServer      `yaml:"http_server"`
	Session         `yaml:"session"`
	Log             `yaml:"log"`
}

type HTTPServer struct {
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	MaxHeaderBytes  int           `yaml:"max_header_bytes"`
	CertFile        string        `yaml:"cert_file"`
	KeyFile         string        `yaml:"key_file"`
}

var defaultHTTPServer = HTTPServer{
	Port:            8080,
	ReadTimeout:     5 * time.Second,
	WriteTimeout:    10 * time.Second,
	IdleTimeout:     time.Minute,
	ShutdownTimeout: 10 * time.Second,
	MaxHeaderBytes:  1 << 20,
}

func (s *HTTPServer) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

// Session configures the signed cookie carrying user and visitor ids.
// Keys left empty are generated at startup, which invalidates cookies on restart.
type Session struct {
	CookieName string `yaml:"cookie_name" envconfig:"SESSION_COOKIE_NAME"`
	HashKey    string `yaml:"hash_key" envconfig:"SESSION_HASH_KEY"`
	BlockKey   string `yaml:"block_key" envconfig:"SESSION_BLOCK_KEY"`
	MaxAge     int    `yaml:"max_age" envconfig:"SESSION_MAX_AGE"`
	Secure     bool   `yaml:"secure" envconfig:"SESSION_SECURE"`
}

var defaultSession = Session{
	CookieName: "session",
	MaxAge:     86400 * 30,
}

type Log struct {
	Level   string `yaml:"level"`
	JSON    bool   `yaml:"json"`
	Concise bool   `yaml:"concise"`
}

var defaultLog = Log{
	Level:   "info",
	Concise: true,
}

func (l *Log) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Load reads the yaml file at path on top of the defaults and then applies
// SESSION_* environment overrides. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	const op = "config.Load"

	var cfg Config
	setDefaults(&cfg)

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to open config file: %w", op, err)
		}
		defer f.Close()

		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("%s: failed to decode config file: %w", op, err)
		}
	}

	if err := envconfig.Process("", &cfg.Session); err != nil {
		return nil, fmt.Errorf("%s: failed to process env: %w", op, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &cfg, nil
}

func (cfg *Config) Validate() error {
	switch cfg.Env {
	case EnvDev, EnvStage, EnvProd:
	default:
		return fmt.Errorf("%w: unknown env %q", ErrInvalidConfig, cfg.Env)
	}

	switch cfg.CodeGenerator {
	case CodeGeneratorClass, CodeGeneratorNanoID:
	default:
		return fmt.Errorf("%w: unknown code generator %q", ErrInvalidConfig, cfg.CodeGenerator)
	}

	if cfg.ShortCodeLength <= 0 || cfg.VisitorIDLength <= 0 || cfg.UserIDLength <= 0 {
		return fmt.Errorf("%w: code lengths must be positive", ErrInvalidConfig)
	}

	if cfg.MaxRetries <= 0 {
		return fmt.Errorf("%w: max_retries must be positive", ErrInvalidConfig)
	}

	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return fmt.Errorf("%w: bcrypt_cost out of range", ErrInvalidConfig)
	}

	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("%w: invalid http port %d", ErrInvalidConfig, cfg.HTTPServer.Port)
	}

	if cfg.Session.CookieName == "" {
		return fmt.Errorf("%w: empty session cookie name", ErrInvalidConfig)
	}

	switch len(cfg.Session.BlockKey) {
	case 0, 16, 24, 32:
	default:
		return fmt.Errorf("%w: session block key must be 16, 24 or 32 bytes", ErrInvalidConfig)
	}

	return nil
}

func setDefaults(cfg *Config) {
	cfg.Env = EnvDev
	cfg.ShortCodeLength = 6
	cfg.VisitorIDLength = 6
	cfg.UserIDLength = 10
	cfg.CodeGenerator = CodeGeneratorClass
	cfg.MaxRetries = 5
	cfg.BcryptCost = 10
	cfg.HTTPServer = defaultHTTPServer
	cfg.Session = defaultSession
	cfg.Log = defaultLog
}
