package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type HTTP struct {
	Bind string `toml:"bind" yaml:"bind"`
	Port int    `toml:"port" yaml:"port"`
}

type DB struct {
	Host     string `toml:"host" yaml:"host"`
	Port     string `toml:"port" yaml:"port"`
	Name     string `toml:"name" yaml:"name"`
	User     string `toml:"user" yaml:"user"`
	Password string `toml:"password" yaml:"password"`
	SSLMode  string `toml:"sslmode" yaml:"sslmode"`
	PoolSize int    `toml:"pool_size" yaml:"pool_size"`
}

type Token struct {
	Secret          string `toml:"secret" yaml:"secret"`
	ExpirationHours int    `toml:"expiration_hours" yaml:"expiration_hours"`
}

// Root holds the out-of-band bootstrap credentials. An empty Email disables
// root login entirely.
type Root struct {
	Email             string `toml:"email" yaml:"email"`
	Password          string `toml:"password" yaml:"password"`
	ExpirationMinutes int    `toml:"expiration_minutes" yaml:"expiration_minutes"`
}

type Log struct {
	Level string `toml:"level" yaml:"level"`
}

type Config struct {
	HTTP     HTTP   `toml:"http" yaml:"http"`
	DB       DB     `toml:"database" yaml:"database"`
	Token    Token  `toml:"token" yaml:"token"`
	Root     Root   `toml:"root" yaml:"root"`
	Log      Log    `toml:"log" yaml:"log"`
	Settings string `toml:"-" yaml:"-"`
}

func Default() *Config {
	return &Config{
		HTTP: HTTP{Bind: "0.0.0.0", Port: 8080},
		DB: DB{
			Host:     "localhost",
			Port:     "5432",
			Name:     "schoolfeedback",
			User:     "postgres",
			Password: "password",
			SSLMode:  "disable",
			PoolSize: 10,
		},
		Token: Token{ExpirationHours: 24},
		Root:  Root{ExpirationMinutes: 10},
		Log:   Log{Level: "info"},
	}
}

// LoadConfig reads the settings file at path (TOML or YAML by extension),
// then applies .env and environment overrides. An empty path skips the file.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
		cfg.Settings = path
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("could not read .env file", "error", err)
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("couldn't load configuration file %q: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, c)
	case ".toml", "":
		err = toml.Unmarshal(data, c)
	default:
		return fmt.Errorf("unsupported configuration format %q", filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("couldn't parse configuration file %q: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.HTTP.Bind = getEnv("SERVER_BIND", c.HTTP.Bind)
	c.HTTP.Port = getEnvAsInt("SERVER_PORT", c.HTTP.Port)

	c.DB.Host = getEnv("DB_HOST", c.DB.Host)
	c.DB.Port = getEnv("DB_PORT", c.DB.Port)
	c.DB.Name = getEnv("DB_NAME", c.DB.Name)
	c.DB.User = getEnv("DB_USER", c.DB.User)
	c.DB.Password = getEnv("DB_PASSWORD", c.DB.Password)
	c.DB.SSLMode = getEnv("DB_SSLMODE", c.DB.SSLMode)
	c.DB.PoolSize = getEnvAsInt("DB_POOL_SIZE", c.DB.PoolSize)

	c.Token.Secret = getEnv("TOKEN_SECRET", c.Token.Secret)
	c.Token.ExpirationHours = getEnvAsInt("TOKEN_EXPIRATION_HOURS", c.Token.ExpirationHours)

	c.Root.Email = getEnv("ROOT_EMAIL", c.Root.Email)
	c.Root.Password = getEnv("ROOT_PASSWORD", c.Root.Password)
	c.Root.ExpirationMinutes = getEnvAsInt("ROOT_EXPIRATION_MINUTES", c.Root.ExpirationMinutes)

	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
}

func (c *Config) Validate() error {
	if c.Token.Secret == "" {
		return errors.New("token secret is not set")
	}
	if c.Token.ExpirationHours <= 0 {
		return fmt.Errorf("token expiration must be positive, got %d hours", c.Token.ExpirationHours)
	}
	if c.Root.Email != "" {
		if c.Root.Password == "" {
			return errors.New("root email is set without a root password")
		}
		if c.Root.ExpirationMinutes <= 0 {
			return fmt.Errorf("root expiration must be positive, got %d minutes", c.Root.ExpirationMinutes)
		}
	}
	if c.DB.PoolSize <= 0 {
		return fmt.Errorf("database pool size must be positive, got %d", c.DB.PoolSize)
	}
	return nil
}

func (c *Config) Addr() string {
	return net.JoinHostPort(c.HTTP.Bind, strconv.Itoa(c.HTTP.Port))
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DB.Host,
		c.DB.Port,
		c.DB.User,
		c.DB.Password,
		c.DB.Name,
		c.DB.SSLMode,
	)
}

func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.Token.ExpirationHours) * time.Hour
}

func (c *Config) RootTTL() time.Duration {
	return time.Duration(c.Root.ExpirationMinutes) * time.Minute
}

func (c *Config) RootEnabled() bool {
	return c.Root.Email != ""
}

func (c *Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
