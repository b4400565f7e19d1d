package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Debug    bool
		TestMode bool
		Env      string
		Build    string
		AppName  string

		RollbarToken string

		// SelectionStore picks the backing store for principal selections:
		// "memory", "redis" or "database".
		SelectionStore string

		Server    ServerConfig
		Directory DirectoryConfig
		Session   SessionConfig
		Redis     RedisConfig
		Database  DatabaseConfig
	}

	ServerConfig struct {
		Host string
		Port int
	}

	DirectoryConfig struct {
		BaseURL string
		Timeout time.Duration
	}

	SessionConfig struct {
		SelectionTTL time.Duration
	}

	RedisConfig struct {
		Host     string
		Port     int
		Password string
		DB       int
	}

	DatabaseConfig struct {
		Engine        string
		Name          string
		User          string
		Password      string
		AdminUser     string
		AdminPassword string
		Host          string
		Port          int
		DisableTLS    bool
	}
)

func (c ServerConfig) Address() string   { return fmt.Sprintf("%s:%d", c.Host, c.Port) }
func (c RedisConfig) Address() string    { return fmt.Sprintf("%s:%d", c.Host, c.Port) }
func (c DatabaseConfig) Address() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

// NewConfig loads the app configuration from the environment.
// An optional config/.env.<env> file is loaded first if present.
func NewConfig() (*Config, error) {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("testMode", false)
	conf.SetDefault("appName", "Shule")
	conf.SetDefault("build", "")
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("selectionStore", "memory")
	conf.SetDefault("server.host", "")
	conf.SetDefault("server.port", 8000)
	conf.SetDefault("directory.baseURL", "http://localhost:9000")
	conf.SetDefault("directory.timeout", 5*time.Second)
	conf.SetDefault("session.selectionTTL", 30*24*time.Hour)
	conf.SetDefault("redis.host", "localhost")
	conf.SetDefault("redis.port", 6379)
	conf.SetDefault("redis.db", 0)
	conf.SetDefault("database.engine", "postgres")
	conf.SetDefault("database.name", "shule")
	conf.SetDefault("database.host", "localhost")
	conf.SetDefault("database.port", 5432)
	conf.SetDefault("database.disableTLS", true)

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)
	conf.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "config.godotenv(%s)", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "config.os.Stat(%s)", dotEnvPath)
	}
	conf.AutomaticEnv()

	c := new(Config)
	if err := conf.Unmarshal(c); err != nil {
		return nil, errors.Wrap(err, "unmarshalling config")
	}
	c.Env = env
	return c, nil
}
