package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,       default=4000"`
	Env       string        `env:"ENV,        default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=168h"`
	LogLevel  string        `env:"LOG_LEVEL,  default=info"`

	Store StoreConfig
	Admin AdminConfig
}

type StoreConfig struct {
	// Driver selects the user store backend: "file" or "mongo".
	Driver string `env:"STORE_DRIVER, default=file"`
	Path   string `env:"STORE_PATH,   default=./users.json"`

	Mongo MongoConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=user_service"`
}

// AdminConfig seeds an initial administrator at startup. Leaving Email or
// Password empty skips seeding.
type AdminConfig struct {
	Email    string `env:"ADMIN_EMAIL"`
	Password string `env:"ADMIN_PASSWORD"`
	Name     string `env:"ADMIN_NAME"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// Validate rejects configurations the service must not run with. An empty
// signing secret would make every token forgeable, so it is fatal rather
// than a silent default.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must be set and non-empty")
	}
	switch c.Store.Driver {
	case "file", "mongo":
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q (want file or mongo)", c.Store.Driver)
	}
	return nil
}
