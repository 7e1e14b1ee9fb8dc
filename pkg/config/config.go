package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database DatabaseConfig `yaml:"database" json:"database" jsonschema:"description=Document store configuration"`

	Generator GeneratorConfig `yaml:"generator" json:"generator" jsonschema:"description=Caption generation settings"`

	CORS CORSConfig `yaml:"cors" json:"cors" jsonschema:"description=Cross-origin requests settings"`
}

// DatabaseConfig holds storage settings for generation records
type DatabaseConfig struct {
	Disabled        bool   `yaml:"disabled" json:"disabled" jsonschema:"default=false,description=Run without storage; generations are not saved"`
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:captions.db?cache=shared&mode=rwc,description=Database connection string"`
	Name            string `yaml:"name" json:"name" jsonschema:"default=captions,description=Logical database name"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
}

// GeneratorConfig holds caption generation settings
type GeneratorConfig struct {
	DefaultVariants int           `yaml:"default_variants" json:"default_variants" jsonschema:"default=3,minimum=1,maximum=10,description=Variants generated when request omits the count"`
	PersistTimeout  time.Duration `yaml:"persist_timeout" json:"persist_timeout" jsonschema:"default=5s,description=Timeout for saving a generation record"`
	HistoryLimit    int           `yaml:"history_limit" json:"history_limit" jsonschema:"default=100,minimum=1,description=Maximum records returned by the captions list"`
}

// CORSConfig holds allowed origins for browser clients
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" json:"allowed_origins" jsonschema:"description=Allowed origins; * allows any"`
}

// Load reads configuration from a YAML file, empty path means defaults only.
// DATABASE_URL and DATABASE_NAME environment variables override database dsn and name.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		// expand environment variables
		expanded := os.ExpandEnv(string(data))

		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		cfg.Database.DSN = dsn
	}
	if name := os.Getenv("DATABASE_NAME"); name != "" {
		cfg.Database.Name = name
	}

	setDefaults(&cfg)

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

func setDefaults(cfg *Config) {
	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:captions.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "captions"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for generator
	if cfg.Generator.DefaultVariants == 0 {
		cfg.Generator.DefaultVariants = 3
	}
	if cfg.Generator.PersistTimeout == 0 {
		cfg.Generator.PersistTimeout = 5 * time.Second
	}
	if cfg.Generator.HistoryLimit == 0 {
		cfg.Generator.HistoryLimit = 100
	}

	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = []string{"*"}
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.Generator.DefaultVariants < 1 || cfg.Generator.DefaultVariants > 10 {
		return fmt.Errorf("generator.default_variants must be between 1 and 10")
	}
	if cfg.Generator.PersistTimeout < 0 {
		return fmt.Errorf("generator.persist_timeout must be non-negative")
	}
	if cfg.Generator.HistoryLimit < 1 {
		return fmt.Errorf("generator.history_limit must be at least 1")
	}
	if cfg.Database.MaxOpenConns < 0 || cfg.Database.MaxIdleConns < 0 {
		return fmt.Errorf("database connection limits must be non-negative")
	}
	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetDatabaseConfig returns database configuration
func (c *Config) GetDatabaseConfig() DatabaseConfig {
	return c.Database
}

// GetGeneratorConfig returns caption generation configuration
func (c *Config) GetGeneratorConfig() GeneratorConfig {
	return c.Generator
}

// GetAllowedOrigins returns CORS allowed origins
func (c *Config) GetAllowedOrigins() []string {
	return c.CORS.AllowedOrigins
}
