package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	apperrors "redesocial/backend/pkg/errors"
)

// Config holds all application configuration
type Config struct {
	// App
	Port string `yaml:"port"`
	Env  string `yaml:"env"`

	// Neo4j
	Neo4jURI          string `yaml:"neo4j_uri"`
	Neo4jUser         string `yaml:"neo4j_user"`
	Neo4jPassword     string `yaml:"neo4j_password"`
	Neo4jDatabase     string `yaml:"neo4j_database"` // empty selects the server default
	Neo4jMaxPoolSize  int    `yaml:"neo4j_max_pool_size"`
	Neo4jEnsureSchema bool   `yaml:"neo4j_ensure_schema"`
}

// Default returns the configuration used when nothing else is set
func Default() *Config {
	return &Config{
		Port:             "8080",
		Env:              "development",
		Neo4jURI:         "bolt://localhost:7687",
		Neo4jUser:        "neo4j",
		Neo4jPassword:    "password",
		Neo4jMaxPoolSize: 10,
	}
}

// Load reads configuration from an optional YAML file named by
// REDESOCIAL_CONFIG, then from environment variables, which take precedence.
func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	cfg := Default()
	if path := os.Getenv("REDESOCIAL_CONFIG"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Env = getEnv("ENV", cfg.Env)
	cfg.Neo4jURI = getEnv("NEO4J_URI", cfg.Neo4jURI)
	cfg.Neo4jUser = getEnv("NEO4J_USER", cfg.Neo4jUser)
	cfg.Neo4jPassword = getEnv("NEO4J_PASSWORD", cfg.Neo4jPassword)
	cfg.Neo4jDatabase = getEnv("NEO4J_DATABASE", cfg.Neo4jDatabase)
	cfg.Neo4jMaxPoolSize = getEnvInt("NEO4J_MAX_POOL_SIZE", cfg.Neo4jMaxPoolSize)
	cfg.Neo4jEnsureSchema = getEnvBool("NEO4J_ENSURE_SCHEMA", cfg.Neo4jEnsureSchema)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// Validate checks that required configuration values are set
func (c *Config) Validate() error {
	if c.Neo4jURI == "" {
		return apperrors.NewConfigMissingRequired("NEO4J_URI")
	}
	if c.Neo4jUser == "" {
		return apperrors.NewConfigMissingRequired("NEO4J_USER")
	}
	if c.Neo4jPassword == "" {
		return apperrors.NewConfigMissingRequired("NEO4J_PASSWORD")
	}
	if c.Neo4jMaxPoolSize < 0 {
		return apperrors.NewConfigValidationFailed("NEO4J_MAX_POOL_SIZE", "must not be negative")
	}
	if c.Env != "development" && c.Env != "production" {
		return apperrors.NewConfigValidationFailed("ENV", "must be development or production")
	}
	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	}
	return defaultValue
}
