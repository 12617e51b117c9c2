package config

import (
	"time"

	"github.com/logsnack/logsnack/internal/domain/port/core"
)

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
}

// LoggerConfig contains logging facade settings
type LoggerConfig struct {
	// Level is the minimum severity dispatched to any sink. Empty means
	// "derive from build mode": debug in development, info otherwise.
	Level string `mapstructure:"level"`
	// Sinks is the ordered sink list: console, debug, file, zap, memory,
	// database. Order here is dispatch order.
	Sinks []string `mapstructure:"sinks"`
	// FilePath is where the file sink writes
	FilePath string `mapstructure:"filePath"`
	// MemoryCapacity bounds the memory sink's ring
	MemoryCapacity int `mapstructure:"memoryCapacity"`
	// FatalOnBug appends the fatal sink after all configured sinks
	FatalOnBug bool `mapstructure:"fatalOnBug"`
}

// Threshold resolves the configured minimum level, deriving it from the
// build mode when the config doesn't pin one.
func (c *Config) Threshold() (core.Level, error) {
	if c.Logger.Level == "" {
		if c.Environment == Development {
			return core.LevelDebug, nil
		}
		return core.LevelInfo, nil
	}
	return core.ParseLevel(c.Logger.Level)
}
