package redis

import (
	"fmt"
	"time"
)

// Config holds the Redis connection options.
type Config struct {
	Host     string
	Port     int
	Password string
	Database int
	// MinIdleConns is the minimum number of idle connections kept open.
	MinIdleConns int
	// MaxIdleConns is the maximum number of idle connections kept in the pool.
	MaxIdleConns int
	// MaxRetries is the maximum number of retries for failed commands.
	MaxRetries int
	// DialTimeout is the timeout for establishing new connections.
	DialTimeout time.Duration
	// ReadTimeout is the timeout for socket reads.
	ReadTimeout time.Duration
	// WriteTimeout is the timeout for socket writes.
	WriteTimeout time.Duration
}

// DefaultConfig returns a Config with local development defaults.
func DefaultConfig() *Config {
	return &Config{
		Host:         "localhost",
		Port:         6379,
		Database:     0,
		MinIdleConns: 2,
		MaxIdleConns: 10,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}
}

// Validate reports the first invalid connection option.
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("redis host must not be empty")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid redis port: %d", c.Port)
	}
	if c.Database < 0 {
		return fmt.Errorf("invalid redis database: %d", c.Database)
	}
	return nil
}
