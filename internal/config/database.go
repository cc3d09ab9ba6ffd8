package config

import (
	"os"
	"sync"
)

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	// TimestampFile backs the timestamp store when no database is configured.
	TimestampFile string
}

var (
	dbConfig *DBConfig
	dbOnce   sync.Once
)

func LoadDBConfig() *DBConfig {
	dbOnce.Do(func() {
		tsFile := os.Getenv("TIMESTAMP_FILE")
		if tsFile == "" {
			tsFile = "candidate_ts_map.json"
		}
		dbConfig = &DBConfig{
			Host:          os.Getenv("DB_HOST"),
			Port:          os.Getenv("DB_PORT"),
			User:          os.Getenv("DB_USER"),
			Password:      os.Getenv("DB_PASSWORD"),
			Name:          os.Getenv("DB_NAME"),
			SSLMode:       os.Getenv("DB_SSLMODE"),
			TimestampFile: tsFile,
		}
	})
	return dbConfig
}

// Enabled reports whether a database was configured at all. The timestamp
// store falls back to its file backend otherwise.
func (c *DBConfig) Enabled() bool {
	return c.Host != ""
}
