package config

import (
	"os"
	"time"
)

type Config struct {
	ListenAddr   string
	SheetURL     string
	FetchTimeout time.Duration
	IconsPath    string
	LogLevel     string
	LogFile      string
}

func Load() *Config {
	return &Config{
		ListenAddr:   getEnv("LISTEN_ADDR", ":8080"),
		SheetURL:     getEnv("SHEET_URL", ""),
		FetchTimeout: getDuration("FETCH_TIMEOUT", 15*time.Second),
		IconsPath:    getEnv("ICONS_PATH", ""),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFile:      getEnv("LOG_FILE", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	val, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}
	return d
}
