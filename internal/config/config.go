package config

import "os"

type Config struct {
	LogLevel string
}

func New() *Config {
	return &Config{
		LogLevel: getLogLevel(os.Getenv("LOGLEVEL")),
	}
}

func getLogLevel(level string) string {
	if level == "" {
		return "warn"
	}
	return level
}
