package config

import (
	"os"
	"strconv"
)

type Config struct {
	ServerPort  string
	MaxFileSize int64
}

func LoadConfig() *Config {
	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	maxFileSizeMB := int64(10)
	if v := os.Getenv("MAX_FILE_SIZE_MB"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			maxFileSizeMB = n
		}
	}

	return &Config{
		ServerPort:  serverPort,
		MaxFileSize: maxFileSizeMB * 1024 * 1024,
	}
}
