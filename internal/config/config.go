package config

import (
	"os"
	"strconv"
)

// Config holds the chatdash runtime configuration.
type Config struct {
	Port        int    // HTTP port for the upload API
	ScanWindow  int    // max lines inspected during format detection
	PhrasesPath string // optional phrase-catalog override file
	Language    string // phrase-set language tag
	UploadRPM   int    // analyze-request rate limit, requests per minute
	MaxUpload   int64  // largest accepted upload in bytes
}

// Load returns a Config instance with env overrides and defaults.
func Load() Config {
	return Config{
		Port:        envInt("CHATDASH_PORT", 8760),
		ScanWindow:  envInt("CHATDASH_SCAN_WINDOW", 128),
		PhrasesPath: envStr("CHATDASH_PHRASES", ""),
		Language:    envStr("CHATDASH_LANG", "en"),
		UploadRPM:   envInt("CHATDASH_UPLOAD_RPM", 60),
		MaxUpload:   int64(envInt("CHATDASH_MAX_UPLOAD_MB", 64)) << 20,
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
