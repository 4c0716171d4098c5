package config

import (
	"os"
	"strings"
)

// Get returns the value of the named environment variable, falling
// back when it is unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Require returns the named environment variable and whether it is set.
func Require(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	return v, v != ""
}
