package validator

import "os"

// Config is a configuration for the validator application
type Config struct {
	HTTPAddr string
	// PolicyPreset selects the rule table: "canonical" or "legacy".
	PolicyPreset string
}

func DefaultConfig() *Config {
	return &Config{
		HTTPAddr:     "localhost:10000",
		PolicyPreset: "canonical",
	}
}

// FromEnv builds a Config from environment variables, keeping defaults for
// anything unset.
func FromEnv() *Config {
	cfg := DefaultConfig()
	cfg.HTTPAddr = getenv("HTTP_ADDR", cfg.HTTPAddr)
	cfg.PolicyPreset = getenv("POLICY_PRESET", cfg.PolicyPreset)
	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
