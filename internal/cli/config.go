package cli

import "os"

// Config holds CLI configuration
type Config struct {
	ServerURL string
	Username  string
	Password  string
	Output    string
	Verbose   bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("POKERLEDGER_SERVER", "http://localhost:8080"),
		Username:  os.Getenv("POKERLEDGER_USER"),
		Password:  os.Getenv("POKERLEDGER_PASS"),
		Output:    "text",
		Verbose:   false,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
