package config

import "os"

// Settings are the two values consulted while handling a request.
type Settings struct {
	APIKey      string
	AllowOrigin string
}

// Ready reports whether an upstream credential is configured.
func (s Settings) Ready() bool {
	return s.APIKey != ""
}

// Source yields the current settings. Implementations must be safe for
// concurrent use and must not mutate shared state.
type Source interface {
	Settings() Settings
}

// EnvSource reads the environment on every call, using Fallback for
// variables that are unset or empty.
type EnvSource struct {
	Fallback Settings
}

func (s EnvSource) Settings() Settings {
	return Settings{
		APIKey:      envOr(EnvAPIKey, s.Fallback.APIKey),
		AllowOrigin: envOr(EnvAllowOrigin, s.Fallback.AllowOrigin),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Static is a fixed Source.
type Static Settings

func (s Static) Settings() Settings {
	return Settings(s)
}
