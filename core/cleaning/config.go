package cleaning

import "time"

// Config holds tunables for the cleaning engine surfaces.
type Config struct {
	// SessionTTLMinutes is how long an idle session survives before the
	// session manager discards it.
	SessionTTLMinutes int `mapstructure:"session_ttl_minutes" default:"120"`
	// DictionaryCacheTTLSeconds is how long a loaded dictionary is reused
	// before the alias store is consulted again.
	DictionaryCacheTTLSeconds int `mapstructure:"dictionary_cache_ttl_seconds" default:"60"`
	// SearchDebounceMillis is the client-facing debounce interval for the
	// product-name search; the server reports it so UIs agree on pacing.
	SearchDebounceMillis int `mapstructure:"search_debounce_millis" default:"300"`
}

// SessionTTL returns the idle session lifetime.
func (c Config) SessionTTL() time.Duration {
	if c.SessionTTLMinutes <= 0 {
		return 2 * time.Hour
	}
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

// DictionaryCacheTTL returns the dictionary cache lifetime.
func (c Config) DictionaryCacheTTL() time.Duration {
	if c.DictionaryCacheTTLSeconds < 0 {
		return 0
	}
	return time.Duration(c.DictionaryCacheTTLSeconds) * time.Second
}
