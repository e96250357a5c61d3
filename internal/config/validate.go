package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMin <= 0 {
		return fmt.Errorf("rate_limit.requests_per_min must be > 0 (got %d)", c.RateLimit.RequestsPerMin)
	}

	if c.Notification.DefaultLimit <= 0 {
		return fmt.Errorf("notification.default_limit must be > 0 (got %d)", c.Notification.DefaultLimit)
	}

	if err := c.Sweep.validate(); err != nil {
		return fmt.Errorf("sweep: %w", err)
	}

	return nil
}

func (s *SweepConfig) validate() error {
	if s.Hour < 0 || s.Hour > 23 {
		return fmt.Errorf("hour must be in 0..23 (got %d)", s.Hour)
	}
	if s.Minute < 0 || s.Minute > 59 {
		return fmt.Errorf("minute must be in 0..59 (got %d)", s.Minute)
	}

	loc, err := ParseLocation(s.Timezone)
	if err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	s.Location = loc

	return nil
}

// ParseLocation resolves an IANA zone name. Empty and "Local" mean the
// process's local zone.
func ParseLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid zone %q: %w", name, err)
	}
	return loc, nil
}
