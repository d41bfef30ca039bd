package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path must not be empty")
	}
	if c.Database.BusyTimeout <= 0 {
		return fmt.Errorf("database.busy_timeout must be > 0 (got %v)", c.Database.BusyTimeout)
	}
	if !c.KV.InMemory && c.KV.Dir == "" {
		return fmt.Errorf("kv.dir must not be empty unless kv.in_memory is set")
	}
	if c.Session.RestSeconds <= 0 {
		return fmt.Errorf("session.rest_seconds must be > 0 (got %d)", c.Session.RestSeconds)
	}
	if c.Session.RestGrace < 0 {
		return fmt.Errorf("session.rest_grace must be >= 0 (got %v)", c.Session.RestGrace)
	}
	return nil
}
