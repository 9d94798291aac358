package models

// Config carries per-install settings for a single feature install call
// (app name, organization id, target platforms, ...). Keys are
// feature-specific; unrecognized keys are ignored. Templates read keys
// directly and apply their own defaults.
type Config map[string]string

// Clone returns a copy so a recorded config cannot be mutated by the caller
func (c Config) Clone() Config {
	if c == nil {
		return nil
	}
	clone := make(Config, len(c))
	for k, v := range c {
		clone[k] = v
	}
	return clone
}
