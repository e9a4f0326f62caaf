package driven

// ConfigStore provides application configuration access.
// Keys use dot notation, e.g. "history.backend" or "google.client_id".
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	Get(key string) (any, bool)

	// GetString retrieves a string value, empty if unset.
	GetString(key string) string

	// GetBool retrieves a boolean value, false if unset.
	GetBool(key string) bool

	// Set stores a value and persists immediately.
	Set(key string, value any) error

	// Path returns the location of the backing configuration file.
	Path() string
}
