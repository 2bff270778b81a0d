package driven

// ConfigStore is a flat key/value view over the settings file. Keys are
// dotted paths such as "llm.provider" or "layout.min_distance".
//
// Typed getters return the zero value when the key is missing or holds a
// value of another type. GetFloat also accepts integers.
type ConfigStore interface {
	Get(key string) (any, bool)
	GetString(key string) string
	GetInt(key string) int
	GetFloat(key string) float64
	GetBool(key string) bool
	GetStringSlice(key string) []string

	// Set updates one key and writes the store through.
	Set(key string, value any) error

	// Save writes the whole store. Load replaces it from storage.
	Save() error
	Load() error

	// Path is where the store lives, for display.
	Path() string
}
