package butdiff

// Config holds user settings for the command-line tools.
type Config struct {
	// MaxPatchBytes is the patch size above which a file is reported as
	// TooLarge. Zero disables the limit.
	MaxPatchBytes int       `yaml:"max_patch_bytes"`
	Theme         string    `yaml:"theme"` // "dark" or "light"

	// Highlight colors content by language where the file type is known.
	Highlight bool `yaml:"highlight"`

	Log LogConfig `yaml:"log"`
}

// LogConfig selects the log level and output format.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		MaxPatchBytes: 5 << 20,
		Theme:         "dark",
		Highlight:     true,
		Log:           LogConfig{Level: "warn", Format: "text"},
	}
}
