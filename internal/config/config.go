package config

// Config holds the application configuration.
type Config struct {
	Theme   string        `yaml:"theme"`
	Dice    int           `yaml:"dice"`
	Sides   int           `yaml:"sides"`
	Verbose bool          `yaml:"verbose"`
	Seed    int64         `yaml:"seed"`
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig controls the roll log. Logging is off while File is empty
// because the terminal belongs to the UI.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Theme: "catppuccin-mocha",
		Dice:  2,
		Sides: 6,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}
