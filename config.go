package fuzzy

// Config contains all configuration data needed for an Engine.
type Config struct {
	// Defuzzification method. Defaults to Centroid.
	Defuzzification DefuzzMethod
	// ClipToBounds clamps every crisp input into the universe of its variable
	// before fuzzification. By default out-of-range inputs are evaluated as is.
	ClipToBounds bool
}

// populateConfig populates fields in the Config with their default values, if none are set
func populateConfig(config *Config) *Config {
	if config == nil {
		config = &Config{}
	}
	method := config.Defuzzification
	if method == "" {
		method = Centroid
	}
	return &Config{
		Defuzzification: method,
		ClipToBounds:    config.ClipToBounds,
	}
}
