package source

// Config holds configuration for the default game data source.
type Config struct {
	// Mode selects where tables come from: "local" or "remote".
	Mode string `mapstructure:"mode" default:"local"`
	// Dir is the local gamedata directory used by file-based commands.
	Dir string `mapstructure:"dir" default:"gamedata"`
	// Region selects the localized tree inside a remote bucket.
	Region string `mapstructure:"region" default:"en_US"`
}
