package config

const (
	defaultConfigPath           = "~/.config/pvrank/config.toml"
	defaultDataDir              = "~/.local/share/pvrank/data"
	defaultOutputPath           = "~/.local/share/pvrank/dist/pokemon-data.json"
	defaultStateDir             = "~/.local/share/pvrank/state"
	defaultSourceBaseURL        = "https://raw.githubusercontent.com/pvpoke/pvpoke/master"
	defaultSourceTimeoutSeconds = 60
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:    defaultDataDir,
			OutputPath: defaultOutputPath,
			StateDir:   defaultStateDir,
		},
		Source: Source{
			BaseURL:        defaultSourceBaseURL,
			TimeoutSeconds: defaultSourceTimeoutSeconds,
		},
		History: History{
			Enabled: true,
		},
		Logging: Logging{
			Format: "console",
			Level:  "info",
		},
	}
}
