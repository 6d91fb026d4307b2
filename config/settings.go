package config

// SettingsConfig describes where player settings are persisted and the
// limits the settings keys may take.
type SettingsConfig struct {
	AppName        string
	Key            string
	MinSensitivity float64
	MaxSensitivity float64
}

// Settings is the global persisted-settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName:        "bonebrawl",
		Key:            "settings",
		MinSensitivity: 0.01,
		MaxSensitivity: 2.0,
	}
}
