package config

// PreferencesConfig names the persisted client preferences
type PreferencesConfig struct {
	AppName string // gdata application namespace

	// NetworkEffectKey stores "true" or "false"; a missing item means enabled
	NetworkEffectKey     string
	NetworkEffectDefault bool
}

// Preferences is the global preference configuration
var Preferences PreferencesConfig

func init() {
	Preferences = PreferencesConfig{
		AppName:              "netfx",
		NetworkEffectKey:     "network-effect",
		NetworkEffectDefault: true,
	}
}
