package uikit

import (
	"io"
	"os"
	"strings"

	"github.com/BrandonKowalski/uikit/pkg/uikit/logging"
	"github.com/spf13/viper"
)

// Options configures the application context built by New.
type Options struct {
	LogPath           string         `mapstructure:"log_path"`           // Full path for the log file including filename (creates parent directories)
	LogLevel          string         `mapstructure:"log_level"`          // "debug", "info", "warn" or "error"
	LogFormat         logging.Format `mapstructure:"log_format"`         // "json" (default) or "text"
	Locale            string         `mapstructure:"locale"`             // Accept-Language style preference list, e.g. "es-MX, en;q=0.5"
	TranslationFiles  []string       `mapstructure:"translation_files"`  // Extra TOML or YAML message files loaded over the built-in ones
	SettingsPath      string         `mapstructure:"settings_path"`      // Onboarding flags file; empty keeps flags in memory
	OnboardingVersion string         `mapstructure:"onboarding_version"` // Version of the onboarding flow shipped with this build

	LogOutput io.Writer `mapstructure:"-"` // Console writer, defaults to os.Stdout
}

// DefaultOptions returns the options used for keys that are not configured.
func DefaultOptions() Options {
	return Options{
		LogLevel:          "error",
		LogFormat:         logging.FormatJSON,
		Locale:            "en",
		OnboardingVersion: DefaultOnboardingVersion,
	}
}

// LoadOptions reads Options from a TOML file and UIKIT_ environment
// variables, with the environment taking precedence. An empty path falls
// back to $UIKIT_CONFIG; when neither is set only defaults and environment
// apply. A named file that cannot be read is an error.
func LoadOptions(path string) (Options, error) {
	def := DefaultOptions()

	v := viper.New()
	v.SetDefault("log_path", def.LogPath)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_format", string(def.LogFormat))
	v.SetDefault("locale", def.Locale)
	v.SetDefault("translation_files", []string{})
	v.SetDefault("settings_path", def.SettingsPath)
	v.SetDefault("onboarding_version", def.OnboardingVersion)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv(ConfigEnvVar)
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Options{}, NewConfigError("read_options", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var o Options
	if err := v.Unmarshal(&o); err != nil {
		return Options{}, NewConfigError("decode_options", err)
	}
	return o, nil
}
