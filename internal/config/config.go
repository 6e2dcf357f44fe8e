package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/plugsmith-labs/plugsmith/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Well-known configuration keys.
const (
	// KeyVerbose enables debug logging.
	KeyVerbose = "verbose"

	// KeyDefaultCategory preselects a plugin category in the wizard.
	KeyDefaultCategory = "defaults.category"

	// KeyDefaultTyping preselects the static-typing answer in the wizard.
	KeyDefaultTyping = "defaults.static_typing"
)

// Dir returns the path to the PlugSmith config directory (~/.plugsmith/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.plugsmith/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Load initializes Viper to read from the config file and environment.
// Every key can be overridden with a PLUGSMITH_* environment variable,
// with dots in nested keys mapped to underscores.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(KeyDefaultTyping, true)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// GetBool returns a boolean config value by key.
func GetBool(key string) bool {
	return viper.GetBool(key)
}
