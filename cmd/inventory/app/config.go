package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/agentstation/inventory/internal/cmd/output"
	"github.com/agentstation/inventory/pkg/constants"
	"github.com/agentstation/inventory/pkg/errors"
	"github.com/agentstation/inventory/pkg/store"
)

// Config holds the application configuration loaded from flags, the
// environment, .env files, and the config file.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// ConfigFile is the config file actually read, if any.
	ConfigFile string

	// Store
	StorePath   string
	StoreFormat string

	// Logging
	LogLevel  string
	LogFormat string
	LogOutput string
}

// flagKeys maps config keys to the persistent flags that override them.
var flagKeys = map[string]string{
	"config":       "config",
	"verbose":      "verbose",
	"quiet":        "quiet",
	"no_color":     "no-color",
	"format":       "format",
	"file":         "file",
	"store_format": "store-format",
	"log_level":    "log-level",
}

// LoadConfig loads configuration in order of precedence:
//  1. Command-line flags (when flags is non-nil)
//  2. INVENTORY_* environment variables
//  3. .env and .env.local files
//  4. Config file (--config, else .inventory.yaml in $HOME or cwd)
//  5. Defaults
func LoadConfig(flags *pflag.FlagSet) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if flags != nil {
		for key, name := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, errors.NewConfigError("flags", "binding --"+name, err)
			}
		}
	}

	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	config := &Config{
		Verbose:     v.GetBool("verbose"),
		Quiet:       v.GetBool("quiet"),
		NoColor:     v.GetBool("no_color"),
		Format:      v.GetString("format"),
		ConfigFile:  v.ConfigFileUsed(),
		StorePath:   v.GetString("file"),
		StoreFormat: v.GetString("store_format"),
		LogLevel:    v.GetString("log_level"),
		LogFormat:   v.GetString("log_format"),
		LogOutput:   v.GetString("log_output"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	if c.StorePath == "" {
		return errors.NewConfigError("store", "file path cannot be empty", nil)
	}
	if _, err := store.ParseFormat(c.StoreFormat); err != nil {
		return errors.NewConfigError("store", err.Error(), err)
	}
	if _, err := output.ParseFormat(c.Format); err != nil {
		return errors.NewConfigError("output", err.Error(), err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("file", constants.DefaultStoreFile)
	v.SetDefault("store_format", "auto")
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")
}

// readConfigFile reads an explicit config file, or searches the standard
// locations. A missing file in the search locations is not an error.
func readConfigFile(v *viper.Viper) error {
	if configFile := v.GetString("config"); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return errors.NewConfigError("config", "reading "+configFile, err)
		}
		return nil
	}

	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	v.AddConfigPath(".")
	v.SetConfigType("yaml")
	v.SetConfigName(constants.ConfigName)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return errors.NewConfigError("config", "reading config file", err)
	}
	return nil
}

// loadEnvFiles loads .env then .env.local. godotenv never overrides
// variables that are already set.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}
