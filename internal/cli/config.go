package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/simplelist/internal/paths"
	"github.com/mesh-intelligence/simplelist/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyMode    = "mode"
	cfgKeyFormat  = "format"
	cfgKeyJournal = "journal"
)

// loadConfig reads config.yaml from the resolved config directory and
// binds the --mode and --format flags over it. A missing config.yaml is
// not an error.
func loadConfig(cmd *cobra.Command) (*viper.Viper, error) {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyMode, types.DefaultMode)
	v.SetDefault(cfgKeyFormat, types.DefaultFormat)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	for _, key := range []string{cfgKeyMode, cfgKeyFormat} {
		if err := v.BindPFlag(key, cmd.Root().PersistentFlags().Lookup(key)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// runConfig builds the validated run configuration from settings. The
// journal path is resolved separately so the flag > config > env order
// holds.
func runConfig() (types.Config, error) {
	cfg := types.Config{
		Mode:   settings.GetString(cfgKeyMode),
		Format: settings.GetString(cfgKeyFormat),
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration (mode %q, format %q): %w", cfg.Mode, cfg.Format, err)
	}

	journal, err := paths.ResolveJournalPath(flags.journal, settings.GetString(cfgKeyJournal))
	if err != nil {
		return cfg, fmt.Errorf("resolve journal path: %w", err)
	}
	cfg.Journal = journal
	return cfg.WithDefaults(), nil
}
