// Package config loads the recognized options of spec §6 from a YAML file,
// grounded on niceyeti-tabular's reinforcement.FromYaml viper.New() +
// Unmarshal pattern.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config is the recognized option set (spec §6 "Configuration knobs").
type Config struct {
	Iterations   int     `mapstructure:"iterations" yaml:"iterations"`
	ExplorationC float64 `mapstructure:"exploration_c" yaml:"exploration_c"`
	RolloutTurns int     `mapstructure:"rollout_turns" yaml:"rollout_turns"`
	DefaultLevel int     `mapstructure:"default_level" yaml:"default_level"`
	TeamSize     int     `mapstructure:"team_size" yaml:"team_size"`
	EnablePruner bool    `mapstructure:"enable_pruner" yaml:"enable_pruner"`
	OracleURL    string  `mapstructure:"oracle_url" yaml:"oracle_url"`
}

// Default returns the documented defaults without touching the filesystem:
// iterations=100, exploration_c=1.4, rollout_turns=1, default_level=80,
// team_size=6, enable_pruner=false.
func Default() Config {
	return Config{
		Iterations:   100,
		ExplorationC: 1.4,
		RolloutTurns: 1,
		DefaultLevel: 80,
		TeamSize:     6,
		EnablePruner: false,
	}
}

// Load reads a YAML file of the recognized options at path, starting from
// Default() and overwriting whatever keys the file sets.
func Load(path string) (Config, error) {
	cfg := Default()

	vp := viper.New()
	vp.SetConfigName(filepathBase(path))
	vp.SetConfigType("yaml")
	vp.AddConfigPath(filepathDir(path))
	if err := vp.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := vp.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	return cfg, nil
}

// YAML renders cfg back to YAML, mirroring the teacher pack's own
// yaml.Marshal(outerConfig.Def) round-trip step — useful for logging the
// effective configuration an agent was started with.
func (cfg Config) YAML() ([]byte, error) {
	return yaml.Marshal(cfg)
}

func filepathBase(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}

func filepathDir(path string) string {
	return filepath.Dir(path)
}
