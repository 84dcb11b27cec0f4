package store

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the backend and the on-disk draft store.
type Config interface {
	BasePath() string
	Backend() string
}

// LoadConfig reads the .callsheet config file, honoring CALLSHEET_*
// environment overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.callsheet.db")
	viper.SetDefault("backend", "http://localhost:8001")
	viper.SetConfigName(".callsheet") // .yaml is implicit
	viper.SetEnvPrefix("CALLSHEET")
	viper.AutomaticEnv()

	if override := os.Getenv("CALLSHEET_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("expand draft path: %w", err)
	}

	return &fileConfig{Path: path, BackendURL: viper.GetString("backend")}, nil
}

type fileConfig struct {
	Path       string `json:"path"`
	BackendURL string `json:"backend"`
}

func (f *fileConfig) BasePath() string { return f.Path }
func (f *fileConfig) Backend() string  { return f.BackendURL }
