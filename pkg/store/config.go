package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config resolves where the store keeps its data.
type Config interface {
	BasePath() string
}

// LoadConfig reads the .fieldlog config (current directory or home), with
// FIELDLOG_* environment overrides. The data path defaults to ~/.fieldlog.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.fieldlog.db")
	viper.SetConfigName(".fieldlog") // .yaml is implicit
	viper.SetEnvPrefix("FIELDLOG")
	viper.AutomaticEnv()

	if override := os.Getenv("FIELDLOG_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
