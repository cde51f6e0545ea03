package config

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Exists reports whether a config file is present at path.
func Exists(fs afero.Fs, path string) (bool, error) {
	ok, err := afero.Exists(fs, path)
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	return ok, nil
}

// Load reads an existing config.env back into Settings.
// The file is parsed with viper's env codec, the same format the scripts source.
func Load(fs afero.Fs, path string) (Settings, error) {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigFile(path)
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		return Settings{}, fmt.Errorf("read config %s: %w", path, err)
	}

	return Settings{
		WebhookURL:    v.GetString(KeyWebhookURL),
		ClaudeModel:   v.GetString(KeyClaudeModel),
		OpencodeModel: v.GetString(KeyOpencodeModel),
	}, nil
}
