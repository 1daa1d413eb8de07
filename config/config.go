// Package config wires defaults, environment variables and the TOML config file into viper.
package config

import (
	"strings"

	"github.com/anisan-cli/anitaku/constant"
	"github.com/anisan-cli/anitaku/filesystem"
	"github.com/anisan-cli/anitaku/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer maps config keys onto environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup registers defaults, binds ANITAKU_* variables and reads anitaku.toml if present.
func Setup() error {
	viper.SetConfigName(constant.Anitaku)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Anitaku)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}

	return nil
}
