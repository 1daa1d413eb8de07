package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/anisan-cli/anitaku/color"
	"github.com/anisan-cli/anitaku/config"
	"github.com/anisan-cli/anitaku/constant"
	"github.com/anisan-cli/anitaku/filesystem"
	"github.com/anisan-cli/anitaku/icon"
	"github.com/anisan-cli/anitaku/style"
	"github.com/anisan-cli/anitaku/where"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

var (
	success = style.Fg(color.Green)
	keyName = style.Fg(color.Purple)
	value   = style.Fg(color.Yellow)
)

// errUnknownKey names the registered key closest to name.
func errUnknownKey(name string) error {
	closest := lo.MinBy(lo.Keys(config.Default), func(a, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
	return fmt.Errorf("unknown key %s, did you mean %s?", style.Fg(color.Red)(name), value(closest))
}

// lookupField returns the registered field for name.
func lookupField(name string) (config.Field, error) {
	field, ok := config.Default[name]
	if !ok {
		return config.Field{}, errUnknownKey(name)
	}
	return field, nil
}

// sortedFields returns every registered field ordered by key.
func sortedFields() []config.Field {
	fields := lo.Values(config.Default)
	slices.SortFunc(fields, func(a, b config.Field) int {
		return strings.Compare(a.Key, b.Key)
	})
	return fields
}

// parseValue converts raw CLI values to the type of field's default.
func parseValue(field config.Field, raw []string) (any, error) {
	switch field.Value.(type) {
	case string:
		return strings.Join(raw, " "), nil
	case int:
		n, err := strconv.Atoi(raw[0])
		if err != nil {
			return nil, fmt.Errorf("invalid integer value for %s: %s", field.Key, raw[0])
		}
		return n, nil
	case bool:
		b, err := strconv.ParseBool(raw[0])
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value for %s: %s", field.Key, raw[0])
		}
		return b, nil
	case []string:
		return raw, nil
	default:
		return nil, fmt.Errorf("unsupported type of %s", field.Key)
	}
}

// writeConfig persists viper's state, creating the file when missing.
func writeConfig() error {
	err := viper.WriteConfig()
	if errors.As(err, new(viper.ConfigFileNotFoundError)) {
		return viper.SafeWriteConfig()
	}
	return err
}

// configFile is the path of the TOML config file.
func configFile() string {
	return filepath.Join(where.Config(), constant.Anitaku+".toml")
}

// keyArg reads the key from the first argument or the --key flag.
func keyArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if k, _ := cmd.Flags().GetString("key"); k != "" {
		return k, nil
	}
	return "", errors.New("key is required as an argument or --key flag")
}

func completionConfigKeys(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return lo.Keys(config.Default), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInfoCmd, configGetCmd, configSetCmd, configResetCmd, configWriteCmd, configDeleteCmd)

	configInfoCmd.Flags().StringSliceP("key", "k", []string{}, "Only show these keys")
	configInfoCmd.Flags().BoolP("json", "j", false, "Print the fields as JSON")
	_ = configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)

	configGetCmd.Flags().StringP("key", "k", "", "Key to read")
	_ = configGetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)

	configSetCmd.Flags().StringP("key", "k", "", "Key to update")
	configSetCmd.Flags().StringSliceP("value", "v", []string{}, "Value to assign")
	_ = configSetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)

	configResetCmd.Flags().StringP("key", "k", "", "Key to restore")
	configResetCmd.Flags().BoolP("all", "a", false, "Restore every key")
	configResetCmd.MarkFlagsMutuallyExclusive("key", "all")
	_ = configResetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)

	configWriteCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change configuration",
}

var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe configuration keys, their defaults and current values",
	Run: func(cmd *cobra.Command, args []string) {
		fields := sortedFields()

		if keys := lo.Must(cmd.Flags().GetStringSlice("key")); len(keys) > 0 {
			fields = make([]config.Field, 0, len(keys))
			for _, k := range keys {
				field, err := lookupField(k)
				handleErr(err)
				fields = append(fields, field)
			}
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(lo.ToSlicePtr(fields)))
			return
		}

		for i := range fields {
			if i > 0 {
				cmd.Println()
				cmd.Println()
			}
			cmd.Print(fields[i].Pretty())
		}
		cmd.Println()
	},
}

var configGetCmd = &cobra.Command{
	Use:               "get [key]",
	Short:             "Print the current value of a key",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		name, err := keyArg(cmd, args)
		handleErr(err)

		_, err = lookupField(name)
		handleErr(err)

		cmd.Println(viper.Get(name))
	},
}

var configSetCmd = &cobra.Command{
	Use:               "set [key] [value...]",
	Short:             "Set a key and save it to the config file",
	Example:           "  anitaku config set fetch.proxy \"\"\n  anitaku config set output.format text",
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		name, err := keyArg(cmd, args)
		handleErr(err)

		field, err := lookupField(name)
		handleErr(err)

		raw := lo.Must(cmd.Flags().GetStringSlice("value"))
		if len(args) > 1 {
			raw = args[1:]
		}
		if len(raw) == 0 {
			handleErr(errors.New("value is required as an argument or --value flag"))
		}

		parsed, err := parseValue(field, raw)
		handleErr(err)

		viper.Set(name, parsed)
		handleErr(writeConfig())

		cmd.Printf("%s set %s to %s\n", success(icon.Get(icon.Success)), keyName(name), value(fmt.Sprint(parsed)))
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore keys to their defaults",
	PreRun: func(cmd *cobra.Command, args []string) {
		if !cmd.Flags().Changed("key") && !cmd.Flags().Changed("all") {
			handleErr(errors.New("either --key or --all must be set"))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("all")) {
			for name, field := range config.Default {
				viper.Set(name, field.Value)
			}
			handleErr(writeConfig())
			cmd.Printf("%s reset all config values\n", success(icon.Get(icon.Success)))
			return
		}

		name := lo.Must(cmd.Flags().GetString("key"))
		field, err := lookupField(name)
		handleErr(err)

		viper.Set(name, field.Value)
		handleErr(writeConfig())
		cmd.Printf("%s reset %s to %s\n", success(icon.Get(icon.Success)), keyName(name), value(fmt.Sprint(field.Value)))
	},
}

var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the current configuration to " + constant.Anitaku + ".toml",
	Run: func(cmd *cobra.Command, args []string) {
		path := configFile()

		if lo.Must(cmd.Flags().GetBool("force")) {
			if exists, _ := filesystem.API().Exists(path); exists {
				handleErr(filesystem.API().Remove(path))
			}
		}

		handleErr(viper.SafeWriteConfig())
		cmd.Printf("%s wrote config to %s\n", success(icon.Get(icon.Success)), path)
	},
}

var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Delete the config file",
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(filesystem.API().Remove(configFile()))
		cmd.Printf("%s deleted config\n", success(icon.Get(icon.Success)))
	},
}
