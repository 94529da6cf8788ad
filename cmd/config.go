package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/anipeek/anipeek/color"
	"github.com/anipeek/anipeek/config"
	"github.com/anipeek/anipeek/filesystem"
	"github.com/anipeek/anipeek/icon"
	"github.com/anipeek/anipeek/style"
	"github.com/anipeek/anipeek/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

func completionConfigKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return sortedKeys(), cobra.ShellCompDirectiveNoFileComp
}

func sortedKeys() []string {
	keys := lo.Keys(config.Default)
	slices.Sort(keys)
	return keys
}

// keyArg takes the key from the first argument or the --key flag.
func keyArg(cmd *cobra.Command, args []string) string {
	if len(args) > 0 {
		return args[0]
	}

	if k := lo.Must(cmd.Flags().GetString("key")); k != "" {
		return k
	}

	handleErr(errors.New("key is required as an argument or --key flag"))
	return ""
}

func success(format string, args ...any) {
	fmt.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), fmt.Sprintf(format, args...))
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(configInfoCmd)
	configInfoCmd.Flags().StringSliceP("key", "k", nil, "Limit the output to these keys")
	configInfoCmd.Flags().BoolP("json", "j", false, "Print as JSON")
	_ = configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
	configInfoCmd.SetOut(os.Stdout)

	configCmd.AddCommand(configSetCmd)
	configSetCmd.Flags().StringP("key", "k", "", "Key to set")
	configSetCmd.Flags().StringSliceP("value", "v", nil, "Value to assign")
	_ = configSetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)

	configCmd.AddCommand(configGetCmd)
	configGetCmd.Flags().StringP("key", "k", "", "Key to print")
	_ = configGetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)

	configCmd.AddCommand(configWriteCmd)
	configWriteCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")

	configCmd.AddCommand(configDeleteCmd)

	configCmd.AddCommand(configResetCmd)
	configResetCmd.Flags().StringP("key", "k", "", "Key to reset")
	configResetCmd.Flags().BoolP("all", "a", false, "Reset every key")
	configResetCmd.MarkFlagsMutuallyExclusive("key", "all")
	_ = configResetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration",
}

var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show descriptions and current values of configuration fields",
	Run: func(cmd *cobra.Command, args []string) {
		keys := lo.Must(cmd.Flags().GetStringSlice("key"))
		if len(keys) == 0 {
			keys = sortedKeys()
		}

		fields := lo.Map(keys, func(k string, _ int) config.Field {
			field, err := config.Lookup(k)
			handleErr(err)
			return field
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			lo.Must0(json.NewEncoder(cmd.OutOrStdout()).Encode(lo.ToSlicePtr(fields)))
			return
		}

		for i := range fields {
			if i > 0 {
				cmd.Println()
			}
			cmd.Println(fields[i].Pretty())
		}
	},
}

var configSetCmd = &cobra.Command{
	Use:               "set [key] [value...]",
	Short:             "Set a configuration value",
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		k := keyArg(cmd, args)

		values := lo.Must(cmd.Flags().GetStringSlice("value"))
		if len(args) > 1 {
			values = args[1:]
		}

		v, err := config.Set(k, values)
		handleErr(err)
		success("set %s to %s", style.Fg(color.Purple)(k), style.Fg(color.Yellow)(fmt.Sprint(v)))
	},
}

var configGetCmd = &cobra.Command{
	Use:               "get [key]",
	Short:             "Print a configuration value",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		k := keyArg(cmd, args)
		_, err := config.Lookup(k)
		handleErr(err)
		fmt.Println(viper.Get(k))
	},
}

var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the current configuration to the config file",
	Run: func(cmd *cobra.Command, args []string) {
		path := where.ConfigFile()
		if lo.Must(cmd.Flags().GetBool("force")) {
			if err := filesystem.API().Remove(path); err != nil && !os.IsNotExist(err) {
				handleErr(err)
			}
		}

		handleErr(viper.SafeWriteConfigAs(path))
		success("wrote config to %s", path)
	},
}

var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Delete the config file",
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(filesystem.API().Remove(where.ConfigFile()))
		success("deleted config")
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset configuration values to their defaults",
	PreRun: func(cmd *cobra.Command, args []string) {
		if !cmd.Flags().Changed("key") && !cmd.Flags().Changed("all") {
			handleErr(errors.New("either --key or --all must be set"))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("all")) {
			handleErr(config.ResetKeys())
			success("reset all config values")
			return
		}

		k := lo.Must(cmd.Flags().GetString("key"))
		handleErr(config.ResetKeys(k))
		success("reset %s to default value %s", style.Fg(color.Purple)(k), style.Fg(color.Yellow)(fmt.Sprint(config.Default[k].Value)))
	},
}
