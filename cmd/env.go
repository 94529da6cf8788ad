package cmd

import (
	"os"

	"github.com/anipeek/anipeek/color"
	"github.com/anipeek/anipeek/config"
	"github.com/anipeek/anipeek/style"
	"github.com/anipeek/anipeek/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Show only variables that are set")
	envCmd.Flags().BoolP("unset-only", "u", false, "Show only variables that are unset")
	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
	envCmd.SetOut(os.Stdout)
}

// envNames lists every variable anipeek reads, sorted.
func envNames() []string {
	names := lo.Map(config.EnvExposed, func(k string, _ int) string {
		field := config.Default[k]
		return field.Env()
	})
	names = append(names, where.EnvConfigPath)
	slices.Sort(names)
	return names
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show supported environment variables and their values",
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))
		name := style.New().Bold(true).Foreground(color.Purple).Render

		for _, env := range envNames() {
			value, set := os.LookupEnv(env)
			if (setOnly && !set) || (unsetOnly && set) {
				continue
			}

			if set {
				cmd.Printf("%s=%s\n", name(env), style.Fg(color.Green)(value))
			} else {
				cmd.Printf("%s=%s\n", name(env), style.Fg(color.Red)("unset"))
			}
		}
	},
}
