package cmd

import (
	"os"

	"github.com/anipeek/anipeek/style"
	"github.com/anipeek/anipeek/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

type location struct {
	flag  string
	short mo.Option[string]
	label string
	path  func() string
}

var locations = []location{
	{"config", mo.Some("c"), "Config", where.Config},
	{"config-file", mo.None[string](), "Config file", where.ConfigFile},
	{"logs", mo.Some("l"), "Logs", where.Logs},
	{"cache", mo.Some("C"), "Cache", where.Cache},
	{"history", mo.None[string](), "Recent lookups", where.History},
}

func init() {
	rootCmd.AddCommand(whereCmd)
	whereCmd.SetOut(os.Stdout)

	for _, l := range locations {
		help := "Print only the " + l.label + " path"
		if short, ok := l.short.Get(); ok {
			whereCmd.Flags().BoolP(l.flag, short, false, help)
		} else {
			whereCmd.Flags().Bool(l.flag, false, help)
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(locations, func(l location, _ int) string {
		return l.flag
	})...)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show the paths anipeek reads and writes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if l, ok := lo.Find(locations, func(l location) bool {
			return lo.Must(cmd.Flags().GetBool(l.flag))
		}); ok {
			cmd.Println(l.path())
			return
		}

		width := lo.Max(lo.Map(locations, func(l location, _ int) int {
			return len(l.label)
		})) + 2

		for _, l := range locations {
			cmd.Printf("%s%s\n", style.Label(l.label, width), l.path())
		}
	},
}
