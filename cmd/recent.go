package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/anipeek/anipeek/color"
	"github.com/anipeek/anipeek/history"
	"github.com/anipeek/anipeek/icon"
	"github.com/anipeek/anipeek/style"
	"github.com/anipeek/anipeek/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(recentCmd)
	recentCmd.Flags().BoolP("ids", "i", false, "Print only the ids")
	recentCmd.SetOut(os.Stdout)
}

var recentCmd = &cobra.Command{
	Use:     "recent [filter]",
	Short:   "List recently looked up entries",
	Example: "  anipeek recent\n  anipeek recent bebop",
	Args:    cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		entries, err := history.Filter(strings.Join(args, " "))
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("ids")) {
			for _, e := range entries {
				cmd.Println(e.ID)
			}
			return
		}

		if len(entries) == 0 {
			cmd.Printf("%s No recent lookups\n", icon.Get(icon.Info))
			return
		}

		idWidth := lo.Max(lo.Map(entries, func(e *history.Entry, _ int) int {
			return len(strconv.Itoa(e.ID))
		}))

		for _, e := range entries {
			cmd.Printf(
				"%s  %s %s %s\n",
				style.Fg(color.Purple)(fmt.Sprintf("%*d", idWidth, e.ID)),
				style.Bold(e.Title),
				style.Italic(e.Format),
				style.Faint(e.LookedUpAt.Format("2006-01-02 15:04")),
			)
		}

		cmd.Printf("\n%s\n", style.Faint(util.Quantify(len(entries), "entry", "entries")))
	},
}
