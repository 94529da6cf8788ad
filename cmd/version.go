package cmd

import (
	"encoding/json"
	"os"
	"runtime"
	"strings"

	"github.com/anipeek/anipeek/color"
	"github.com/anipeek/anipeek/constant"
	"github.com/anipeek/anipeek/style"
	"github.com/anipeek/anipeek/version"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Print only the version")
	versionCmd.Flags().BoolP("json", "j", false, "Print build metadata as JSON")
	versionCmd.MarkFlagsMutuallyExclusive("short", "json")
}

type buildInfo struct {
	Version  string `json:"version"`
	Revision string `json:"revision"`
	BuiltAt  string `json:"built_at"`
	BuiltBy  string `json:"built_by"`
	Platform string `json:"platform"`
	Go       string `json:"go"`
}

func currentBuild() buildInfo {
	return buildInfo{
		Version:  constant.Version,
		Revision: constant.Revision,
		BuiltAt:  strings.TrimSpace(constant.BuiltAt),
		BuiltBy:  constant.BuiltBy,
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
		Go:       runtime.Version(),
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and build metadata",
	Run: func(cmd *cobra.Command, args []string) {
		info := currentBuild()

		switch {
		case lo.Must(cmd.Flags().GetBool("short")):
			cmd.Println(info.Version)
			return
		case lo.Must(cmd.Flags().GetBool("json")):
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(info))
			return
		}

		defer version.Notify()

		const width = 14
		cmd.Printf("%s %s\n\n", style.Fg(color.Purple)("▇▇▇"), style.Fg(color.Purple)(constant.Anipeek))
		for _, row := range [][2]string{
			{"Version", info.Version},
			{"Git Commit", info.Revision},
			{"Build Date", info.BuiltAt},
			{"Built By", info.BuiltBy},
			{"Platform", info.Platform},
			{"Go", info.Go},
		} {
			cmd.Printf("  %s%s\n", style.Label(row[0], width), style.Bold(row[1]))
		}
	},
}
