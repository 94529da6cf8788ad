// Package cmd implements the command-line interface for anipeek.
package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/anipeek/anipeek/anilist"
	"github.com/anipeek/anipeek/auth"
	"github.com/anipeek/anipeek/color"
	"github.com/anipeek/anipeek/constant"
	"github.com/anipeek/anipeek/cover"
	"github.com/anipeek/anipeek/history"
	"github.com/anipeek/anipeek/icon"
	"github.com/anipeek/anipeek/key"
	"github.com/anipeek/anipeek/log"
	"github.com/anipeek/anipeek/lookup"
	"github.com/anipeek/anipeek/network"
	"github.com/anipeek/anipeek/present"
	"github.com/anipeek/anipeek/render"
	"github.com/anipeek/anipeek/repl"
	"github.com/anipeek/anipeek/style"
	"github.com/anipeek/anipeek/util"
	"github.com/anipeek/anipeek/version"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/muesli/termenv"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")
	rootCmd.Flags().IntP("get", "g", 0, "Look up a single media id and exit")
	rootCmd.Flags().BoolP("json", "j", false, "Print lookups as JSON")

	rootCmd.Flags().StringP("protocol", "p", "", "Graphics protocol for covers: "+strings.Join(render.Protocols(), ", "))
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("protocol", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return render.Protocols(), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.RenderProtocol, rootCmd.Flags().Lookup("protocol")))

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().BoolP("write-history", "H", true, "Remember looked up entries")
	lo.Must0(viper.BindPFlag(key.HistorySave, rootCmd.PersistentFlags().Lookup("write-history")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

var rootCmd = &cobra.Command{
	Use:   constant.Anipeek,
	Short: "Look up AniList entries from the terminal",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Look up AniList entries from the terminal"),
	Example: "  anipeek --get 21\n  anipeek --get 21 --json\n  anipeek",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		asJSON := lo.Must(cmd.Flags().GetBool("json"))
		presenter := newPresenter()
		pipeline := newPipeline(presenter, asJSON)

		if cmd.Flags().Changed("get") {
			id, err := oneShotID(lo.Must(cmd.Flags().GetInt("get")))
			handleErr(err)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			handleErr(pipeline.Run(ctx, id))
			return
		}

		var input repl.Input
		if util.IsTerminal(os.Stdin) {
			input = repl.SurveyInput{}
		} else {
			input = repl.NewLineInput(os.Stdin, nil)
		}

		handleErr(repl.New(pipeline, input, presenter).Run(context.Background()))
	},
}

// oneShotID applies the interactive loop's bounds to --get.
func oneShotID(id int) (int, error) {
	if !anilist.ValidID(id) {
		return 0, fmt.Errorf("invalid input %d: want a whole number between 0 and %d", id, anilist.MaxID)
	}
	return id, nil
}

func newPresenter() *present.Presenter {
	width, height, err := util.TerminalSize()
	if err != nil {
		log.Debugf("terminal size: %s", err)
	}

	return present.New(os.Stdout, present.Options{
		DrawCover: viper.GetBool(key.RenderEnable),
		Width:     width,
		Graphics: render.Config{
			Protocol:   viper.GetString(key.RenderProtocol),
			Width:      viper.GetInt(key.RenderWidth),
			Profile:    termenv.EnvColorProfile(),
			TermWidth:  width,
			TermHeight: height,
		},
	})
}

// httpClient honours network.timeout; the shared client already carries the default.
func httpClient() *http.Client {
	timeout := time.Duration(viper.GetInt(key.NetworkTimeout)) * time.Second
	if timeout == network.Client.Timeout {
		return network.Client
	}
	return network.New(timeout)
}

func newClient(doer anilist.Doer) *anilist.Client {
	return anilist.NewClient(
		anilist.WithHTTPClient(doer),
		anilist.WithEndpoint(viper.GetString(key.AnilistEndpoint)),
		anilist.WithToken(auth.Token()),
	)
}

func newPipeline(presenter *present.Presenter, asJSON bool) *lookup.Pipeline {
	doer := httpClient()
	return lookup.New(newClient(doer), cover.NewFetcher(doer), presenter, lookup.Options{
		JSON:      asJSON,
		DrawCover: viper.GetBool(key.RenderEnable),
		Remember:  history.Remember,
	})
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(describe(err), " \n"))
		os.Exit(1)
	}
}

func describe(err error) string {
	switch {
	case anilist.IsTransport(err):
		return "can't connect to AniList: " + err.Error()
	case anilist.IsDecode(err):
		return "AniList sent a " + err.Error()
	default:
		return err.Error()
	}
}
