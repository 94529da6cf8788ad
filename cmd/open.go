package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/anipeek/anipeek/anilist"
	"github.com/anipeek/anipeek/icon"
	"github.com/anipeek/anipeek/lookup"
	"github.com/anipeek/anipeek/open"
	"github.com/anipeek/anipeek/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(openCmd)
	openCmd.Flags().BoolP("print", "P", false, "Print the page url instead of opening it")
	openCmd.SetOut(os.Stdout)
}

// pageURL looks id up and returns the entry's anilist.co page.
func pageURL(ctx context.Context, client lookup.Fetcher, id int) (url string, found bool, err error) {
	envelope, err := client.Fetch(ctx, id)
	if err != nil {
		return "", false, err
	}

	media, ok := envelope.Media().Get()
	if !ok {
		return "", false, nil
	}

	return media.PageURL(id), true, nil
}

var openCmd = &cobra.Command{
	Use:     "open <id>",
	Short:   "Open the AniList page of an entry in the browser",
	Example: "  anipeek open 21",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := anilist.ParseID(args[0])
		handleErr(err)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		url, found, err := pageURL(ctx, newClient(httpClient()), id)
		handleErr(err)

		if !found {
			newPresenter().NotFound(id)
			return
		}

		if lo.Must(cmd.Flags().GetBool("print")) {
			cmd.Println(url)
			return
		}

		handleErr(open.Start(url))
		fmt.Printf("%s opened %s\n", icon.Get(icon.Success), style.Faint(url))
	},
}
