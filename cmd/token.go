package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/anipeek/anipeek/auth"
	"github.com/anipeek/anipeek/color"
	"github.com/anipeek/anipeek/icon"
	"github.com/anipeek/anipeek/style"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.AddCommand(tokenSetCmd)
	tokenCmd.AddCommand(tokenDeleteCmd)
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage the AniList access token sent with every lookup",
}

var tokenSetCmd = &cobra.Command{
	Use:   "set [token]",
	Short: "Store the access token in the system keyring",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var token string
		if len(args) == 1 {
			token = args[0]
		} else {
			handleErr(survey.AskOne(&survey.Password{
				Message: "AniList access token",
			}, &token, survey.WithValidator(survey.Required)))
		}

		handleErr(auth.SetToken(token))
		fmt.Printf("%s token saved\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

var tokenDeleteCmd = &cobra.Command{
	Use:     "delete",
	Aliases: []string{"remove"},
	Short:   "Remove the access token from the system keyring",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(auth.DeleteToken())
		fmt.Printf("%s token deleted\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}
