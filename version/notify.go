package version

import (
	"fmt"
	"io"
	"os"

	"github.com/anipeek/anipeek/color"
	"github.com/anipeek/anipeek/constant"
	"github.com/anipeek/anipeek/icon"
	"github.com/anipeek/anipeek/key"
	"github.com/anipeek/anipeek/log"
	"github.com/anipeek/anipeek/style"
	"github.com/anipeek/anipeek/util"
	"github.com/spf13/viper"
)

// Notify prints a notice when a release newer than the running one exists.
// It is silent when cli.version_check is off or the check fails.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(icon.Get(icon.Progress) + " Checking for a new version...")
	latest, err := Latest()
	erase()
	if err != nil {
		log.Warnf("version check: %s", err)
		return
	}

	notify(os.Stdout, constant.Version, latest)
}

func notify(w io.Writer, current, latest string) {
	newer, err := Compare(latest, current)
	if err != nil || newer <= 0 {
		return
	}

	_, _ = fmt.Fprintf(w, "\n%s New version is available %s %s\n%s\n\n",
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint("(you're on "+current+")"),
		style.Faint("https://github.com/anipeek/anipeek/releases/tag/v"+latest),
	)
}
