package version

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/anisan-cli/anitaku/color"
	"github.com/anisan-cli/anitaku/constant"
	"github.com/anisan-cli/anitaku/icon"
	"github.com/anisan-cli/anitaku/key"
	"github.com/anisan-cli/anitaku/style"
	"github.com/anisan-cli/anitaku/util"
	"github.com/spf13/viper"
)

// Notify writes a notice to out when a newer release than the running one exists.
// Lookup failures are silent.
func Notify(out io.Writer) {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if a new version is available...", icon.Get(icon.Progress)))
	latest, err := Latest(ctx)
	erase()
	if err != nil {
		return
	}

	if newer, err := Compare(latest, constant.Version); err != nil || newer <= 0 {
		return
	}

	fmt.Fprintf(out, "\n%s New version is available %s %s\n%s\n\n",
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/anisan-cli/anitaku/releases/tag/v"+latest),
	)
}
