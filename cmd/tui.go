package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/lexiz/internal/app"
	"github.com/abhisek/lexiz/internal/screens/home"
	"github.com/abhisek/lexiz/internal/wordlist"
)

func (c *cli) tuiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the terminal UI (the default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTUI(cmd, nil)
		},
	}
	cmd.Flags().Bool("no-splash", false, "Skip the welcome animation")
	return cmd
}

// runTUI opens the store and runs the TUI. A non-nil list starts a study
// session over it right away.
func (c *cli) runTUI(cmd *cobra.Command, list *wordlist.List) error {
	st, err := c.openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	noSplash, _ := cmd.Flags().GetBool("no-splash")
	deps := home.Deps{
		Lists:          st.ListRepo(),
		History:        st.HistoryRepo(),
		Log:            c.log,
		SessionOptions: c.sessionOptions(),
	}
	return app.Run(cmd.Context(), deps, app.Options{SkipSplash: noSplash, Study: list})
}
