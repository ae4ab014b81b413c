package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexiz/internal/store"
)

func (c *cli) statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show recent study sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")

			st, err := c.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			sessions, err := st.HistoryRepo().Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				cmd.Println("No sessions yet.")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "STARTED\tLIST\tWORDS\tCORRECT\tASKED\tACCURACY\tSTATUS")
			var asked, correct int
			for _, s := range sessions {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%.0f%%\t%s\n",
					s.StartedAt.Local().Format("2006-01-02 15:04"),
					s.ListTitle,
					s.ItemCount,
					s.Summary.CorrectCount,
					s.Summary.TotalAsked,
					s.Summary.Accuracy*100,
					sessionStatus(s),
				)
				asked += s.Summary.TotalAsked
				correct += s.Summary.CorrectCount
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			if asked > 0 {
				cmd.Printf("\n%d sessions, %d correct of %d prompts asked (%.0f%%)\n",
					len(sessions), correct, asked, float64(correct)/float64(asked)*100)
			}
			return nil
		},
	}
	cmd.Flags().Int("limit", 20, "Number of sessions to show (0 for all)")
	return cmd
}

func sessionStatus(s store.SessionRecord) string {
	switch {
	case s.Completed:
		return "complete"
	case !s.FinishedAt.IsZero():
		return "abandoned"
	}
	return "unfinished"
}
