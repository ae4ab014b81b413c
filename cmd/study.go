package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexiz/internal/drill"
	"github.com/abhisek/lexiz/internal/session"
	"github.com/abhisek/lexiz/internal/store"
	"github.com/abhisek/lexiz/internal/wordlist"
)

func (c *cli) studyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "study <list>",
		Short: "Study a word list until every word is mastered",
		Long: `Study a word list. Only the selected words are asked, or every word
when none is selected. Use --plain for a line-oriented prompt that reads
answers from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, err := c.openStore()
			if err != nil {
				return err
			}
			list, err := resolveList(ctx, st.ListRepo(), args[0])
			if err != nil {
				st.Close()
				return err
			}
			if len(list.Words) == 0 {
				st.Close()
				return fmt.Errorf("list %q: %w", list.Title, session.ErrEmptySession)
			}

			if plain, _ := cmd.Flags().GetBool("plain"); !plain {
				st.Close()
				return c.runTUI(cmd, list)
			}
			defer st.Close()
			return c.drill(cmd, st.HistoryRepo(), list)
		},
	}
	cmd.Flags().Bool("plain", false, "Use a plain line-oriented prompt instead of the TUI")
	cmd.Flags().Uint64("seed", 0, "Seed the prompt order for a reproducible session")
	return cmd
}

// drill runs a plain session, recording it in the history.
func (c *cli) drill(cmd *cobra.Command, history store.HistoryRepo, list *wordlist.List) error {
	ctx := cmd.Context()
	items := list.StudyItems()
	log := c.log.WithField("list", list.Title)

	opts := c.sessionOptions()
	rec, err := store.StartRecording(ctx, history, log, list.ID, list.Title, len(items))
	if err != nil {
		log.WithError(err).Warn("open session history")
	} else {
		opts = append(opts, session.WithObserver(rec.Observe))
	}

	sess := session.New(items, opts...)
	runner := &drill.Runner{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
	res, err := runner.Run(ctx, sess)
	if rec != nil && !res.Completed {
		rec.Abandon(res.Summary)
	}
	if err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
