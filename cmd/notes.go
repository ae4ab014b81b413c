package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexiz/internal/llm"
	"github.com/abhisek/lexiz/internal/notes"
)

func (c *cli) notesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Generate memory hints with an LLM",
	}

	suggest := &cobra.Command{
		Use:   "suggest <list>",
		Short: "Suggest notes for the words of a list that have none",
		Long: `Ask the configured LLM for a short memory hint per word without notes.
The provider comes from llm.provider in the config (or --provider), else
from the first of ANTHROPIC_API_KEY, OPENAI_API_KEY, GEMINI_API_KEY,
OPENROUTER_API_KEY that is set. Suggestions are printed; --apply stores them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			apply, _ := cmd.Flags().GetBool("apply")

			llmCfg, ok := c.cfg.LLM.Resolve()
			if !ok {
				return llm.ErrNoProvider
			}
			provider, err := llm.NewProvider(ctx, llmCfg, c.log)
			if err != nil {
				return err
			}

			st, err := c.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			list, err := resolveList(ctx, st.ListRepo(), args[0])
			if err != nil {
				return err
			}

			svc := notes.NewService(provider, notes.DefaultConfig())
			suggestions, err := svc.Suggest(ctx, list.Words)
			if err != nil {
				var rl *llm.ErrRateLimit
				if errors.As(err, &rl) {
					return fmt.Errorf("%w (try again in a minute)", err)
				}
				return err
			}
			if len(suggestions) == 0 {
				if notes.NeedsNotes(list.Words) {
					cmd.Println("No notes suggested.")
				} else {
					cmd.Println("Every word already has notes.")
				}
				return nil
			}

			for _, s := range suggestions {
				cmd.Printf("%s: %s\n", s.Term, s.Note)
			}
			if !apply {
				cmd.Println("\nRun again with --apply to save these notes.")
				return nil
			}

			changed := notes.Apply(list.Words, suggestions)
			for _, w := range changed {
				if err := st.WordRepo().Update(ctx, w); err != nil {
					return fmt.Errorf("save notes for %q: %w", w.Term, err)
				}
			}
			cmd.Printf("\nSaved notes for %d words.\n", len(changed))
			return nil
		},
	}
	suggest.Flags().Bool("apply", false, "Store the suggestions as the words' notes")
	suggest.Flags().String("provider", "", "LLM provider: anthropic, openai, gemini, openrouter, mock")

	cmd.AddCommand(suggest)
	return cmd
}
