package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/lexiz/internal/wordlist"
)

func (c *cli) wordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "word",
		Aliases: []string{"words"},
		Short:   "Manage the words of a list",
	}

	add := &cobra.Command{
		Use:   "add <list> <term> <definition>",
		Short: "Add a word to a list",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, _ := cmd.Flags().GetString("notes")

			st, err := c.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			ctx := cmd.Context()
			l, err := resolveList(ctx, st.ListRepo(), args[0])
			if err != nil {
				return err
			}
			w := wordlist.Word{ListID: l.ID, Term: args[1], Definition: args[2], Notes: notes}
			if err := st.WordRepo().Add(ctx, &w); err != nil {
				return err
			}
			cmd.Printf("Added word %d to %s: %s\n", w.ID, l.Title, wordlist.FormatLine(w))
			return nil
		},
	}
	add.Flags().String("notes", "", "Optional memory hint shown after a wrong answer")

	edit := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a word's term, definition or notes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			st, err := c.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			ctx := cmd.Context()
			w, err := st.WordRepo().Get(ctx, id)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("term") {
				w.Term, _ = flags.GetString("term")
			}
			if flags.Changed("definition") {
				w.Definition, _ = flags.GetString("definition")
			}
			if flags.Changed("notes") {
				w.Notes, _ = flags.GetString("notes")
			}
			if err := st.WordRepo().Update(ctx, *w); err != nil {
				return err
			}
			cmd.Printf("Updated word %d: %s\n", w.ID, wordlist.FormatLine(*w))
			return nil
		},
	}
	edit.Flags().String("term", "", "New term")
	edit.Flags().String("definition", "", "New definition")
	edit.Flags().String("notes", "", "New notes (empty clears them)")

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			st, err := c.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.WordRepo().Delete(cmd.Context(), id); err != nil {
				return err
			}
			cmd.Printf("Deleted word %d\n", id)
			return nil
		},
	}

	sel := &cobra.Command{
		Use:   "select <id>...",
		Short: "Mark words for study; with no selection the whole list is studied",
		Example: `  lexiz word select 3 4 7
  lexiz word select --all animals --off`,
		RunE: func(cmd *cobra.Command, args []string) error {
			off, _ := cmd.Flags().GetBool("off")
			all, _ := cmd.Flags().GetString("all")
			if all == "" && len(args) == 0 {
				return cmd.Usage()
			}

			st, err := c.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			ctx := cmd.Context()
			if all != "" {
				l, err := resolveList(ctx, st.ListRepo(), all)
				if err != nil {
					return err
				}
				if err := st.WordRepo().SetAllSelected(ctx, l.ID, !off); err != nil {
					return err
				}
				cmd.Printf("%s: %d words %s\n", l.Title, len(l.Words), selectVerb(off))
				return nil
			}

			for _, arg := range args {
				id, err := parseID(arg)
				if err != nil {
					return err
				}
				if err := st.WordRepo().SetSelected(ctx, id, !off); err != nil {
					return err
				}
			}
			cmd.Printf("%d words %s\n", len(args), selectVerb(off))
			return nil
		},
	}
	sel.Flags().Bool("off", false, "Remove the words from the selection instead")
	sel.Flags().String("all", "", "Apply to every word of this list")

	cmd.AddCommand(add, edit, rm, sel)
	return cmd
}

func selectVerb(off bool) string {
	if off {
		return "deselected"
	}
	return "selected"
}
