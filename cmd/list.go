package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexiz/internal/wordlist"
)

func (c *cli) listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"lists"},
		Short:   "Manage word lists",
	}

	ls := &cobra.Command{
		Use:   "ls",
		Short: "Show every list with its word counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			lists, err := st.ListRepo().All(cmd.Context())
			if err != nil {
				return err
			}
			if len(lists) == 0 {
				cmd.Println("No lists yet. Create one with: lexiz list create <title>")
				return nil
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTITLE\tWORDS\tSELECTED")
			for _, l := range lists {
				fmt.Fprintf(tw, "%d\t%s\t%d\t%d\n", l.ID, l.Title, l.WordCount, l.SelectedCount)
			}
			return tw.Flush()
		},
	}

	create := &cobra.Command{
		Use:   "create <title>",
		Short: "Create an empty list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wordlist.Validate(&wordlist.List{Title: args[0]}); err != nil {
				return err
			}
			st, err := c.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			l, err := st.ListRepo().Create(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			cmd.Printf("Created list %d: %s\n", l.ID, l.Title)
			return nil
		},
	}

	rename := &cobra.Command{
		Use:   "rename <list> <title>",
		Short: "Rename a list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wordlist.Validate(&wordlist.List{Title: args[1]}); err != nil {
				return err
			}
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
			if err := st.ListRepo().Rename(ctx, l.ID, args[1]); err != nil {
				return err
			}
			cmd.Printf("Renamed %q to %q\n", l.Title, args[1])
			return nil
		},
	}

	rm := &cobra.Command{
		Use:   "rm <list>",
		Short: "Delete a list and all its words",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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
			if err := st.ListRepo().Delete(ctx, l.ID); err != nil {
				return err
			}
			cmd.Printf("Deleted list %q (%d words)\n", l.Title, len(l.Words))
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show <list>",
		Short: "Show the words of a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			l, err := resolveList(cmd.Context(), st.ListRepo(), args[0])
			if err != nil {
				return err
			}
			cmd.Printf("%s (%d words, %d selected)\n", l.Title, len(l.Words), l.SelectedCount())
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tSEL\tTERM\tDEFINITION\tNOTES")
			for _, w := range l.Words {
				sel := ""
				if w.Selected {
					sel = "*"
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", w.ID, sel, w.Term, w.Definition, w.Notes)
			}
			return tw.Flush()
		},
	}

	cmd.AddCommand(ls, create, rename, rm, show)
	return cmd
}
