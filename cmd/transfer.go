package cmd

import (
	"compress/gzip"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexiz/internal/store"
	"github.com/abhisek/lexiz/internal/wordlist"
)

func (c *cli) importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <list>",
		Short: "Import words from a text file, one \"Term - Definition (Notes)\" per line",
		Long: `Import words into a list, creating the list if it does not exist.
Each line has the form "Term - Definition (Notes)"; the notes are optional
and blank lines are skipped. Use --input - to read from stdin. Files ending
in .gz are decompressed automatically.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ctx := cmd.Context()
			inputPath, _ := cmd.Flags().GetString("input")
			gzipEnabled, _ := cmd.Flags().GetBool("gzip")

			if inputPath == "" {
				return errors.New("specify a file with --input, or - for stdin")
			}
			if !gzipEnabled && inputPath != "-" && strings.HasSuffix(strings.ToLower(inputPath), ".gz") {
				gzipEnabled = true
			}

			var (
				reader  = cmd.InOrStdin()
				closers []func() error
			)
			if inputPath != "-" {
				file, openErr := os.Open(filepath.Clean(inputPath))
				if openErr != nil {
					return fmt.Errorf("open input: %w", openErr)
				}
				reader = file
				closers = append(closers, file.Close)
			}
			if gzipEnabled {
				gzr, gzErr := gzip.NewReader(reader)
				if gzErr != nil {
					closeAll(closers)
					return fmt.Errorf("open gzip stream: %w", gzErr)
				}
				reader = gzr
				closers = append([]func() error{gzr.Close}, closers...)
			}
			defer func() {
				if cerr := closeAll(closers); cerr != nil && err == nil {
					err = cerr
				}
			}()

			words, err := wordlist.Parse(reader)
			if err != nil {
				return err
			}
			if len(words) == 0 {
				return errors.New("no words found in input")
			}
			// Reject bad input before a new list is created for it.
			for i := range words {
				if err := wordlist.Validate(&words[i]); err != nil {
					return fmt.Errorf("word %d: %w", i+1, err)
				}
			}

			st, err := c.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			list, created, err := findOrCreateList(cmd, st.ListRepo(), args[0])
			if err != nil {
				return err
			}
			n, err := st.WordRepo().Import(ctx, list.ID, words)
			if err != nil {
				return fmt.Errorf("import into %q: %w", list.Title, err)
			}

			c.log.WithField("list", list.Title).WithField("words", n).Info("imported words")
			if created {
				cmd.Printf("Created list %q with %d words\n", list.Title, n)
			} else {
				cmd.Printf("Imported %d words into %q\n", n, list.Title)
			}
			return nil
		},
	}
	cmd.Flags().StringP("input", "i", "", "Input file, or - for stdin")
	cmd.Flags().Bool("gzip", false, "Input is gzip-compressed")
	return cmd
}

func (c *cli) exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <list>",
		Short: "Write a list in the import format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			outputPath, _ := cmd.Flags().GetString("output")
			gzipEnabled, _ := cmd.Flags().GetBool("gzip")
			if !gzipEnabled && outputPath != "-" && strings.HasSuffix(strings.ToLower(outputPath), ".gz") {
				gzipEnabled = true
			}

			st, err := c.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			list, err := resolveList(cmd.Context(), st.ListRepo(), args[0])
			if err != nil {
				return err
			}

			var (
				writer  = cmd.OutOrStdout()
				closers []func() error
			)
			if outputPath != "-" {
				file, createErr := os.Create(filepath.Clean(outputPath))
				if createErr != nil {
					return fmt.Errorf("create output: %w", createErr)
				}
				writer = file
				closers = append(closers, file.Close)
			}
			if gzipEnabled {
				gzw := gzip.NewWriter(writer)
				writer = gzw
				closers = append([]func() error{gzw.Close}, closers...)
			}
			defer func() {
				if cerr := closeAll(closers); cerr != nil && err == nil {
					err = cerr
				}
			}()

			if err := wordlist.Write(writer, list.Words); err != nil {
				return err
			}
			if outputPath != "-" {
				cmd.PrintErrf("Exported %d words from %q to %s\n", len(list.Words), list.Title, outputPath)
			}
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "-", "Output file, or - for stdout")
	cmd.Flags().Bool("gzip", false, "Compress the output with gzip")
	return cmd
}

// findOrCreateList resolves arg, creating a list titled arg when none matches.
func findOrCreateList(cmd *cobra.Command, lists store.ListRepo, arg string) (*wordlist.List, bool, error) {
	ctx := cmd.Context()
	l, err := resolveList(ctx, lists, arg)
	if err == nil {
		return l, false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, false, err
	}
	if err := wordlist.Validate(&wordlist.List{Title: arg}); err != nil {
		return nil, false, err
	}
	l, err = lists.Create(ctx, arg)
	if err != nil {
		return nil, false, err
	}
	return l, true, nil
}

// closeAll closes in order and returns the first error.
func closeAll(closers []func() error) error {
	var first error
	for _, closer := range closers {
		if err := closer(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

