// Package cmd implements the lexiz command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/lexiz/internal/config"
	"github.com/abhisek/lexiz/internal/logging"
	"github.com/abhisek/lexiz/internal/session"
	"github.com/abhisek/lexiz/internal/store"
	"github.com/abhisek/lexiz/internal/wordlist"
)

// cli holds what PersistentPreRunE loads for the subcommands.
type cli struct {
	cfg *config.Config
	log *logrus.Logger
}

// Execute runs the root command.
func Execute() error {
	root := newRootCmd()
	root.SetOut(os.Stdout)
	return root.Execute()
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "lexiz",
		Short:         "Flashcard vocabulary trainer",
		Long:          "Lexiz drills word lists in the terminal until every word is mastered in both directions.",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTUI(cmd, nil)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "Path to a YAML config file (default: ./lexiz.yaml, then the user config dir)")
	pf.String("db", "", "Path to SQLite database file (overrides LEXIZ_DB)")
	pf.String("log-level", "", "Log level: trace, debug, info, warn, error")
	pf.String("log-format", "", "Log format: text or json")

	root.AddCommand(
		c.tuiCmd(),
		c.studyCmd(),
		c.listCmd(),
		c.wordCmd(),
		c.importCmd(),
		c.exportCmd(),
		c.statsCmd(),
		c.notesCmd(),
		versionCmd(),
	)
	return root
}

func (c *cli) load(cmd *cobra.Command) error {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return err
	}
	log, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Out:    cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	c.cfg, c.log = cfg, log
	return nil
}

// resolveDBPath returns the configured database path, or the default XDG path.
func (c *cli) resolveDBPath() (string, error) {
	if p := c.cfg.DB; p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func (c *cli) openStore() (*store.Store, error) {
	dbPath, err := c.resolveDBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath, store.WithLogger(c.log))
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// sessionOptions returns the engine options from configuration.
func (c *cli) sessionOptions() []session.Option {
	if c.cfg.Study.Seed != 0 {
		return []session.Option{session.WithSeed(c.cfg.Study.Seed)}
	}
	return nil
}

// resolveList finds a list by numeric id or exact title. A numeric
// argument that is not an id is tried as a title.
func resolveList(ctx context.Context, lists store.ListRepo, arg string) (*wordlist.List, error) {
	if id, err := strconv.ParseInt(arg, 10, 64); err == nil {
		l, err := lists.Get(ctx, id)
		if err == nil || !errors.Is(err, store.ErrNotFound) {
			return l, err
		}
	}
	return lists.FindByTitle(ctx, arg)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}
