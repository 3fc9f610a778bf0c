package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/AlonMell/rbmap/internal/oplog"
	"github.com/AlonMell/rbmap/internal/rbtree"
)

var cmdReplay = &cli.Command{
	Name:      "replay",
	Usage:     "apply operation scripts to a single tree",
	ArgsUsage: `<file>... ("-" reads stdin)`,
	Flags: []cli.Flag{
		validateFlag,
		printFlag,
	},
	Action: runReplay,
}

func runReplay(cctx *cli.Context) error {
	if cctx.Args().Len() == 0 {
		return fmt.Errorf("need at least one script to replay")
	}
	cfg := configFromContext(cctx)
	out := cctx.App.Writer

	tree := rbtree.New[string]()
	for _, path := range cctx.Args().Slice() {
		if err := replayScript(tree, path, cfg, out); err != nil {
			return err
		}
	}

	return report(out, tree, cfg)
}

func replayScript(tree *rbtree.Tree[string], path string, cfg *Config, out io.Writer) error {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		defer f.Close()
		r = f
	}

	applied := 0
	err := oplog.Replay(r, func(e *oplog.Entry) error {
		res := oplog.Apply(tree, e)
		applied++

		switch e.Op {
		case oplog.OpGet, oplog.OpDepth:
			fmt.Fprintln(out, res)
		default:
			slog.Debug("applied", "op", e.Op, "key", e.Key, "changed", res.Changed)
		}

		if cfg.ValidateEach {
			if err := tree.Check(); err != nil {
				return fmt.Errorf("after %s %s: %w", e.Op, e.Key, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	slog.Info("replayed script", "path", path, "ops", applied, "size", tree.Len())
	return nil
}

// report prints the summary line, the tree if asked for, and fails when
// the tree does not hold its invariants.
func report(out io.Writer, tree *rbtree.Tree[string], cfg *Config) error {
	err := tree.Check()
	fmt.Fprintf(out, "size=%d height=%d valid=%t\n", tree.Len(), tree.Height(), err == nil)
	if cfg.PrintTree {
		fmt.Fprintln(out, tree)
	}
	if err != nil {
		return fmt.Errorf("tree invalid: %w", err)
	}
	return nil
}
