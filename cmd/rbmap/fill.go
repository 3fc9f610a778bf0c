package main

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/AlonMell/rbmap/internal/rbtree"
)

const (
	orderAsc    = "asc"
	orderDesc   = "desc"
	orderRandom = "random"
)

var cmdFill = &cli.Command{
	Name:  "fill",
	Usage: "insert generated keys and report how balanced the tree stays",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "count",
			Usage: "number of keys to insert",
			Value: DefaultConfig().Count,
		},
		&cli.StringFlag{
			Name:  "order",
			Usage: "insertion order: asc, desc or random",
			Value: DefaultConfig().Order,
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "seed for random order",
			Value: DefaultConfig().Seed,
		},
		validateFlag,
		printFlag,
	},
	Action: runFill,
}

func runFill(cctx *cli.Context) error {
	cfg := configFromContext(cctx)
	keys, err := fillKeys(cfg)
	if err != nil {
		return err
	}
	out := cctx.App.Writer

	tree := rbtree.New[string]()
	start := time.Now()
	for _, key := range keys {
		tree.Insert(key, "value-"+key)
		if cfg.ValidateEach {
			if err := tree.Check(); err != nil {
				return fmt.Errorf("after insert %s: %w", key, err)
			}
		}
	}
	duration := time.Since(start)

	slog.Info("filled tree", "count", cfg.Count, "order", cfg.Order, "duration", duration)
	fmt.Fprintf(out, "inserted %d keys in %s order\n", len(keys), cfg.Order)
	fmt.Fprintf(out, "height bound 2*log2(n+1) = %.1f\n", 2*math.Log2(float64(tree.Len()+1)))
	if duration > 0 {
		fmt.Fprintf(out, "throughput %.0f ops/sec\n", float64(len(keys))/duration.Seconds())
	}

	return report(out, tree, cfg)
}

// fillKeys generates zero-padded keys so lexicographic and numeric
// order agree.
func fillKeys(cfg *Config) ([]string, error) {
	if cfg.Count < 0 {
		return nil, fmt.Errorf("count must not be negative, got %d", cfg.Count)
	}

	width := len(fmt.Sprint(cfg.Count))
	keys := make([]string, cfg.Count)
	for i := range keys {
		keys[i] = fmt.Sprintf("key-%0*d", width, i)
	}

	switch cfg.Order {
	case orderAsc:
	case orderDesc:
		for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
			keys[i], keys[j] = keys[j], keys[i]
		}
	case orderRandom:
		r := rand.New(rand.NewSource(cfg.Seed))
		r.Shuffle(len(keys), func(i, j int) {
			keys[i], keys[j] = keys[j], keys[i]
		})
	default:
		return nil, fmt.Errorf("unknown order %q", cfg.Order)
	}
	return keys, nil
}
