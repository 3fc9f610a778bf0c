package main

import (
	"github.com/urfave/cli/v2"
)

// Config holds the options shared by the tree-driving commands.
type Config struct {
	// Run the full invariant check after every operation instead of
	// only once at the end
	ValidateEach bool

	// Print the rendered tree after the run
	PrintTree bool

	// Number of keys generated by fill
	Count int

	// Insertion order for fill: asc, desc or random
	Order string

	// Seed for the random order
	Seed int64
}

// DefaultConfig returns the default command configuration.
func DefaultConfig() *Config {
	return &Config{
		ValidateEach: false,
		PrintTree:    false,
		Count:        1000,
		Order:        orderRandom,
		Seed:         42,
	}
}

var (
	validateFlag = &cli.BoolFlag{
		Name:    "validate",
		Usage:   "check tree invariants after every operation",
		EnvVars: []string{"RBMAP_VALIDATE"},
	}
	printFlag = &cli.BoolFlag{
		Name:    "print",
		Usage:   "print the tree when done",
		EnvVars: []string{"RBMAP_PRINT"},
	}
)

// configFromContext overlays the flags that were set on the defaults.
func configFromContext(cctx *cli.Context) *Config {
	cfg := DefaultConfig()
	if cctx.IsSet("validate") {
		cfg.ValidateEach = cctx.Bool("validate")
	}
	if cctx.IsSet("print") {
		cfg.PrintTree = cctx.Bool("print")
	}
	if cctx.IsSet("count") {
		cfg.Count = cctx.Int("count")
	}
	if cctx.IsSet("order") {
		cfg.Order = cctx.String("order")
	}
	if cctx.IsSet("seed") {
		cfg.Seed = cctx.Int64("seed")
	}
	return cfg
}
