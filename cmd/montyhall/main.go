package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/xtding233/montyhall/internal/config"
	"github.com/xtding233/montyhall/internal/logging"
	"github.com/xtding233/montyhall/internal/montyhall"
	"github.com/xtding233/montyhall/internal/report"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	defaults := config.Defaults()

	cmd := &cobra.Command{
		Use:   "montyhall [n_door n_leftclose n_trial]",
		Short: "Monte Carlo simulation of the generalized Monty Hall problem",
		Long: `montyhall hides a prize behind one of n_door doors, lets the player pick one,
and has the host open losing doors until n_leftclose remain closed. It then
estimates how often staying and switching win over n_trial games.

With no arguments it runs the classic game: 3 doors, 2 left closed, 1000 trials.
Defaults can also be set through MONTYHALL_* environment variables.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := applyArgs(&cfg, args); err != nil {
				if errors.Is(err, ErrArgumentCount) {
					fmt.Fprintln(stderr, usageLine)
				}
				return err
			}
			if err := applyFlags(cmd, &cfg); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.Flags().Uint64("seed", 0, "PCG seed; 0 picks a random one (env MONTYHALL_SEED)")
	cmd.Flags().Int("workers", defaults["workers"].(int), "goroutines sharing the trials (env MONTYHALL_WORKERS)")
	cmd.Flags().String("format", defaults["format"].(string), "output format: text or yaml (env MONTYHALL_FORMAT)")
	cmd.Flags().String("log-level", defaults["log_level"].(string), "log level on stderr: debug, info, warn, error (env MONTYHALL_LOG_LEVEL)")
	return cmd
}

// applyFlags overrides cfg with flags given explicitly on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	var err error
	if f.Changed("seed") {
		if cfg.Seed, err = f.GetUint64("seed"); err != nil {
			return err
		}
	}
	if f.Changed("workers") {
		if cfg.Workers, err = f.GetInt("workers"); err != nil {
			return err
		}
	}
	if f.Changed("format") {
		if cfg.Format, err = f.GetString("format"); err != nil {
			return err
		}
	}
	if f.Changed("log-level") {
		if cfg.LogLevel, err = f.GetString("log-level"); err != nil {
			return err
		}
	}
	return nil
}

func run(ctx context.Context, cfg config.Config, stdout, stderr io.Writer) error {
	log := logging.NewLogger(cfg.LogLevel, stderr)
	p := montyhall.Params{Doors: cfg.Doors, LeftClosed: cfg.LeftClosed}

	if cfg.Format == config.FormatText {
		if err := report.WriteHeader(stdout, p, cfg.Trials); err != nil {
			return err
		}
	}
	exp, err := montyhall.ExpectedProbabilities(p)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = montyhall.RandomSeed()
	}
	log.Debug("simulation start", "doors", p.Doors, "left_closed", p.LeftClosed,
		"trials", cfg.Trials, "workers", cfg.Workers, "seed", seed)

	t0 := time.Now()
	res, err := montyhall.RunParallel(ctx, p, cfg.Trials, cfg.Workers, seed)
	if err != nil {
		return err
	}
	elapsed := time.Since(t0)
	log.Debug("simulation done", "stayed_hits", res.StayedHits, "switched_hits", res.SwitchedHits,
		"elapsed", elapsed)

	out := report.Run{Result: res, Expected: exp, Seed: seed, Workers: cfg.Workers, Elapsed: elapsed}
	if cfg.Format == config.FormatYAML {
		return report.WriteYAML(stdout, out)
	}
	return report.WriteText(stdout, out)
}
