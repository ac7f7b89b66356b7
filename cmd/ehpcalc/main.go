// Command ehpcalc prints effective HP reports for units against boss stages.
//
// Usage:
//
//	ehpcalc                                  # runs from config (stock report by default)
//	ehpcalc -unit Seattle -loadout rudder,toolbox
//	ehpcalc -unit Anchorage -stage meta_boss -info
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/udisondev/ehpsim/internal/batch"
	"github.com/udisondev/ehpsim/internal/config"
	"github.com/udisondev/ehpsim/internal/data"
)

const ConfigPath = "config/ehpsim.yaml"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("ehpcalc", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "config file (default $EHPSIM_CONFIG or "+ConfigPath+")")
	unitName := fs.String("unit", "", "evaluate a single unit instead of the configured runs")
	stageName := fs.String("stage", "taihou_boss", "stage for -unit")
	loadout := fs.String("loadout", "", "comma-separated equipment for -unit, applied in order")
	top := fs.Int("top", -1, "print only the N best results (overrides config)")
	info := fs.Bool("info", false, "print each unit's skill descriptions")
	if err := fs.Parse(args); err != nil {
		return err
	}

	path := *cfgPath
	if path == "" {
		path = ConfigPath
		if p := os.Getenv("EHPSIM_CONFIG"); p != "" {
			path = p
		}
	}
	cfg, err := config.LoadSimulator(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *top >= 0 {
		cfg.Top = *top
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Level(),
	})))

	cat := data.Builtin()
	if cfg.PresetsFile != "" {
		file, err := data.LoadFile(cfg.PresetsFile)
		if err != nil {
			return fmt.Errorf("loading presets: %w", err)
		}
		if cat, err = cat.Overlay(file); err != nil {
			return fmt.Errorf("applying presets %s: %w", cfg.PresetsFile, err)
		}
		slog.Info("presets loaded", "path", cfg.PresetsFile)
	}

	var queries []batch.Query
	if *unitName != "" {
		queries = append(queries, batch.Query{
			Unit:    *unitName,
			Stage:   *stageName,
			Loadout: splitList(*loadout),
		})
	} else {
		queries = queriesFromConfig(cfg)
	}

	if *info {
		if err := printInfo(out, cat, queries); err != nil {
			return err
		}
	}

	results, err := batch.Run(ctx, cat, cfg.Workers, queries)
	if err != nil {
		return fmt.Errorf("evaluating: %w", err)
	}
	if cfg.Top > 0 {
		results = batch.Rank(results, cfg.Top)
	}
	return printResults(out, results)
}

func queriesFromConfig(cfg config.Simulator) []batch.Query {
	var queries []batch.Query
	for _, r := range cfg.Runs {
		equip := cfg.Loadout(r.Loadout)
		for _, u := range r.Units {
			queries = append(queries, batch.Query{Unit: u, Stage: r.Stage, Loadout: equip})
		}
	}
	return queries
}

func splitList(s string) []string {
	var out []string
	for item := range strings.SplitSeq(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func printInfo(out io.Writer, cat data.Catalog, queries []batch.Query) error {
	seen := make(map[string]bool)
	for _, q := range queries {
		if seen[q.Unit] {
			continue
		}
		seen[q.Unit] = true

		u, err := cat.Unit(q.Unit)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s:\n", u.Name())
		if u.Info() == "" {
			fmt.Fprintln(out, "  (no skills)")
			continue
		}
		for line := range strings.SplitSeq(u.Info(), "\n") {
			fmt.Fprintf(out, "  %s\n", line)
		}
	}
	fmt.Fprintln(out)
	return nil
}

func printResults(out io.Writer, results []batch.Result) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "UNIT\tLOADOUT\tSTAGE\tHP\tDIVISOR\tEHP")
	for _, r := range results {
		equip := strings.Join(r.Loadout, "/")
		if equip == "" {
			equip = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\t%.4f\t%.0f\n",
			r.Unit, equip, r.Stage, r.ModifiedHP, r.Divisor, r.Whole())
	}
	return w.Flush()
}
