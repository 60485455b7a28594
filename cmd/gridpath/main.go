// Command gridpath searches a YAML grid map and prints the route.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/pdrpinto/gridpath"
	"github.com/pdrpinto/gridpath/grid"
	"github.com/pdrpinto/gridpath/internal/config"
	"github.com/pdrpinto/gridpath/internal/gridfile"
	"github.com/pdrpinto/gridpath/internal/logging"
	"github.com/pdrpinto/gridpath/internal/script"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "gridpath: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	mapPath := fs.String("map", "", "path to the YAML map")
	from := fs.String("from", "", "start cell as x,y; overrides the map")
	to := fs.String("to", "", "goal cell as x,y; overrides the map")
	diagonal := fs.Bool("diagonal", false, "allow diagonal steps; overrides the map")
	corners := fs.String("corners", "", "corner policy no-cut|cut|always; overrides the map")
	scriptPath := fs.String("script", "", "tengo heuristic script")
	weight := fs.Float64("weight", 1, "heuristic weight")
	fs.IntVar(&cfg.Search.MaxExpansions, "max-expansions", cfg.Search.MaxExpansions, "stop after this many expansions, 0 for no limit")
	fs.DurationVar(&cfg.Search.Timeout, "timeout", cfg.Search.Timeout, "search timeout, 0 for none")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *mapPath == "" {
		return errors.New("-map is required")
	}

	logger := logging.New(cfg.Logging, os.Stderr)

	m, err := gridfile.Load(*mapPath)
	if err != nil {
		return err
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if *from != "" {
		if m.Start, err = parsePosition(*from); err != nil {
			return fmt.Errorf("-from: %w", err)
		}
		m.HasStart = true
	}
	if *to != "" {
		if m.Goal, err = parsePosition(*to); err != nil {
			return fmt.Errorf("-to: %w", err)
		}
		m.HasGoal = true
	}
	if !m.HasStart || !m.HasGoal {
		return errors.New("map has no start or goal; mark S and G or pass -from and -to")
	}

	movement := m.Movement
	if set["diagonal"] {
		movement.AllowDiagonal = *diagonal
	}
	if set["corners"] {
		if movement.Corners, err = grid.ParseCornerPolicy(*corners); err != nil {
			return err
		}
	}

	options := append(cfg.Search.Options(logger),
		gridpath.WithMovement(movement),
		gridpath.WithWeight(*weight),
	)
	var heuristic *script.Heuristic
	if *scriptPath != "" {
		if heuristic, err = script.Load(*scriptPath); err != nil {
			return err
		}
		options = append(options, gridpath.WithHeuristic(heuristic.Func()))
	}

	began := time.Now()
	result, err := gridpath.FindPath(ctx, m.Grid, m.Start, m.Goal, options...)
	logger.Info("search finished",
		slog.String("map", *mapPath),
		slog.String("start", m.Start.String()),
		slog.String("goal", m.Goal.String()),
		slog.Int("expanded", result.ExpandedNodes),
		slog.Duration("elapsed", time.Since(began)),
	)
	if heuristic != nil {
		if herr := heuristic.Err(); herr != nil {
			logger.Warn("heuristic script failed; search ran uninformed", slog.Any("error", herr))
		}
	}
	if err != nil {
		if errors.Is(err, gridpath.ErrNoPath) {
			fmt.Fprint(out, gridfile.Render(m.Grid, nil, m.Start, m.Goal))
		}
		return err
	}

	cells := make([]string, len(result.Path))
	for i, p := range result.Path {
		cells[i] = p.String()
	}
	fmt.Fprintf(out, "cost %.4f, %d steps, %d expanded\n", result.TotalCost, len(result.Path)-1, result.ExpandedNodes)
	fmt.Fprintln(out, strings.Join(cells, " "))
	fmt.Fprint(out, gridfile.Render(m.Grid, result.Path, m.Start, m.Goal))
	return nil
}

func parsePosition(s string) (grid.Position, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return grid.Position{}, fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return grid.Position{}, fmt.Errorf("bad x in %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return grid.Position{}, fmt.Errorf("bad y in %q: %w", s, err)
	}
	return grid.Pos(x, y), nil
}
