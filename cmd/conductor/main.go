package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/viant/conductor"
	"github.com/viant/conductor/internal/ctxlog"
	"github.com/viant/conductor/model/types"
)

func main() {
	configURL := flag.String("config", "", "optional YAML config URL")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	ctx := ctxlog.WithLogger(context.Background(), logger)
	if err := run(ctx, *configURL, logger); err != nil {
		logger.Error("demo failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configURL string, logger *slog.Logger) error {
	cfg := conductor.DefaultConfig()
	if configURL != "" {
		var err error
		if cfg, err = conductor.LoadConfig(ctx, configURL); err != nil {
			return err
		}
	}

	fmt.Println("=== Conductor Toolkit Demo ===")
	fmt.Println()

	violin := func() string { return "Beautiful melody flows..." }
	cello := func() string { return "Rich harmony supports..." }
	drums := func() string { return "Steady rhythm guides..." }

	c, err := conductor.NewFromConfig(cfg, conductor.WithLogger(logger))
	if err != nil {
		return err
	}
	for _, member := range []struct {
		name    string
		payload any
		role    types.Role
	}{
		{"violin", violin, types.RoleMelody},
		{"cello", cello, types.RoleHarmony},
		{"drums", drums, types.RoleRhythm},
	} {
		payload, err := types.PayloadOf(member.payload)
		if err != nil {
			return err
		}
		fmt.Println(c.Register(member.name, payload, member.role))
	}
	fmt.Println()

	status, err := c.Tune(ctx)
	if err != nil {
		return err
	}
	for _, line := range status {
		fmt.Println(line)
	}
	fmt.Println()

	fmt.Println(c.Rehearse("opening sequence"))
	fmt.Println()

	fmt.Println("=== Performance ===")
	aggregate, err := c.Conduct(ctx)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println("Result:")
	fmt.Printf("performance: %v\n", aggregate.Performance)
	fmt.Printf("score: %v\n", aggregate.Score.Lines())
	fmt.Printf("quality: %v\n", aggregate.Quality)
	fmt.Printf("tempo: %v\n", aggregate.Tempo)
	fmt.Println()

	fmt.Println()
	fmt.Println("=== Quick Orchestration ===")
	quick, err := conductor.Orchestrate(ctx, []any{violin, cello, drums}, conductor.WithTempo(cfg.Tempo), conductor.WithLogger(logger))
	if err != nil {
		return err
	}
	fmt.Println("Score:", quick.Score.Lines())
	return nil
}
