// Command pipecli runs a text-cleaning pipeline over command-line arguments
// or stdin lines. It exists mainly as a wiring example for the pipekit
// packages: config loading, logging, observability, registry, and runner.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/kbukum/pipekit/cli"
	"github.com/kbukum/pipekit/config"
	"github.com/kbukum/pipekit/logger"
	"github.com/kbukum/pipekit/observability"
	"github.com/kbukum/pipekit/pipeline"
	"github.com/kbukum/pipekit/version"
)

const usage = `Usage: pipecli <command> [items...]

Runs the text pipeline over the given items, or over stdin lines when
no items are given. Groups listed in pipeline.skip_groups are excluded.`

func main() {
	if err := run(os.Stdout, os.Stdin, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "pipecli:", err)
		os.Exit(1)
	}
}

func run(out io.Writer, in io.Reader, args []string) error {
	var cfg config.App
	if err := config.Load("pipecli", &cfg); err != nil {
		return err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger.Init(cfg.Logging)

	ctx := context.Background()

	opts := []pipeline.Option[string]{
		pipeline.WithSkipGroups[string](cfg.Pipeline.SkipGroups...),
	}
	if cfg.Observability.Enabled {
		shutdown, metrics, err := initObservability(ctx, cfg)
		if err != nil {
			return err
		}
		defer shutdown()
		opts = append(opts,
			pipeline.WithTracing[string](),
			pipeline.WithMetrics[string](metrics),
		)
	}

	runner := pipeline.New(newTextRegistry(), opts...)

	app := cli.New("pipecli", usage)
	app.SetOutput(out)
	app.Command("run", "apply the pipeline to the given items or stdin lines", func(args []string) error {
		source := pipeline.NewSliceSource(args)
		if len(args) == 0 {
			source = lineSource(in)
		}
		it, err := runner.Run(ctx, source)
		if err != nil {
			return err
		}
		return pipeline.ForEach(ctx, it, func(_ context.Context, item string) error {
			_, err := fmt.Fprintln(out, item)
			return err
		})
	})
	app.Command("functions", "list registered transforms in chain order", func([]string) error {
		for _, entry := range newTextRegistry().Entries() {
			group := entry.Group
			if group == "" {
				group = "-"
			}
			fmt.Fprintf(out, "%s\t%s\n", entry.Name, group)
		}
		return nil
	})
	app.Command("version", "print version information", func([]string) error {
		fmt.Fprintln(out, version.Get().String())
		return nil
	})

	return app.Run(args)
}

// newTextRegistry builds the demo chain: trim whitespace, drop blank lines,
// fan each line out into its words, and lowercase the result.
func newTextRegistry() *pipeline.Registry[string] {
	reg := pipeline.NewRegistry[string]()
	reg.Add("trim", pipeline.MapFunc(strings.TrimSpace))
	reg.Add("drop_blank", pipeline.FilterFunc(func(s string) bool { return s != "" }))
	reg.AddToGroup("expand", "split_words", pipeline.FlatMapFunc(strings.Fields))
	reg.Add("lowercase", pipeline.MapFunc(strings.ToLower))
	return reg
}

// lineSource pulls items from a reader one line at a time.
func lineSource(r io.Reader) pipeline.Iterator[string] {
	scanner := bufio.NewScanner(r)
	return pipeline.NewFuncSource(func(context.Context) (string, bool, error) {
		if !scanner.Scan() {
			return "", false, scanner.Err()
		}
		return scanner.Text(), true, nil
	})
}

func initObservability(ctx context.Context, cfg config.App) (func(), *observability.Metrics, error) {
	tcfg := observability.DefaultTracerConfig(cfg.Service)
	tcfg.ServiceVersion = version.Get().Version
	tcfg.Endpoint = cfg.Observability.Endpoint
	tcfg.Insecure = cfg.Observability.Insecure
	tp, err := observability.InitTracer(ctx, tcfg)
	if err != nil {
		return nil, nil, err
	}

	mcfg := observability.DefaultMeterConfig(cfg.Service)
	mcfg.ServiceVersion = version.Get().Version
	mcfg.Endpoint = cfg.Observability.Endpoint
	mcfg.Insecure = cfg.Observability.Insecure
	mp, err := observability.InitMeter(ctx, mcfg)
	if err != nil {
		return nil, nil, err
	}

	metrics, err := observability.NewMetrics(observability.Meter(cfg.Service))
	if err != nil {
		return nil, nil, err
	}

	shutdown := func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mp.Shutdown(shutdownCtx); err != nil {
			logger.Warn("meter shutdown failed", logger.Fields(logger.FieldError, err.Error()))
		}
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.Warn("tracer shutdown failed", logger.Fields(logger.FieldError, err.Error()))
		}
	}
	return shutdown, metrics, nil
}
