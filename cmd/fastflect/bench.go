package main

import (
	"fmt"
	"io"
	"reflect"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"fastflect/accessor"
	"fastflect/catalog"
	"fastflect/internal/models"
	"fastflect/shared/logger"
)

var (
	benchIterations int
	benchGoroutines int
	benchMetrics    bool
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Compare compiled accessors with reflective lookups",
	Long: `Read and write User.Age repeatedly, once through reflect.Value.FieldByName
and once through a cached compiled accessor, and report the cost per operation.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("iterations") {
			cfg.Bench.Iterations = benchIterations
		}
		if cmd.Flags().Changed("goroutines") {
			cfg.Bench.Goroutines = benchGoroutines
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		return runBench(cmd.OutOrStdout())
	},
}

func init() {
	benchCmd.Flags().IntVarP(&benchIterations, "iterations", "n", 0, "operations per case (overrides config)")
	benchCmd.Flags().IntVarP(&benchGoroutines, "goroutines", "g", 0, "concurrent workers per case (overrides config)")
	benchCmd.Flags().BoolVar(&benchMetrics, "metrics", false, "print the accessor cache metrics after the run")
}

type benchCase struct {
	name string
	op   func(u *models.User, i int) error
}

func runBench(out io.Writer) error {
	mode := accessor.InstanceAnyVisibility
	if cfg.Bench.Visibility == "public" {
		mode = accessor.InstancePublic
	}

	cache := accessor.NewCache(accessor.WithLogger(logger.Log()))
	registry := prometheus.NewRegistry()
	if err := registry.Register(accessor.NewCollector(cache, cfg.Metrics.Namespace)); err != nil {
		return fmt.Errorf("registering cache collector: %w", err)
	}

	age, err := catalog.ResolveFor[models.User]("Age")
	if err != nil {
		return err
	}

	cases := []benchCase{
		{"reflect get", func(u *models.User, _ int) error {
			_ = reflect.ValueOf(u).Elem().FieldByName("Age").Interface()
			return nil
		}},
		{"compiled get", func(u *models.User, _ int) error {
			get, err := cache.GetOrCompile(age, mode, accessor.Get)
			if err != nil {
				return err
			}
			_, err = get.Get(u)
			return err
		}},
		{"reflect set", func(u *models.User, i int) error {
			reflect.ValueOf(u).Elem().FieldByName("Age").Set(reflect.ValueOf(i))
			return nil
		}},
		{"compiled set", func(u *models.User, i int) error {
			set, err := cache.GetOrCompile(age, mode, accessor.Set)
			if err != nil {
				return err
			}
			return set.Set(u, i)
		}},
	}

	header := color.New(color.Bold)
	header.Fprintf(out, "%-14s %12s %12s\n", "case", "total", "ns/op")

	for _, bc := range cases {
		elapsed, err := runCase(bc, cfg.Bench.Iterations, cfg.Bench.Goroutines)
		if err != nil {
			color.New(color.FgRed).Fprintf(out, "%-14s failed: %v\n", bc.name, err)
			return err
		}
		perOp := float64(elapsed.Nanoseconds()) / float64(cfg.Bench.Iterations)
		fmt.Fprintf(out, "%-14s %12s %12.1f\n", bc.name, elapsed.Round(time.Microsecond), perOp)
	}

	stats := cache.Stats()
	color.New(color.FgGreen).Fprintf(out, "\ncache %s: %d entries, %d hits, %d misses, %d compilations\n",
		cache.ID(), stats.Entries, stats.Hits, stats.Misses, stats.Compilations)

	logger.Info("Bench finished",
		logger.Int("iterations", cfg.Bench.Iterations),
		logger.Int("goroutines", cfg.Bench.Goroutines),
		logger.Uint64("cache_hits", stats.Hits))

	if benchMetrics {
		return printMetrics(out, registry)
	}
	return nil
}

// runCase splits iterations across workers, each with its own receiver
func runCase(bc benchCase, iterations, workers int) (time.Duration, error) {
	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)

	per := iterations / workers
	extra := iterations % workers

	start := time.Now()
	for w := range workers {
		n := per
		if w < extra {
			n++
		}
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			u := &models.User{}
			for i := range n {
				if err := bc.op(u, i); err != nil {
					errOnce.Do(func() { firstErr = err })
					return
				}
			}
		}(n)
	}
	wg.Wait()

	return time.Since(start), firstErr
}

func printMetrics(out io.Writer, registry *prometheus.Registry) error {
	families, err := registry.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	fmt.Fprintln(out)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			value := m.GetCounter().GetValue()
			if m.GetGauge() != nil {
				value = m.GetGauge().GetValue()
			}
			fmt.Fprintf(out, "%s %g\n", mf.GetName(), value)
		}
	}
	return nil
}
