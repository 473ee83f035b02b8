package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/fxnlabs/gocl/cl"
	"github.com/fxnlabs/gocl/internal/compute"
	"github.com/fxnlabs/gocl/internal/config"
	"github.com/fxnlabs/gocl/internal/logger"
	"github.com/fxnlabs/gocl/internal/metrics"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

const verifyTolerance = 1e-3

func main() {
	var cfg *config.Config
	var log *zap.Logger

	app := &cli.App{
		Name:  "clbench",
		Usage: "Benchmark OpenCL devices with SAXPY and matrix multiplication",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "Load configuration from `FILE`",
				EnvVars: []string{"GOCL_CONFIG"},
			},
			&cli.BoolFlag{
				Name:  "metrics",
				Usage: "Expose Prometheus metrics while the benchmark runs",
			},
			&cli.BoolFlag{
				Name:  "cpu-only",
				Usage: "Skip OpenCL devices and benchmark the CPU fallback",
			},
		},
		Before: func(c *cli.Context) error {
			var err error
			cfg, err = config.LoadConfig(c.String("config"))
			if err != nil {
				return err
			}
			log, err = logger.NewCLI(cfg.Logger.Verbosity)
			if err != nil {
				return err
			}
			log = log.Named("clbench")
			return nil
		},
		Action: func(c *cli.Context) error {
			return runBench(log, cfg, c.Bool("metrics"), c.Bool("cpu-only"))
		},
	}

	if err := app.Run(os.Args); err != nil {
		if log != nil {
			log.Fatal("failed to run app", zap.Error(err))
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

func runBench(log *zap.Logger, cfg *config.Config, serveMetrics, cpuOnly bool) error {
	banner := figure.NewFigure("clbench", "", true)
	banner.Print()
	fmt.Println("")

	metrics.ObserveHandles()
	if serveMetrics {
		if cfg.Metrics.ListenAddress == "" {
			log.Warn("metrics listen address is empty, not serving metrics")
		} else {
			go metrics.Serve(cfg.Metrics.ListenAddress, log)
		}
	}

	var candidates []compute.Backend
	if !cpuOnly {
		candidates = append(candidates, compute.NewCLBackend(log,
			cfg.Platform.Index, cl.ParseDeviceType(cfg.Device.Type)))
	}
	manager, err := compute.NewManager(log, candidates...)
	if err != nil {
		return fmt.Errorf("failed to select a compute backend: %w", err)
	}
	defer func() {
		if err := manager.Cleanup(); err != nil {
			log.Warn("backend cleanup failed", zap.Error(err))
		}
	}()

	info := manager.DeviceInfo()
	log.Info("selected backend",
		zap.String("backend", manager.BackendName()),
		zap.String("device", info.Name),
		zap.String("vendor", info.Vendor))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Bench.Timeout)
	defer cancel()

	// CPU reference used to verify device results on every size.
	reference := compute.NewCPUBackend(log)
	if err := reference.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize reference backend: %w", err)
	}
	defer reference.Cleanup()

	for _, size := range cfg.Bench.Sizes {
		select {
		case <-ctx.Done():
			log.Warn("benchmark timeout reached", zap.Int("size", size))
			return nil
		default:
		}
		if err := benchSAXPY(log, manager, reference, size, cfg.Bench.Repetitions); err != nil {
			return err
		}
		if err := benchMatmul(log, manager, reference, size, cfg.Bench.Repetitions); err != nil {
			return err
		}
	}
	return nil
}

func benchSAXPY(log *zap.Logger, manager *compute.Manager, reference compute.Backend, size, repetitions int) error {
	const alpha = float32(2.5)
	x := randomVector(size)
	y := randomVector(size)

	expected, err := reference.SAXPY(alpha, x, y)
	if err != nil {
		return fmt.Errorf("reference saxpy failed: %w", err)
	}

	var best time.Duration
	for rep := 0; rep < repetitions; rep++ {
		start := time.Now()
		result, err := manager.SAXPY(alpha, x, y)
		elapsed := time.Since(start)
		if err != nil {
			return fmt.Errorf("saxpy failed at size %d: %w", size, err)
		}
		if !floats.EqualApprox(compute.Float32To64(expected), compute.Float32To64(result), verifyTolerance) {
			return fmt.Errorf("saxpy verification failed at size %d", size)
		}
		if best == 0 || elapsed < best {
			best = elapsed
		}
		metrics.BenchDuration.WithLabelValues("saxpy").Observe(float64(elapsed.Milliseconds()))
		metrics.BenchRunsTotal.WithLabelValues(manager.BackendName()).Inc()
	}

	perf := gflops(2*int64(size), best)
	metrics.BenchGFLOPS.WithLabelValues("saxpy", manager.BackendName()).Set(perf)
	metrics.BenchSize.Set(float64(size))
	log.Info("saxpy",
		zap.Int("size", size),
		zap.Duration("best", best),
		zap.Float64("gflops", perf))
	return nil
}

func benchMatmul(log *zap.Logger, manager *compute.Manager, reference compute.Backend, size, repetitions int) error {
	a := randomVector(size * size)
	b := randomVector(size * size)

	expected, err := reference.MatrixMultiply(a, b, size, size, size)
	if err != nil {
		return fmt.Errorf("reference matmul failed: %w", err)
	}

	var best time.Duration
	for rep := 0; rep < repetitions; rep++ {
		start := time.Now()
		result, err := manager.MatrixMultiply(a, b, size, size, size)
		elapsed := time.Since(start)
		if err != nil {
			return fmt.Errorf("matmul failed at size %d: %w", size, err)
		}
		if !floats.EqualApprox(compute.Float32To64(expected), compute.Float32To64(result), verifyTolerance) {
			return fmt.Errorf("matmul verification failed at size %d", size)
		}
		if best == 0 || elapsed < best {
			best = elapsed
		}
		metrics.BenchDuration.WithLabelValues("matmul").Observe(float64(elapsed.Milliseconds()))
		metrics.BenchRunsTotal.WithLabelValues(manager.BackendName()).Inc()
	}

	perf := gflops(2*int64(size)*int64(size)*int64(size), best)
	metrics.BenchGFLOPS.WithLabelValues("matmul", manager.BackendName()).Set(perf)
	metrics.BenchSize.Set(float64(size))
	log.Info("matmul",
		zap.Int("size", size),
		zap.Duration("best", best),
		zap.Float64("gflops", perf))
	return nil
}

func gflops(flop int64, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(flop) / elapsed.Seconds() / 1e9
}

func randomVector(n int) []float32 {
	v := make([]float32, n)
	for i := range v {
		v[i] = rand.Float32()
	}
	return v
}
