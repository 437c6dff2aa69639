package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/srediag/plugin-dyn/pkg/discovery"
	"github.com/srediag/plugin-dyn/pkg/host"
)

var (
	dirFlag    = flag.String("dir", "", "directory to scan for plugin modules (appended after positional paths)")
	waitFlag   = flag.Duration("wait", 0, "with -dir, wait up to this long for the directory to contain modules")
	stressFlag = flag.Bool("stress", false, "after invocation, soak each plugin's Compute through the worker pool")
)

func main() {
	flag.Parse()

	cfg, err := host.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "plugin-dyn: %v\n", err)
		os.Exit(1)
	}

	logger := setupLogger(cfg.LogLevel)
	ctx := context.Background()

	dir := *dirFlag
	if dir == "" {
		dir = cfg.PluginDir
	}
	paths := flag.Args()
	if dir != "" {
		scanned, err := scanDir(ctx, dir, *waitFlag)
		if err != nil {
			logger.WithError(err).Fatal("plugin discovery failed")
		}
		paths = append(paths, scanned...)
	}
	if len(paths) == 0 {
		logger.Fatal("no plugin modules given; pass paths or -dir")
	}

	h := host.New(host.Options{
		Logger:  logger,
		Metrics: host.NewMetrics(prometheus.DefaultRegisterer),
	})

	hh := host.NewHealthHandler(h)
	mux := http.NewServeMux()
	mux.HandleFunc("/live", hh.LiveEndpoint)
	mux.HandleFunc("/ready", hh.ReadyEndpoint)
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(cfg.HealthAddr, mux); err != nil {
			logger.WithError(err).Warn("health endpoint stopped")
		}
	}()

	if err := h.LoadAll(ctx, paths...); err != nil {
		logger.WithError(err).Fatal("load phase failed")
	}

	results, err := h.Invoke(ctx, cfg.ComputeInput)
	if err != nil {
		logger.WithError(err).Fatal("invocation phase failed")
	}
	fmt.Print(host.RenderReport(h.States(), results))

	if stats, err := h.Stats(); err == nil {
		logger.WithFields(logrus.Fields{
			"rss_bytes": stats.RSSBytes,
			"libraries": stats.LibrariesHeld,
			"plugins":   stats.PluginsHeld,
		}).Info("post-load process stats")
	}

	if *stressFlag {
		for i, p := range h.Registry().Plugins() {
			res, err := host.StressCompute(p, cfg.ComputeInput, cfg.StressIterations, cfg.StressWorkers)
			if err != nil {
				logger.WithError(err).WithField("plugin", i).Fatal("stress run failed")
			}
			logger.WithFields(logrus.Fields{
				"plugin":     i,
				"iterations": res.Iterations,
				"mismatches": res.Mismatches,
			}).Info("stress run complete")
		}
	}
}

func scanDir(ctx context.Context, dir string, wait time.Duration) ([]string, error) {
	if wait > 0 {
		return discovery.WaitScan(ctx, dir, wait)
	}
	return discovery.Scan(dir)
}

func setupLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}
