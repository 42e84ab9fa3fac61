package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/kubescape/go-logger"
	"github.com/kubescape/go-logger/helpers"
	"github.com/spf13/afero"

	"github.com/guestcov/guestcov/pkg/config"
	"github.com/guestcov/guestcov/pkg/coverage"
	coveragemanagerv1 "github.com/guestcov/guestcov/pkg/coveragemanager/v1"
	"github.com/guestcov/guestcov/pkg/exporters"
	"github.com/guestcov/guestcov/pkg/host/replay"
	"github.com/guestcov/guestcov/pkg/introspection"
	introspectionprocfs "github.com/guestcov/guestcov/pkg/introspection/procfs"
	"github.com/guestcov/guestcov/pkg/metricsmanager"
	metricprometheus "github.com/guestcov/guestcov/pkg/metricsmanager/prometheus"
)

func main() {
	ctx := context.Background()

	configDir := "./configuration"
	if envPath := os.Getenv(config.ConfigDirEnvVar); envPath != "" {
		configDir = envPath
	}
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		logger.L().Ctx(ctx).Fatal("load config error", helpers.Error(err))
	}

	mode, downgraded, err := cfg.ResolveMode()
	if err != nil {
		logger.L().Ctx(ctx).Fatal("mode selection error", helpers.Error(err))
	}
	if downgraded {
		logger.L().Warning("no OS specified, switching to asid mode")
	}

	runID := uuid.New().String()
	logger.L().Info("starting coverage recording",
		helpers.String("runID", runID),
		helpers.String("mode", string(mode)),
		helpers.String("filename", cfg.Filename),
		helpers.Int("bufferSize", cfg.BufferSize))

	var metrics metricsmanager.MetricsManager
	if cfg.EnablePrometheusExporter {
		metrics = metricprometheus.NewPrometheusMetric()
	} else {
		metrics = metricsmanager.NewMetricsMock()
	}
	metrics.Start()
	defer metrics.Destroy()

	exporterBus, err := exporters.InitExporterBus(afero.NewOsFs(), cfg.Exporters, cfg.Filename, cfg.BufferSize, mode, runID)
	if err != nil {
		logger.L().Ctx(ctx).Fatal("exporter initialization error", helpers.Error(err))
	}

	var resolver introspection.NameResolver
	if cfg.ProcfsPath != "" {
		procfsResolver, err := introspectionprocfs.NewNameResolver(cfg.ProcfsPath)
		if err != nil {
			logger.L().Warning("procfs name resolution unavailable", helpers.Error(err))
		} else {
			resolver = procfsResolver
		}
	}

	if cfg.TracePath == "" {
		logger.L().Ctx(ctx).Fatal("no trace path configured")
	}
	replayHost := replay.NewReplayHost(cfg.TracePath, resolver, metrics)

	var osi introspection.OSIntrospection
	if mode == coverage.ModeProcess {
		osi = replayHost
	}
	covManager, err := coveragemanagerv1.CreateCoverageManager(mode, osi, exporterBus, metrics)
	if err != nil {
		logger.L().Ctx(ctx).Fatal("coverage manager initialization error", helpers.Error(err))
	}
	if err := replayHost.RegisterBlockCallback(covManager.HandleBlock); err != nil {
		logger.L().Ctx(ctx).Fatal("callback registration error", helpers.Error(err))
	}

	runCtx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := replayHost.Run(runCtx); err != nil {
		logger.L().Error("replay aborted", helpers.Error(err))
	}

	covManager.Stop()
	if err := exporterBus.Close(); err != nil {
		logger.L().Error("closing exporters", helpers.Error(err))
	}
}
