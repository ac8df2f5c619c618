// cmd/synthgen/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"synthgen/internal/common/config"
	"synthgen/internal/common/database"
	"synthgen/internal/common/logger"
	"synthgen/internal/common/observability"
	"synthgen/internal/genai"
	"synthgen/internal/notify"
	"synthgen/internal/pipeline"
	"synthgen/internal/sink"
	"synthgen/internal/synthesis"
)

func main() {
	var (
		customers     = flag.Int("customers", 0, "number of customers to generate (default from config)")
		model         = flag.String("model", "", "generative model name")
		templatesOnly = flag.Bool("templates-only", false, "skip the generative backend entirely")
		parallel      = flag.Bool("parallel", false, "synthesize items on the bounded worker pool")
		templateRatio = flag.Float64("template-ratio", -1, "probability an English item uses a template, clamped to [0,1]")
		seed          = flag.Int64("seed", 0, "run seed; 0 derives one from the clock")
		outputDir     = flag.String("output-dir", "", "directory for the four dataset files")
		configPath    = flag.String("config", "", "explicit config file path")
		metricsListen = flag.String("metrics-listen", "", "address for the Prometheus /metrics listener, e.g. :8080")
	)
	flag.Parse()

	zapLog := logger.New("info", "console")
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}
	applyFlags(cfg, flagOverrides{
		customers:     *customers,
		model:         *model,
		templatesOnly: *templatesOnly,
		parallel:      *parallel,
		templateRatio: *templateRatio,
		seed:          *seed,
		outputDir:     *outputDir,
		metricsListen: *metricsListen,
	})

	zapLog = logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log = logger.NewZapAdapter(zapLog)

	obs := observability.New("synthgen")
	defer obs.Shutdown()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Metrics.Listen != "" {
		startMetricsListener(cfg.Metrics.Listen, zapLog)
	}

	generator := buildGenerator(ctx, cfg, log, zapLog)

	engine := synthesis.NewEngine(synthesis.Config{
		TemplateRatio: cfg.Generation.TemplateRatio,
		MinTextLength: cfg.Generation.MinTextLength,
	}, generator, nil, log)

	sinks, closers, err := buildSinks(cfg, log)
	if err != nil {
		zapLog.Fatal("sink setup failed", zap.Error(err))
	}
	defer func() {
		for _, c := range closers {
			if err := c(); err != nil {
				zapLog.Warn("sink close failed", zap.Error(err))
			}
		}
	}()

	validator, err := sink.NewValidator()
	if err != nil {
		zapLog.Fatal("schema setup failed", zap.Error(err))
	}

	notifier, err := notify.NewNotifier(ctx, cfg.Notifications, log)
	if err != nil {
		// Notification is a nicety; a broken AWS setup must not block the run.
		zapLog.Warn("notifier setup failed, continuing without notifications", zap.Error(err))
		notifier = nil
	}

	runner := pipeline.NewRunner(cfg, engine, sinks, validator, notifierOrNil(notifier), obs, log)
	rep, err := runner.Run(ctx)
	if err != nil {
		zapLog.Fatal("run failed", zap.Error(err), zap.String("run_id", rep.RunID))
	}

	fmt.Print(rep.Text())
	if rep.Degraded() {
		os.Exit(2)
	}
}

// notifierOrNil keeps a typed-nil *notify.Notifier from slipping into the
// Notifier interface.
func notifierOrNil(n *notify.Notifier) pipeline.Notifier {
	if n == nil {
		return nil
	}
	return n
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

type flagOverrides struct {
	customers     int
	model         string
	templatesOnly bool
	parallel      bool
	templateRatio float64
	seed          int64
	outputDir     string
	metricsListen string
}

// applyFlags lets explicit flags win over file and environment config.
func applyFlags(cfg *config.Config, f flagOverrides) {
	if f.customers > 0 {
		cfg.Generation.Customers = f.customers
	}
	if f.model != "" {
		cfg.GenAI.Model = f.model
	}
	if f.templatesOnly {
		cfg.Generation.TemplatesOnly = true
	}
	if f.parallel {
		cfg.Generation.Parallel = true
	}
	if f.templateRatio >= 0 {
		ratio := f.templateRatio
		if ratio > 1 {
			ratio = 1
		}
		cfg.Generation.TemplateRatio = ratio
	}
	if f.seed != 0 {
		cfg.Generation.Seed = f.seed
	}
	if f.outputDir != "" {
		cfg.Sinks.Output.Dir = f.outputDir
	}
	if f.metricsListen != "" {
		cfg.Metrics.Listen = f.metricsListen
	}
}

// buildGenerator creates the generative text client, optionally wrapped with
// the Redis response cache. Any setup failure degrades to templates-only.
func buildGenerator(ctx context.Context, cfg *config.Config, log logger.Logger, zapLog *zap.Logger) genai.TextGenerator {
	if cfg.Generation.TemplatesOnly {
		return nil
	}

	if cfg.GenAI.Endpoint == "" && !genai.IsKnownModel(cfg.GenAI.Model) {
		zapLog.Fatal("unknown model; pick one from the registry or configure a custom endpoint",
			zap.String("model", cfg.GenAI.Model))
	}
	zapLog.Info("generative model selected",
		zap.String("model", cfg.GenAI.Model),
		zap.String("description", genai.ModelDescription(cfg.GenAI.Model)))

	client, err := genai.NewClient(cfg.GenAI, log)
	if err != nil {
		zapLog.Warn("generative capability unavailable, running templates-only", zap.Error(err))
		return nil
	}

	var generator genai.TextGenerator = client
	if cfg.Cache.Enabled {
		redis, err := database.NewRedis(cfg.Database.Redis)
		if err == nil {
			err = redis.Ping(ctx)
		}
		if err != nil {
			zapLog.Warn("response cache unavailable, generating without it", zap.Error(err))
		} else {
			ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second
			generator = genai.NewCachedGenerator(client, redis, ttl, log)
		}
	}
	return generator
}

// buildSinks assembles the sink list, the mandatory file sink first.
func buildSinks(cfg *config.Config, log logger.Logger) ([]sink.Sink, []func() error, error) {
	sinks := []sink.Sink{sink.NewFileSink(cfg.Sinks.Output, log)}
	var closers []func() error

	if cfg.Sinks.Kafka.Enabled {
		ks := sink.NewKafkaSink(cfg.Sinks.Kafka, log)
		sinks = append(sinks, ks)
		closers = append(closers, ks.Close)
	}
	if cfg.Sinks.Warehouse.Enabled {
		pg, err := database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return nil, closers, fmt.Errorf("postgres: %w", err)
		}
		sinks = append(sinks, sink.NewPostgresSink(pg, log))
		closers = append(closers, pg.Close)
	}
	if cfg.Sinks.Search.Enabled {
		es, err := database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			return nil, closers, fmt.Errorf("elasticsearch: %w", err)
		}
		sinks = append(sinks, sink.NewElasticSink(es, cfg.Sinks.Search.IndexPrefix, log))
	}
	return sinks, closers, nil
}

func startMetricsListener(addr string, zapLog *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "OK")
	})

	go func() {
		zapLog.Info("metrics listener started", zap.String("addr", addr))
		if err := http.ListenAndServe(addr, mux); err != nil {
			zapLog.Warn("metrics listener stopped", zap.Error(err))
		}
	}()
}
