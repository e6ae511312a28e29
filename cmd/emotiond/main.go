package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"emotiond/internal/classifier"
	"emotiond/internal/config"
	"emotiond/internal/httpapi"
	"emotiond/internal/hub"
	"emotiond/internal/manager"
)

// version is overridable at build time via -ldflags "-X main.version=...".
var version = "1.0.0"

func main() {
	if err := buildRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildRootCmd() *cobra.Command {
	var (
		cfgPath     string
		addr        string
		model       string
		cacheDir    string
		hubBaseURL  string
		threshold   float64
		maxSeqLen   int
		loadSec     int
		ortLibrary  string
		logLevel    string
		corsEnabled bool
		corsOrigins string
		warmup      bool
	)

	root := &cobra.Command{
		Use:           "emotiond",
		Short:         "Multi-label emotion analysis HTTP service",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg config.Config
			if cfgPath != "" {
				c, err := config.Load(cfgPath)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				cfg = c
			}
			// Explicit flags take precedence over the file.
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("model") {
				cfg.Model = model
			}
			if cmd.Flags().Changed("cache-dir") {
				cfg.CacheDir = cacheDir
			}
			if cmd.Flags().Changed("hub-base-url") {
				cfg.HubBaseURL = hubBaseURL
			}
			if cmd.Flags().Changed("threshold") {
				cfg.DefaultThreshold = threshold
			}
			if cmd.Flags().Changed("max-seq-len") {
				cfg.MaxSeqLen = maxSeqLen
			}
			if cmd.Flags().Changed("load-timeout-sec") {
				cfg.LoadTimeoutSec = loadSec
			}
			if cmd.Flags().Changed("ort-library") {
				cfg.ORTLibrary = ortLibrary
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if cmd.Flags().Changed("cors") {
				cfg.CORSEnabled = corsEnabled
			}
			if cmd.Flags().Changed("cors-origins") {
				cfg.CORSOrigins = corsOrigins
			}
			cfg.FromEnv()
			cfg.ApplyDefaults()
			return run(cfg, warmup)
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "Path to config file (.yaml|.json|.toml)")
	root.Flags().StringVar(&addr, "addr", config.DefaultAddr, "HTTP listen address, e.g. :10000")
	root.Flags().StringVar(&model, "model", config.DefaultModel, "Hub model repository, e.g. org/model")
	root.Flags().StringVar(&cacheDir, "cache-dir", config.DefaultCacheDir, "Directory for cached model artifacts")
	root.Flags().StringVar(&hubBaseURL, "hub-base-url", config.DefaultHubURL, "Base URL of the model hub")
	root.Flags().Float64Var(&threshold, "threshold", config.DefaultThreshold, "Default score threshold for predictions")
	root.Flags().IntVar(&maxSeqLen, "max-seq-len", config.DefaultMaxSeqLen, "Maximum tokenized sequence length")
	root.Flags().IntVar(&loadSec, "load-timeout-sec", config.DefaultLoadSec, "Timeout in seconds for a model load attempt")
	root.Flags().StringVar(&ortLibrary, "ort-library", "", "Path to the onnxruntime shared library (optional)")
	root.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug|info|warn|error")
	root.Flags().BoolVar(&corsEnabled, "cors", false, "Enable CORS middleware")
	root.Flags().StringVar(&corsOrigins, "cors-origins", "*", "Comma-separated allowed CORS origins")
	root.Flags().BoolVar(&warmup, "warmup", false, "Load the model at startup instead of on first request")

	return root
}

func run(cfg config.Config, warmup bool) error {
	logger := newLogger(cfg.LogLevel)
	log.Logger = logger

	client := hub.NewClient(cfg.HubBaseURL, hub.WithToken(os.Getenv("EMOTIOND_HUB_TOKEN")))
	cache, err := hub.NewCache(cfg.CacheDir, client)
	if err != nil {
		return fmt.Errorf("init cache: %w", err)
	}

	loader := classifier.NewLoader(classifier.LoaderConfig{
		Model:      cfg.Model,
		Cache:      cache,
		MaxSeqLen:  cfg.MaxSeqLen,
		ORTLibrary: cfg.ORTLibrary,
	})
	mgr := manager.NewWithConfig(manager.ManagerConfig{
		Loader: manager.LoaderFunc(func(ctx context.Context) (manager.Handle, error) {
			m, err := loader.Load(ctx)
			if err != nil {
				return nil, err
			}
			return m, nil
		}),
		Model:            cfg.Model,
		DefaultThreshold: cfg.DefaultThreshold,
		LoadTimeout:      cfg.LoadTimeout(),
	})

	httpapi.SetLogger(logger)
	httpapi.SetCORSOptions(cfg.CORSEnabled, splitCSV(cfg.CORSOrigins), nil, nil)
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpapi.NewMux(mgr),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if warmup {
		go func() {
			if _, err := mgr.EnsureReady(context.Background()); err != nil {
				logger.Error().Err(err).Msg("startup warmup failed")
			}
		}()
	}

	go func() {
		logger.Info().Str("addr", cfg.Addr).Str("model", cfg.Model).Msg("emotiond listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown error")
	}
	if err := mgr.Close(); err != nil {
		logger.Error().Err(err).Msg("model close error")
	}
	return nil
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
}

// splitCSV splits a comma-separated list, trimming whitespace and dropping
// empty items.
func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
