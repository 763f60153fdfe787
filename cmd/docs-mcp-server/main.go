package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pocketlab/doctools/configs"
	"github.com/pocketlab/doctools/internal/app"
	"github.com/pocketlab/doctools/internal/audit"
	"github.com/pocketlab/doctools/internal/config"
	"github.com/pocketlab/doctools/internal/convert"
	"github.com/pocketlab/doctools/internal/limits"
	"github.com/pocketlab/doctools/internal/log"
	"github.com/pocketlab/doctools/internal/manifest"
	"github.com/pocketlab/doctools/internal/render"
	"github.com/pocketlab/doctools/internal/runtime"
)

func main() {
	embeddedConfig := flag.String("embedded-config", "", "Use embedded manifest from configs/ (filename)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := log.New(cfg.LogLevel)

	rendered, err := loadManifest(cfg, *embeddedConfig)
	if err != nil {
		logger.Error("load manifest failed", "error", err)
		os.Exit(1)
	}

	manifestCfg, err := manifest.Load(rendered)
	if err != nil {
		logger.Error("parse manifest failed", "error", err)
		os.Exit(1)
	}

	guard, err := limits.NewGuard(limits.Policy{
		RatePerMinute: manifestCfg.Limits.RatePerMinute,
		MaxTotal:      manifestCfg.Limits.MaxTotal,
		Fields:        toFieldPolicies(manifestCfg.Limits.Fields),
	})
	if err != nil {
		logger.Error("build limits guard failed", "error", err)
		os.Exit(1)
	}

	builder := runtime.Builder{
		Logger:    logger,
		Audit:     audit.New(logger),
		Guard:     guard,
		Converter: convert.New(manifestCfg.Conversion.MaxFileBytes),
	}
	server, err := builder.Build(manifestCfg)
	if err != nil {
		logger.Error("build server failed", "error", err)
		os.Exit(1)
	}

	baseCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP)
	go func() {
		sig := <-sigCh
		logger.Warn("shutdown requested", "signal", sig.String())
		cancel()
	}()

	switch manifestCfg.Server.Transport {
	case "stdio":
		if err := runStdio(baseCtx, server); err != nil {
			logger.Error("runtime error", "error", err)
			os.Exit(1)
		}
	default:
		if err := runHTTP(baseCtx, cfg, manifestCfg, server, logger); err != nil {
			logger.Error("runtime error", "error", err)
			os.Exit(1)
		}
	}
}

// loadManifest renders the manifest from an embedded file, the configured
// path, or the embedded default when the configured path does not exist.
func loadManifest(cfg config.Config, embeddedName string) ([]byte, error) {
	if embeddedName != "" {
		raw, err := configs.Load(embeddedName)
		if err != nil {
			return nil, err
		}
		return render.Bytes(embeddedName, raw)
	}

	if _, err := os.Stat(cfg.ConfigPath); errors.Is(err, os.ErrNotExist) {
		raw, err := configs.Load(configs.DefaultName)
		if err != nil {
			return nil, err
		}
		return render.Bytes(configs.DefaultName, raw)
	}

	return render.File(cfg.ConfigPath)
}

func toFieldPolicies(policies map[string]manifest.FieldPolicy) map[string]limits.FieldPolicy {
	if policies == nil {
		return nil
	}
	out := make(map[string]limits.FieldPolicy, len(policies))
	for key, value := range policies {
		out[key] = limits.FieldPolicy{
			Regex:     value.Regex,
			Min:       value.Min,
			Max:       value.Max,
			MinLength: value.MinLength,
			MaxLength: value.MaxLength,
		}
	}
	return out
}

func runStdio(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}

func runHTTP(ctx context.Context, envCfg config.Config, manifestCfg *manifest.Config, server *mcp.Server, logger *slog.Logger) error {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{
		Stateless: manifestCfg.Server.HTTP.Stateless,
	})

	application, err := app.New(ctx, manifestCfg.Server, handler, logger, envCfg.ShutdownTimeout)
	if err != nil {
		return err
	}

	return application.Run(ctx)
}
