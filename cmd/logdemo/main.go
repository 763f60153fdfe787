package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/pocketlab/doctools/internal/logging"
	"github.com/pocketlab/doctools/internal/settings"
)

const (
	ansiReset  = "\x1b[0m"
	ansiBold   = "\x1b[1m"
	ansiBlue   = "\x1b[34m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	configPath := flag.String("config", "", "optional TOML config overriding environment settings")
	flag.Parse()

	cfg, err := settings.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logdemo: settings error: %v\n", err)
		os.Exit(1)
	}

	if *configPath != "" {
		cfg, err = applyFileConfig(*configPath, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "logdemo: %v\n", err)
			os.Exit(1)
		}
	}

	// The --debug flag forces debug mode and floors the sink at DEBUG.
	if *debug {
		cfg.Debug = true
		cfg.LogLevel = settings.LevelDebug
	}

	logger := logging.Configure(cfg)

	printBanner(cfg)

	logger.Debug().Msg("debug mode enabled - showing detailed information")
	logger.Info().Msg("application started successfully")
	logger.Warn().Msg("this is a warning message")
	logger.Error().Msg("this is an error message")
	logger.WithLevel(zerolog.FatalLevel).Msg("this is a critical error!")

	logger.Info().
		Str("app", cfg.AppName).
		Str("version", cfg.Version).
		Str("level", cfg.LogLevel.String()).
		Msg("settings validated")

	fmt.Printf("%s%sall systems operational%s\n", ansiBold, ansiGreen, ansiReset)
}

func printBanner(cfg settings.Settings) {
	fmt.Printf("%s%s%s%s\n", ansiBold, ansiBlue, cfg.AppName, ansiReset)
	fmt.Printf("%scolorful logging demo%s\n", ansiGreen, ansiReset)
	fmt.Printf("%sversion %s%s\n", ansiYellow, cfg.Version, ansiReset)
}
