// Command lvstl runs list scenarios described in a YAML file and prints the
// resulting sequences, sizes and timings. It exits with status 1 when any
// scenario fails or the file cannot be used.
//
//	lvstl -config ./scenarios.yaml -log-level debug
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/katalvlaran/lvstl/internal/driver"
)

func main() {
	configPath := flag.String("config", "./scenarios.yaml", "Path to scenario file")
	logLevel := flag.String("log-level", "", "Override the file's log level (debug, info, warn, error, crit)")
	flag.Parse()

	if err := run(*configPath, *logLevel); err != nil {
		fmt.Fprintln(os.Stderr, "lvstl:", err)
		os.Exit(1)
	}
}

func run(configPath, logLevel string) error {
	cfg, err := driver.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	logger, err := driver.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	_, err = driver.NewRunner(logger, os.Stdout).Run(ctx, cfg)

	return err
}
