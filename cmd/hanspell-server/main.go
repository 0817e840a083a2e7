// Command hanspell-server provides an HTTP REST API for spell checking.
//
// Usage:
//
//	hanspell-server -p 8080
//	hanspell-server -p 8080 -service daum -config /etc/hanspell.toml
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/Alfex4936/hanspell/hanspell"
	"github.com/Alfex4936/hanspell/internal/config"
)

func main() {
	port := flag.String("p", config.EnvOr("PORT", "8080"), "port to listen on")
	cfgPath := flag.String("config", config.EnvOr("HANSPELL_CONFIG", ""), "config file (default ~/.hanspell.toml)")
	service := flag.String("service", config.EnvOr("HANSPELL_SERVICE", ""), "default service: pnu | daum | all")
	debug := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := run(*port, *cfgPath, *service, logger); err != nil {
		logger.Error("hanspell-server stopped", "err", err)
		os.Exit(1)
	}
}

func run(port, cfgPath, service string, logger *slog.Logger) error {
	if cfgPath == "" {
		var err error
		if cfgPath, err = config.DefaultPath(); err != nil {
			return err
		}
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if service != "" {
		cfg.Service = service
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	checker, err := hanspell.NewChecker(cfg, logger)
	if err != nil {
		return err
	}
	srv := &hanspell.Server{Checker: checker, Service: cfg.ServiceValue(), Logger: logger}

	addr := fmt.Sprintf(":%s", port)
	logger.Info("hanspell server listening", "addr", addr, "service", cfg.ServiceValue(), "timeout", cfg.Timeout())
	logger.Info("routes", "check", "POST /v1/check", "health", "GET /health")

	hs := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := hs.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
